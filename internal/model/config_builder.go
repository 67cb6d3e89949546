package model

type DockerfileStage struct {
	Image       string `json:"image"`
	As          string `json:"as"`
	Workdir     string `json:"workdir"`
	Copy        string `json:"copy"`
	Run         string `json:"run"`
	Env         string `json:"env"`
	Expose      string `json:"expose"`
	Cmd         string `json:"cmd"`
	Entrypoint  string `json:"entrypoint"`
	User        string `json:"user"`
	Volume      string `json:"volume"`
	Arg         string `json:"arg"`
	Label       string `json:"label"`
	Healthcheck string `json:"healthcheck"`
}

// DockerfileRequest carries either a list of stages or a single stage
// spread over the root object.
type DockerfileRequest struct {
	Stages []DockerfileStage `json:"stages"`
	DockerfileStage
}

type NginxLocation struct {
	Path  string `json:"path"`
	Proxy string `json:"proxy"`
	Root  string `json:"root"`
	SPA   bool   `json:"spa"`
}

type NginxRequest struct {
	Domain              string          `json:"domain"`
	Port                FlexString      `json:"port"`
	Root                string          `json:"root"`
	Path                string          `json:"path"`
	Proxy               string          `json:"proxy"`
	SPA                 bool            `json:"spa"`
	Locations           []NginxLocation `json:"locations"`
	Upstream            string          `json:"upstream"`
	HTTPS               bool            `json:"https"`
	ForceHTTPS          bool            `json:"force_https"`
	SSLCert             string          `json:"ssl_cert"`
	SSLKey              string          `json:"ssl_key"`
	Gzip                bool            `json:"gzip"`
	ClientMaxBodySize   string          `json:"client_max_body_size"`
	KeepaliveTimeout    string          `json:"keepalive_timeout"`
	ProxyConnectTimeout string          `json:"proxy_connect_timeout"`
	ProxyReadTimeout    string          `json:"proxy_read_timeout"`
	ProxySendTimeout    string          `json:"proxy_send_timeout"`
	Websocket           bool            `json:"websocket"`
}
