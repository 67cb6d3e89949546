package service

import (
	"fmt"
	"strings"

	"devtools/backend/helper"
	"devtools/backend/internal/model"
)

// BuildDockerfile renders one FROM block per stage. A request without a
// stages list is treated as a single stage.
func BuildDockerfile(req model.DockerfileRequest) string {
	stages := req.Stages
	if len(stages) == 0 {
		stages = []model.DockerfileStage{req.DockerfileStage}
	}

	var b strings.Builder
	for i, st := range stages {
		if i > 0 {
			fmt.Fprintf(&b, "\n# Stage %d\n", i+1)
		}

		from := "FROM " + helper.Or(st.Image, "scratch")
		if image, as := strings.TrimSpace(st.Image), strings.TrimSpace(st.As); image != "" && as != "" {
			from += " AS " + as
		}
		b.WriteString(from + "\n")

		each := func(instr string, items []string) {
			for _, item := range items {
				b.WriteString(instr + " " + item + "\n")
			}
		}
		one := func(instr, value string) {
			if v := strings.TrimSpace(value); v != "" {
				b.WriteString(instr + " " + v + "\n")
			}
		}

		each("ARG", helper.Lines(st.Arg))
		each("LABEL", helper.Lines(st.Label))
		one("WORKDIR", st.Workdir)
		each("ENV", helper.Lines(st.Env))
		each("COPY", helper.Lines(st.Copy))
		each("RUN", helper.Lines(st.Run))
		each("EXPOSE", helper.Fields(st.Expose))
		one("USER", st.User)
		each("VOLUME", helper.Fields(st.Volume))
		one("HEALTHCHECK", st.Healthcheck)
		one("ENTRYPOINT", st.Entrypoint)
		one("CMD", st.Cmd)
	}
	return b.String()
}

const nginxGzipTypes = "text/plain text/css application/json application/javascript " +
	"text/xml application/xml application/xml+rss text/javascript"

// BuildNginx renders a server block: an optional upstream, an optional
// HTTP to HTTPS redirect, then the main server with one proxy or static
// location plus any extra locations.
func BuildNginx(req model.NginxRequest) string {
	domain := helper.Or(req.Domain, "example.com")
	loc := helper.Or(req.Path, "/")
	upstreamName := strings.ReplaceAll(domain, ".", "_") + "_backend"
	upstreams := helper.Lines(req.Upstream)

	var b strings.Builder
	if len(upstreams) > 0 {
		fmt.Fprintf(&b, "upstream %s {\n", upstreamName)
		for _, s := range upstreams {
			fmt.Fprintf(&b, "    server %s;\n", s)
		}
		b.WriteString("}\n\n")
	}

	if req.HTTPS && req.ForceHTTPS {
		b.WriteString("server {\n    listen 80;\n")
		fmt.Fprintf(&b, "    server_name %s;\n", domain)
		b.WriteString("    return 301 https://$host$request_uri;\n}\n\n")
	}

	b.WriteString("server {\n")
	if req.HTTPS {
		b.WriteString("    listen 443 ssl http2;\n")
		fmt.Fprintf(&b, "    server_name %s;\n\n", domain)
		fmt.Fprintf(&b, "    ssl_certificate %s;\n", helper.Or(req.SSLCert, "/etc/nginx/ssl/"+domain+".crt"))
		fmt.Fprintf(&b, "    ssl_certificate_key %s;\n", helper.Or(req.SSLKey, "/etc/nginx/ssl/"+domain+".key"))
		b.WriteString("    ssl_protocols TLSv1.2 TLSv1.3;\n")
		b.WriteString("    ssl_ciphers HIGH:!aNULL:!MD5;\n\n")
	} else {
		fmt.Fprintf(&b, "    listen %s;\n", helper.Or(req.Port.String(), "80"))
		fmt.Fprintf(&b, "    server_name %s;\n\n", domain)
	}

	fmt.Fprintf(&b, "    access_log /var/log/nginx/%s.access.log;\n", domain)
	fmt.Fprintf(&b, "    error_log /var/log/nginx/%s.error.log;\n\n", domain)

	if req.Gzip {
		b.WriteString("    gzip on;\n")
		fmt.Fprintf(&b, "    gzip_types %s;\n\n", nginxGzipTypes)
	}
	if v := strings.TrimSpace(req.ClientMaxBodySize); v != "" {
		fmt.Fprintf(&b, "    client_max_body_size %s;\n", v)
	}
	if v := strings.TrimSpace(req.KeepaliveTimeout); v != "" {
		fmt.Fprintf(&b, "    keepalive_timeout %s;\n\n", v)
	}

	root := helper.Or(req.Root, "/var/www/html")
	switch {
	case len(upstreams) > 0:
		writeProxyLocation(&b, req, loc, "http://"+upstreamName)
	case strings.TrimSpace(req.Proxy) != "":
		writeProxyLocation(&b, req, loc, strings.TrimSpace(req.Proxy))
	default:
		fmt.Fprintf(&b, "    root %s;\n", root)
		b.WriteString("    index index.html index.htm;\n\n")
		writeStaticLocation(&b, loc, "", req.SPA)
	}

	for _, l := range req.Locations {
		path := strings.TrimSpace(l.Path)
		if path == "" {
			continue
		}
		b.WriteString("\n")
		if proxy := strings.TrimSpace(l.Proxy); proxy != "" {
			writeProxyLocation(&b, req, path, proxy)
		} else {
			writeStaticLocation(&b, path, strings.TrimSpace(l.Root), l.SPA)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func writeProxyLocation(b *strings.Builder, req model.NginxRequest, path, target string) {
	fmt.Fprintf(b, "    location %s {\n", path)
	fmt.Fprintf(b, "        proxy_pass %s;\n", target)
	b.WriteString("        proxy_set_header Host $host;\n")
	b.WriteString("        proxy_set_header X-Real-IP $remote_addr;\n")
	b.WriteString("        proxy_set_header X-Forwarded-For $proxy_add_x_forwarded_for;\n")
	b.WriteString("        proxy_set_header X-Forwarded-Proto $scheme;\n")
	if req.Websocket {
		b.WriteString("        proxy_http_version 1.1;\n")
		b.WriteString("        proxy_set_header Upgrade $http_upgrade;\n")
		b.WriteString("        proxy_set_header Connection \"upgrade\";\n")
	}
	for _, t := range []struct{ name, value string }{
		{"proxy_connect_timeout", req.ProxyConnectTimeout},
		{"proxy_read_timeout", req.ProxyReadTimeout},
		{"proxy_send_timeout", req.ProxySendTimeout},
	} {
		if v := strings.TrimSpace(t.value); v != "" {
			fmt.Fprintf(b, "        %s %s;\n", t.name, v)
		}
	}
	b.WriteString("    }\n")
}

func writeStaticLocation(b *strings.Builder, path, root string, spa bool) {
	fmt.Fprintf(b, "    location %s {\n", path)
	if root != "" {
		fmt.Fprintf(b, "        root %s;\n", root)
	}
	if spa {
		b.WriteString("        try_files $uri $uri/ /index.html;\n")
	} else {
		b.WriteString("        try_files $uri $uri/ =404;\n")
	}
	b.WriteString("    }\n")
}
