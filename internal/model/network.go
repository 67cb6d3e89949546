package model

type SubnetRequest struct {
	IP   string     `json:"ip"`
	CIDR FlexString `json:"cidr"`
}

type SubnetResponse struct {
	Valid       bool   `json:"valid"`
	IP          string `json:"ip"`
	CIDR        string `json:"cidr"`
	Mask        string `json:"mask"`
	Wildcard    string `json:"wildcard"`
	Network     string `json:"network"`
	Broadcast   string `json:"broadcast"`
	FirstIP     string `json:"first_ip"`
	LastIP      string `json:"last_ip"`
	TotalHosts  uint64 `json:"total_hosts"`
	UsableHosts uint64 `json:"usable_hosts"`
	IPClass     string `json:"ip_class"`
	IPType      string `json:"ip_type"`
	BinaryIP    string `json:"binary_ip"`
	BinaryMask  string `json:"binary_mask"`
	Error       string `json:"error,omitempty"`
}

type CronRequest struct {
	Cron string `json:"cron"`
}

type CronResponse struct {
	Valid    bool     `json:"valid"`
	NextRuns []string `json:"next_runs"`
	Error    string   `json:"error"`
}

type WhoamiResponse struct {
	IP        string            `json:"ip"`
	Country   string            `json:"country"`
	City      string            `json:"city"`
	ASN       string            `json:"asn"`
	UserAgent string            `json:"user_agent"`
	Headers   map[string]string `json:"headers"`
}
