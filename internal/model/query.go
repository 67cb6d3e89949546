package model

type SqlRequest struct {
	SQL string `json:"sql"`
}

type RegexRequest struct {
	Pattern string  `json:"pattern"`
	Text    string  `json:"text"`
	Replace *string `json:"replace"` // optional
}

type RegexResponse struct {
	Matches  []string `json:"matches"`
	Count    int      `json:"count"`
	Error    *string  `json:"error"`
	Replaced *string  `json:"replaced,omitempty"`
}

type RegexGenRequest struct {
	Key string `json:"key"`
}

type RegexPatternResponse struct {
	Pattern string `json:"pattern"`
	Result  string `json:"result"`
}

type RegexBuildRequest struct {
	StartsWith    string `json:"starts_with"`
	NotStartsWith string `json:"not_starts_with"`
	EndsWith      string `json:"ends_with"`
	NotEndsWith   string `json:"not_ends_with"`
	Contains      string `json:"contains"`
	NotContains   string `json:"not_contains"`
}

type RegexBuildResponse struct {
	Pattern string  `json:"pattern"`
	Error   *string `json:"error"`
}
