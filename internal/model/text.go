package model

type DiffRequest struct {
	Old string `json:"old"`
	New string `json:"new"`
}

type DiffChunk struct {
	Tag  string `json:"tag"` // "equal", "delete" or "insert"
	Text string `json:"text"`
}

type DiffResponse struct {
	Chunks []DiffChunk `json:"chunks"`
}

type JsonRequest struct {
	Input string `json:"input"`
}

type JsonResponse struct {
	Pretty   string  `json:"pretty"`
	Minified string  `json:"minified"`
	Error    *string `json:"error"`
}

type EscapeRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

type CaseRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

type JsEncRequest struct {
	JS   string `json:"js"`
	Mode string `json:"mode"` // "base64" (default) or "hex"
}

type YamlRequest struct {
	Yaml string `json:"yaml"`
}

type TomlRequest struct {
	Toml string `json:"toml"`
}

type ConvertResponse struct {
	Result string  `json:"result"`
	Error  *string `json:"error"`
}

type LoremRequest struct {
	Count int    `json:"count"`
	Mode  string `json:"mode"` // words, sentences, paragraphs
}
