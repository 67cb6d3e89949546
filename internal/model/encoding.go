package model

type Base64Request struct {
	Text   string `json:"text"`
	Action string `json:"action"` // "encode" or "decode"
}

type Md5Request struct {
	Text string `json:"text"`
}

type Md5Response struct {
	Md5_32Lower string `json:"md5_32_lower"`
	Md5_32Upper string `json:"md5_32_upper"`
	Md5_16Lower string `json:"md5_16_lower"`
	Md5_16Upper string `json:"md5_16_upper"`
}

type UrlRequest struct {
	Input string `json:"input"`
}

type UrlResponse struct {
	Encoded  string      `json:"encoded"`
	Decoded  string      `json:"decoded"`
	Protocol string      `json:"protocol"`
	Host     string      `json:"host"`
	Path     string      `json:"path"`
	Params   [][2]string `json:"params"`
}

type JwtRequest struct {
	Token string `json:"token"`
}

type JwtResponse struct {
	Header  string  `json:"header"`
	Payload string  `json:"payload"`
	Error   *string `json:"error"`
}

type DateRequest struct {
	Input string `json:"input"`
}

type DateResponse struct {
	UnixSec   int64  `json:"unix_sec"`
	UnixMilli int64  `json:"unix_milli"`
	ISO8601   string `json:"iso_8601"`
	HumanUTC  string `json:"human_utc"`
}

type ColorRequest struct {
	Input string `json:"input"`
}

type ColorResponse struct {
	Valid bool   `json:"valid"`
	Hex   string `json:"hex"`
	RGB   string `json:"rgb"`
	HSL   string `json:"hsl"`
	CMYK  string `json:"cmyk"`
}

type QrRequest struct {
	Text string `json:"text"`
}

type QrResponse struct {
	SVG string `json:"svg"`
}

type UnitRequest struct {
	Value FlexString `json:"value"`
	Type  string     `json:"type"` // storage or time
	From  string     `json:"from"`
	To    string     `json:"to"`
}

type UnitResponse struct {
	Result float64 `json:"result"`
	Value  float64 `json:"value"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Type   string  `json:"type"`
}
