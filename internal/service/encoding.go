package service

import (
	"bytes"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"strings"

	"devtools/backend/internal/model"

	"github.com/lib/pq"
)

func ProcessBase64(text, action string) string {
	if action == "encode" {
		return base64.StdEncoding.EncodeToString([]byte(text))
	}
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return "Invalid Base64 input"
	}
	return strings.ToValidUTF8(string(b), "�")
}

func CalculateMD5(text string) model.Md5Response {
	sum := md5.Sum([]byte(text))
	m32 := hex.EncodeToString(sum[:])
	m16 := m32[8:24]
	return model.Md5Response{
		Md5_32Lower: m32,
		Md5_32Upper: strings.ToUpper(m32),
		Md5_16Lower: m16,
		Md5_16Upper: strings.ToUpper(m16),
	}
}

// ProcessURL percent-encodes and decodes input and, when it parses as a
// URL, breaks it into its parts. Inputs without a scheme are read as http.
func ProcessURL(input string) model.UrlResponse {
	resp := model.UrlResponse{
		Encoded:  percentEncodeAll(input),
		Decoded:  input,
		Protocol: "-",
		Host:     "-",
		Path:     "-",
		Params:   [][2]string{},
	}
	if decoded, err := url.PathUnescape(input); err == nil {
		resp.Decoded = decoded
	}

	raw := input
	if !strings.HasPrefix(raw, "http") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return resp
	}
	resp.Protocol = u.Scheme
	resp.Host = u.Hostname()
	resp.Path = u.Path
	if resp.Path == "" {
		resp.Path = "/"
	}
	for _, pair := range strings.Split(u.RawQuery, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		k, _ = url.QueryUnescape(k)
		v, _ = url.QueryUnescape(v)
		resp.Params = append(resp.Params, [2]string{k, v})
	}
	return resp
}

// ProcessJSON returns the input pretty printed with two-space indent and
// minified.
func ProcessJSON(input string) model.JsonResponse {
	var v any
	if err := json.Unmarshal([]byte(input), &v); err != nil {
		return model.JsonResponse{Error: errString(err.Error())}
	}

	var pretty, minified bytes.Buffer
	if err := json.Indent(&pretty, []byte(input), "", "  "); err != nil {
		return model.JsonResponse{Error: errString(err.Error())}
	}
	if err := json.Compact(&minified, []byte(input)); err != nil {
		return model.JsonResponse{Error: errString(err.Error())}
	}
	return model.JsonResponse{
		Pretty:   strings.TrimSpace(pretty.String()),
		Minified: minified.String(),
	}
}

// ProcessEscape applies one escaping mode. Unknown modes yield "".
func ProcessEscape(text, mode string) string {
	switch mode {
	case "html_enc":
		return html.EscapeString(text)
	case "html_dec":
		return html.UnescapeString(text)
	case "json_enc":
		b, err := json.Marshal(text)
		if err != nil {
			return ""
		}
		return string(b)
	case "json_dec":
		var s string
		if err := json.Unmarshal([]byte(text), &s); err == nil {
			return s
		}
		if err := json.Unmarshal([]byte(`"`+text+`"`), &s); err == nil {
			return s
		}
		return "Invalid JSON String"
	case "url_enc":
		return encodeComponent(text)
	case "url_dec":
		s, err := url.QueryUnescape(text)
		if err != nil {
			return "Invalid URL encoding"
		}
		return s
	case "sql_literal":
		return pq.QuoteLiteral(text)
	case "sql_ident":
		return pq.QuoteIdentifier(text)
	default:
		return ""
	}
}

// ParseJWT decodes the header and payload of a compact JWT. The signature
// is not verified.
func ParseJWT(token string) model.JwtResponse {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) != 3 {
		return model.JwtResponse{Error: errString("Invalid Token Format")}
	}
	decode := func(s string) string {
		b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
		if err != nil {
			return "Decode Error"
		}
		return strings.ToValidUTF8(string(b), "�")
	}
	return model.JwtResponse{
		Header:  decode(parts[0]),
		Payload: decode(parts[1]),
	}
}

// ObfuscateJS wraps source in an eval of an encoded copy of itself.
func ObfuscateJS(source, mode string) string {
	if strings.TrimSpace(source) == "" {
		return "// enter JavaScript code to obfuscate"
	}
	if mode == "hex" {
		var b strings.Builder
		b.WriteString(`eval("`)
		for _, c := range []byte(source) {
			fmt.Fprintf(&b, `\x%02x`, c)
		}
		b.WriteString(`");`)
		return b.String()
	}
	return fmt.Sprintf("eval(atob('%s'))", base64.StdEncoding.EncodeToString([]byte(source)))
}

// encodeComponent percent-encodes s the way a browser's encodeURIComponent
// does for spaces.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// percentEncodeAll escapes every byte outside [A-Za-z0-9].
func percentEncodeAll(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}
