package service

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessBase64(t *testing.T) {
	assert.Equal(t, "YWJj", ProcessBase64("abc", "encode"))
	assert.Equal(t, "abc", ProcessBase64("YWJj", "decode"))
	assert.Equal(t, "Invalid Base64 input", ProcessBase64("***", "decode"))
}

func TestCalculateMD5(t *testing.T) {
	resp := CalculateMD5("")
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", resp.Md5_32Lower)
	assert.Equal(t, "D41D8CD98F00B204E9800998ECF8427E", resp.Md5_32Upper)
	assert.Equal(t, "8f00b204e9800998", resp.Md5_16Lower)
	assert.Equal(t, "8F00B204E9800998", resp.Md5_16Upper)
}

func TestProcessURL(t *testing.T) {
	resp := ProcessURL("example.com/search?q=go lang&page=2")
	assert.Equal(t, "http", resp.Protocol)
	assert.Equal(t, "example.com", resp.Host)
	assert.Equal(t, "/search", resp.Path)
	assert.Equal(t, [][2]string{{"q", "go lang"}, {"page", "2"}}, resp.Params)
	assert.Contains(t, resp.Encoded, "go%20lang")

	bare := ProcessURL("https://example.com")
	assert.Equal(t, "https", bare.Protocol)
	assert.Equal(t, "/", bare.Path)
	assert.Empty(t, bare.Params)
}

func TestProcessURLEncodeDecode(t *testing.T) {
	resp := ProcessURL("a-b_c.d~e+f")
	assert.Equal(t, "a%2Db%5Fc%2Ed%7Ee%2Bf", resp.Encoded)
	assert.Equal(t, "a-b_c.d~e+f", resp.Decoded, "plus stays literal")

	assert.Equal(t, "x y/z", ProcessURL("x%20y%2Fz").Decoded)
	assert.Equal(t, "100%", ProcessURL("100%").Decoded, "undecodable input is echoed")
}

func TestProcessJSON(t *testing.T) {
	resp := ProcessJSON(`{"a": [1, 2], "b": "x"}`)
	require.Nil(t, resp.Error)
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ],\n  \"b\": \"x\"\n}", resp.Pretty)
	assert.Equal(t, `{"a":[1,2],"b":"x"}`, resp.Minified)

	bad := ProcessJSON(`{"a":`)
	require.NotNil(t, bad.Error)
	assert.Empty(t, bad.Pretty)
}

func TestProcessEscape(t *testing.T) {
	tests := []struct {
		mode     string
		input    string
		expected string
	}{
		{"html_enc", `<a href="x">`, "&lt;a href=&#34;x&#34;&gt;"},
		{"html_dec", "&lt;b&gt;", "<b>"},
		{"json_enc", "line\n\"q\"", `"line\n\"q\""`},
		{"json_dec", `"a\tb"`, "a\tb"},
		{"json_dec", `a\nb`, "a\nb"},
		{"url_enc", "a b&c", "a%20b%26c"},
		{"url_dec", "a%20b", "a b"},
		{"sql_literal", "it's", "'it''s'"},
		{"sql_ident", `my"table`, `"my""table"`},
		{"bogus", "x", ""},
	}

	for _, tc := range tests {
		t.Run(tc.mode, func(t *testing.T) {
			assert.Equal(t, tc.expected, ProcessEscape(tc.input, tc.mode))
		})
	}
}

func TestParseJWT(t *testing.T) {
	enc := base64.RawURLEncoding.EncodeToString
	token := enc([]byte(`{"alg":"HS256"}`)) + "." + enc([]byte(`{"sub":"42"}`)) + ".sig"

	resp := ParseJWT(token)
	require.Nil(t, resp.Error)
	assert.Equal(t, `{"alg":"HS256"}`, resp.Header)
	assert.Equal(t, `{"sub":"42"}`, resp.Payload)

	bad := ParseJWT("only.two")
	require.NotNil(t, bad.Error)
	assert.Equal(t, "Invalid Token Format", *bad.Error)

	garbled := ParseJWT("!!!.@@@.sig")
	assert.Equal(t, "Decode Error", garbled.Header)
}

func TestObfuscateJS(t *testing.T) {
	assert.Equal(t, "eval(atob('YWxlcnQoMSk='))", ObfuscateJS("alert(1)", "base64"))
	assert.Equal(t, `eval("\x61\x3d\x31");`, ObfuscateJS("a=1", "hex"))
	assert.Contains(t, ObfuscateJS("", "hex"), "enter JavaScript")
}

func TestParseDate(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	seconds := ParseDate("1700000000", now)
	assert.Equal(t, int64(1700000000), seconds.UnixSec)
	assert.Equal(t, "2023-11-14T22:13:20Z", seconds.ISO8601)

	millis := ParseDate("1700000000123", now)
	assert.Equal(t, int64(1700000000), millis.UnixSec)
	assert.Equal(t, int64(1700000000123), millis.UnixMilli)

	iso := ParseDate("2024-05-01T10:00:00+02:00", now)
	assert.Equal(t, "2024-05-01 08:00:00 UTC", iso.HumanUTC)

	fallback := ParseDate("not a date", now)
	assert.Equal(t, now.Unix(), fallback.UnixSec)
}

func TestConvertColor(t *testing.T) {
	tests := []struct {
		input string
		hex   string
		rgb   string
		hsl   string
		cmyk  string
	}{
		{"#ff0000", "#ff0000", "rgb(255, 0, 0)", "hsl(0, 100%, 50%)", "cmyk(0%, 100%, 100%, 0%)"},
		{"00ff00", "#00ff00", "rgb(0, 255, 0)", "hsl(120, 100%, 50%)", "cmyk(100%, 0%, 100%, 0%)"},
		{"rgb(0, 0, 255)", "#0000ff", "rgb(0, 0, 255)", "hsl(240, 100%, 50%)", "cmyk(100%, 100%, 0%, 0%)"},
		{"black", "#000000", "rgb(0, 0, 0)", "hsl(0, 0%, 0%)", "cmyk(0%, 0%, 0%, 100%)"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			resp := ConvertColor(tc.input)
			assert.True(t, resp.Valid)
			assert.Equal(t, tc.hex, resp.Hex)
			assert.Equal(t, tc.rgb, resp.RGB)
			assert.Equal(t, tc.hsl, resp.HSL)
			assert.Equal(t, tc.cmyk, resp.CMYK)
		})
	}

	assert.False(t, ConvertColor("not-a-color").Valid)
	assert.False(t, ConvertColor("rgb(300, 0, 0)").Valid)
}

func TestGenerateQR(t *testing.T) {
	svg := GenerateQR("https://example.com")
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, `fill="#000000"`)
	assert.Contains(t, svg, "</svg>")

	assert.Equal(t, GenerateQR("error"), GenerateQR(""))
}
