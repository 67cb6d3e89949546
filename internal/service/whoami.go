package service

import (
	"net/http"
	"strings"

	"devtools/backend/helper"
	"devtools/backend/internal/model"
)

// Whoami describes the caller from the request itself. Geo fields come
// from edge proxy headers when present.
func Whoami(clientIP string, h http.Header) model.WhoamiResponse {
	headers := make(map[string]string, len(h))
	for k, v := range h {
		headers[strings.ToLower(k)] = strings.Join(v, ", ")
	}
	return model.WhoamiResponse{
		IP:        helper.Or(h.Get("CF-Connecting-IP"), helper.Or(clientIP, "-")),
		Country:   helper.Or(h.Get("CF-IPCountry"), "-"),
		City:      helper.Or(h.Get("CF-IPCity"), "-"),
		ASN:       helper.Or(h.Get("CF-Ray"), "-"),
		UserAgent: helper.Or(h.Get("User-Agent"), "-"),
		Headers:   headers,
	}
}
