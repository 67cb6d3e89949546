package service

import (
	"regexp"

	"devtools/backend/internal/model"
)

var commonPatterns = map[string]string{
	"email":     `(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`,
	"phone_cn":  `^1[3-9]\d{9}$`,
	"id_cn":     `^[1-9]\d{5}(18|19|20)\d{2}(0[1-9]|1[0-2])(0[1-9]|[1-2]\d|3[0-1])\d{3}[\dXx]$`,
	"ipv4":      `^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`,
	"url":       `https?://(www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_\+.~#?&//=]*)`,
	"date":      `^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`,
	"password":  `^[a-zA-Z0-9!@#$%^&*()_+\-=\[\]{};':,.<>/?]{8,}$`,
	"hex_color": `^#?([a-fA-F0-9]{6}|[a-fA-F0-9]{3})$`,
	"chinese":   `\p{Han}+`,
	"html_tag":  `</?[a-z][a-z0-9]*[^<>]*>`,
}

// MatchRegex compiles pattern and collects every match in text. A pattern that
// does not compile is reported in the error field.
func MatchRegex(pattern, text string, replace *string) model.RegexResponse {
	resp := model.RegexResponse{Matches: []string{}}
	if pattern == "" {
		resp.Error = errString("pattern is required")
		return resp
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		resp.Error = errString(err.Error())
		return resp
	}

	if found := re.FindAllString(text, -1); found != nil {
		resp.Matches = found
	}
	resp.Count = len(resp.Matches)
	if replace != nil {
		replaced := re.ReplaceAllString(text, *replace)
		resp.Replaced = &replaced
	}
	return resp
}

// CommonRegex looks up a named pattern. Unknown keys yield "".
func CommonRegex(key string) model.RegexPatternResponse {
	pattern, ok := commonPatterns[key]
	if !ok {
		return model.RegexPatternResponse{Result: "unknown pattern type"}
	}
	return model.RegexPatternResponse{Pattern: pattern, Result: "ok"}
}

// BuildRegex assembles an anchored pattern from literal constraints. The
// negative forms use lookarounds, which suit PCRE-style engines in the
// browser; the result is not compiled here.
func BuildRegex(req model.RegexBuildRequest) model.RegexBuildResponse {
	p := "^"
	if req.NotStartsWith != "" {
		p += "(?!" + regexp.QuoteMeta(req.NotStartsWith) + ")"
	}
	if req.StartsWith != "" {
		p += regexp.QuoteMeta(req.StartsWith)
	}
	if req.Contains != "" {
		p += "(?=.*" + regexp.QuoteMeta(req.Contains) + ")"
	}
	if req.NotContains != "" {
		p += "(?:(?!" + regexp.QuoteMeta(req.NotContains) + ").)*"
	} else {
		p += ".*"
	}
	if req.EndsWith != "" {
		p += regexp.QuoteMeta(req.EndsWith)
	}
	if req.NotEndsWith != "" {
		p += "(?<!" + regexp.QuoteMeta(req.NotEndsWith) + ")"
	}
	p += "$"
	return model.RegexBuildResponse{Pattern: p}
}

func errString(s string) *string {
	return &s
}
