package service

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"devtools/backend/internal/model"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// ConvertCase splits text into words on spaces, underscores, hyphens and
// lower-to-upper boundaries, then joins them in the requested style.
func ConvertCase(text, mode string) string {
	s := strings.NewReplacer("_", " ", "-", " ").Replace(text)
	s = camelBoundary.ReplaceAllString(s, "$1 $2")
	words := strings.Fields(s)

	switch mode {
	case "upper":
		return strings.ToUpper(strings.Join(words, " "))
	case "lower":
		return strings.ToLower(strings.Join(words, " "))
	case "snake":
		return strings.ToLower(strings.Join(words, "_"))
	case "kebab":
		return strings.ToLower(strings.Join(words, "-"))
	case "constant":
		return strings.ToUpper(strings.Join(words, "_"))
	case "camel":
		var b strings.Builder
		for i, w := range words {
			if i == 0 {
				b.WriteString(strings.ToLower(w))
				continue
			}
			b.WriteString(capitalize(w))
		}
		return b.String()
	case "pascal":
		var b strings.Builder
		for _, w := range words {
			b.WriteString(capitalize(w))
		}
		return b.String()
	default:
		return text
	}
}

func capitalize(w string) string {
	r := []rune(strings.ToLower(w))
	if len(r) == 0 {
		return ""
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

var storageUnits = map[string]float64{
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
	"TB": 1 << 40,
	"PB": 1 << 50,
}

var timeUnits = map[string]float64{
	"ms": 1,
	"s":  1000,
	"m":  60 * 1000,
	"h":  60 * 60 * 1000,
	"d":  24 * 60 * 60 * 1000,
}

// ConvertUnit converts between storage (1024 based) or time units. Unknown
// units produce a zero result.
func ConvertUnit(value float64, kind, from, to string) model.UnitResponse {
	resp := model.UnitResponse{Value: value, From: from, To: to, Type: kind}

	var fromFactor, toFactor float64
	switch kind {
	case "time":
		fromFactor = timeUnits[strings.ToLower(from)]
		toFactor = timeUnits[strings.ToLower(to)]
	default:
		fromFactor = storageUnits[strings.ToUpper(from)]
		toFactor = storageUnits[strings.ToUpper(to)]
	}
	if fromFactor == 0 || toFactor == 0 {
		return resp
	}
	resp.Result = value * fromFactor / toFactor
	if math.IsInf(resp.Result, 0) || math.IsNaN(resp.Result) {
		resp.Result = 0
	}
	return resp
}

var errNotTable = errors.New("top-level value must be a mapping")

// YamlToToml parses a YAML document and re-encodes it as TOML.
func YamlToToml(src string) (string, error) {
	var doc any
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return "", fmt.Errorf("parse yaml: %w", err)
	}
	if doc == nil {
		return "", nil
	}
	table, ok := normalize(doc).(map[string]any)
	if !ok {
		return "", errNotTable
	}
	out, err := toml.Marshal(table)
	if err != nil {
		return "", fmt.Errorf("encode toml: %w", err)
	}
	return string(out), nil
}

// TomlToYaml parses a TOML document and re-encodes it as YAML.
func TomlToYaml(src string) (string, error) {
	var doc map[string]any
	if err := toml.Unmarshal([]byte(src), &doc); err != nil {
		return "", fmt.Errorf("parse toml: %w", err)
	}
	if len(doc) == 0 {
		return "", nil
	}
	out, err := yaml.Marshal(normalize(doc))
	if err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return string(out), nil
}

// normalize rewrites decoded documents into shapes both encoders accept:
// string-keyed maps, no nil values, TOML local date/time types as strings.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, val := range t {
			if val == nil {
				continue
			}
			out = append(out, normalize(val))
		}
		return out
	case toml.LocalDate:
		return t.String()
	case toml.LocalTime:
		return t.String()
	case toml.LocalDateTime:
		return t.String()
	default:
		return v
	}
}
