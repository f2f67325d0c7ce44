package sdxl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// numericKeys are the body parameters whose values are coerced from text
// to integers. Everything else is passed through as a raw string.
var numericKeys = map[string]struct{}{
	"height":    {},
	"width":     {},
	"cfg_scale": {},
	"samples":   {},
	"seed":      {},
	"steps":     {},
}

// Body is an insertion-ordered JSON object. Setting an existing key
// replaces its value but keeps its original position, so the same
// logical body always serializes to the same bytes.
type Body struct {
	keys   []string
	values map[string]any
}

// NewBody creates an empty body.
func NewBody() *Body {
	return &Body{values: make(map[string]any)}
}

// Set stores a key/value pair. A repeated key keeps its first insertion
// position.
func (b *Body) Set(key string, value any) {
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
}

// Get returns the value for key and whether it is present.
func (b *Body) Get(key string) (any, bool) {
	v, ok := b.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (b *Body) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Len returns the number of keys.
func (b *Body) Len() int {
	return len(b.keys)
}

// MarshalJSON serializes the body with keys in insertion order.
func (b *Body) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(b.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshal body value %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode returns the canonical serialized form of the body.
func (b *Body) Encode() ([]byte, error) {
	return json.Marshal(b)
}

// ParseParams parses a flat key/value token list into body parameters.
// The list must have even length. Values for known numeric keys are
// coerced to integers; coercion failure is fatal.
func ParseParams(tokens []string) ([]Param, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if len(tokens)%2 != 0 {
		return nil, NewArgumentError("body params must be supplied in key/value pairs")
	}
	pairs, err := Pairs(tokens)
	if err != nil {
		return nil, err
	}
	params := make([]Param, 0, len(pairs))
	for _, p := range pairs {
		key, value := p[0], any(p[1])
		if _, ok := numericKeys[key]; ok {
			n, err := strconv.Atoi(p[1])
			if err != nil {
				return nil, &CoercionError{Key: key, Value: p[1], Err: err}
			}
			value = n
		}
		params = append(params, Param{Key: key, Value: value})
	}
	return params, nil
}

// BuildBody assembles the request body from defaults, user overrides and
// prompt entries, in that precedence order: overrides replace defaults,
// and text_prompts is always written last so no override can displace it.
func BuildBody(defaults Defaults, params []Param, prompts []PromptEntry) *Body {
	body := NewBody()
	body.Set("seed", defaults.Seed)
	for _, p := range params {
		body.Set(p.Key, p.Value)
	}
	body.Set("text_prompts", prompts)
	return body
}

// BuildRequest parses prompt and body-parameter token lists and assembles
// a serialized request using the given seed source for the default seed.
func BuildRequest(promptTokens, paramTokens []string, src SeedSource) (*Request, error) {
	prompts, err := ParsePrompts(promptTokens)
	if err != nil {
		return nil, err
	}
	params, err := ParseParams(paramTokens)
	if err != nil {
		return nil, err
	}
	body := BuildBody(DefaultBodyParams(src), params, prompts)
	data, err := body.Encode()
	if err != nil {
		return nil, err
	}
	return &Request{Body: data, Prompts: prompts}, nil
}

// RequestFromFile loads a prepared request body from a JSON or YAML file.
//
// JSON files are used verbatim and treated as already canonical. YAML
// files are re-encoded to JSON preserving key order. The text_prompts
// field, when present, is extracted for filename derivation.
func RequestFromFile(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request file: %w", err)
	}

	var body []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		body, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parse request file %s: %w", path, err)
		}
	default:
		if !json.Valid(data) {
			return nil, fmt.Errorf("request file %s is not valid JSON", path)
		}
		body = data
	}

	var probe struct {
		TextPrompts []PromptEntry `json:"text_prompts"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("parse request file %s: %w", path, err)
	}

	return &Request{Body: body, Prompts: probe.TextPrompts, FromFile: true}, nil
}

// yamlToJSON converts YAML to JSON preserving mapping key order.
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return json.Marshal(jsonValue(v))
}

// jsonValue rewrites ordered YAML mappings as Body values so JSON
// serialization keeps their key order.
func jsonValue(v any) any {
	switch t := v.(type) {
	case yaml.MapSlice:
		body := NewBody()
		for _, item := range t {
			body.Set(fmt.Sprint(item.Key), jsonValue(item.Value))
		}
		return body
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = jsonValue(t[i])
		}
		return out
	default:
		return v
	}
}
