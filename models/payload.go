package models

import (
	stdjson "encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

type PayloadKind int

const (
	PayloadObject PayloadKind = iota + 1
	PayloadArray
	PayloadScalar
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadObject:
		return "object"
	case PayloadArray:
		return "array"
	case PayloadScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Payload is a parsed document body. Exactly one of Object, Array or Scalar is meaningful,
// selected by Kind. Numbers are kept as json.Number.
type Payload struct {
	Kind   PayloadKind
	Object map[string]any
	Array  []any
	Scalar any
}

var ErrEmptyPayload = errors.New("payload is empty")

// ParsePayload validates raw as a single JSON value and classifies it.
func ParsePayload(raw string) (Payload, error) {
	if strings.TrimSpace(raw) == "" {
		return Payload{}, ErrEmptyPayload
	}
	data := []byte(raw)
	// goccy's Valid accepts trailing brackets, bare prefixes of literals and leading zeros.
	if !stdjson.Valid(data) {
		var v any
		if err := stdjson.Unmarshal(data, &v); err != nil {
			return Payload{}, err
		}
		return Payload{}, errors.New("invalid JSON document")
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Payload{}, err
	}
	return classify(v)
}

func classify(v any) (Payload, error) {
	switch t := v.(type) {
	case map[string]any:
		return Payload{Kind: PayloadObject, Object: t}, nil
	case []any:
		return Payload{Kind: PayloadArray, Array: t}, nil
	case nil, string, bool, json.Number, float64:
		return Payload{Kind: PayloadScalar, Scalar: t}, nil
	default:
		return Payload{}, fmt.Errorf("unsupported payload type %T", v)
	}
}

// Clone returns a deep copy of p.
func (p Payload) Clone() Payload {
	c := Payload{Kind: p.Kind, Scalar: p.Scalar}
	if p.Object != nil {
		c.Object = copyValue(p.Object).(map[string]any)
	}
	if p.Array != nil {
		c.Array = copyValue(p.Array).([]any)
	}
	return c
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = copyValue(e)
		}
		return m
	case []any:
		a := make([]any, len(t))
		for i, e := range t {
			a[i] = copyValue(e)
		}
		return a
	default:
		return v
	}
}
