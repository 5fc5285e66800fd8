package model

import (
	"bytes"
	"math"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Number is an optional numeric field as it appears in raw catalog data.
// Valid is false when the field was absent or held something that is not a number.
type Number struct {
	Value float64
	Valid bool
}

// Num returns a present Number.
func Num(v float64) Number {
	return Number{Value: v, Valid: true}
}

// Finite reports whether the number is present and neither NaN nor infinite.
func (n Number) Finite() bool {
	return n.Valid && !math.IsNaN(n.Value) && !math.IsInf(n.Value, 0)
}

// Ptr returns the value for serialization, nil unless Finite.
func (n Number) Ptr() *float64 {
	if !n.Finite() {
		return nil
	}
	v := n.Value
	return &v
}

// UnmarshalJSON never fails: strings, objects and out-of-range literals decode as absent.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*n = Num(v)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Ptr())
}

// UnmarshalYAML accepts !!int and !!float scalars (.nan and .inf included).
func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	*n = Number{}
	if value.Kind != yaml.ScalarNode {
		return nil
	}
	switch value.ShortTag() {
	case "!!int", "!!float":
		var v float64
		if err := value.Decode(&v); err != nil {
			return nil
		}
		*n = Num(v)
	}
	return nil
}

func (n Number) MarshalYAML() (interface{}, error) {
	return n.Ptr(), nil
}
