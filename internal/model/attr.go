package model

import (
	"encoding/json"
	"strings"
)

// AttrValue is the value of a component attribute. Most attributes carry a
// single string; class-like attributes carry a set of tokens. Both forms
// round-trip through JSON: a single token marshals as a plain string, a
// token set as an array.
type AttrValue []string

// Attr wraps a plain attribute value.
func Attr(value string) AttrValue {
	return AttrValue{value}
}

// Tokens wraps a token set attribute value, e.g. class names.
func Tokens(values ...string) AttrValue {
	return AttrValue(values)
}

// String joins the value tokens with single spaces, the form used when
// projecting the attribute onto a rendered element.
func (v AttrValue) String() string {
	return strings.Join(v, " ")
}

// Has reports whether the value contains the given token.
func (v AttrValue) Has(token string) bool {
	for _, t := range v {
		if t == token {
			return true
		}
	}
	return false
}

func (v AttrValue) MarshalJSON() ([]byte, error) {
	if len(v) == 1 {
		return json.Marshal(v[0])
	}
	return json.Marshal([]string(v))
}

func (v *AttrValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*v = AttrValue{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*v = AttrValue(many)
	return nil
}
