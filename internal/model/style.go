package model

import (
	"sort"
	"strings"
	"unicode"
)

// CamelToKebab converts a camelCase style key to its CSS property name,
// e.g. "backgroundColor" -> "background-color".
func CamelToKebab(key string) string {
	var b strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// KebabToCamel converts a CSS property name to the camelCase style key used
// throughout the component model, e.g. "border-radius" -> "borderRadius".
func KebabToCamel(prop string) string {
	parts := strings.Split(prop, "-")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// StyleCSS serializes a style map as inline CSS declarations. Keys are
// emitted in sorted order so the output is stable; empty values are skipped.
func StyleCSS(style map[string]string) string {
	if len(style) == 0 {
		return ""
	}
	keys := make([]string, 0, len(style))
	for k := range style {
		if style[k] != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	rules := make([]string, 0, len(keys))
	for _, k := range keys {
		rules = append(rules, CamelToKebab(k)+": "+style[k]+";")
	}
	return strings.Join(rules, " ")
}

// ParseBorderRadius expands a border-radius shorthand into its four corner
// values (top-left, top-right, bottom-right, bottom-left) following the CSS
// shorthand expansion rules.
func ParseBorderRadius(radius string) [4]string {
	var corners [4]string
	parts := strings.Fields(radius)
	switch len(parts) {
	case 1:
		corners = [4]string{parts[0], parts[0], parts[0], parts[0]}
	case 2:
		corners = [4]string{parts[0], parts[1], parts[0], parts[1]}
	case 3:
		corners = [4]string{parts[0], parts[1], parts[2], parts[1]}
	default:
		if len(parts) >= 4 {
			corners = [4]string{parts[0], parts[1], parts[2], parts[3]}
		}
	}
	return corners
}

// JoinBorderRadius rebuilds the border-radius shorthand from corner values,
// substituting "0px" for unset corners.
func JoinBorderRadius(corners [4]string) string {
	out := make([]string, 4)
	for i, c := range corners {
		if c == "" {
			c = "0px"
		}
		out[i] = c
	}
	return strings.Join(out, " ")
}
