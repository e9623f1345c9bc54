package routes

import (
	"net/url"
	"strings"
)

// componentUnescaper restores the characters encodeURIComponent leaves
// alone but url.QueryEscape escapes.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s with the browser's encodeURIComponent rules:
// everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded.
func EncodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// DecodeURIComponent reverses EncodeURIComponent. A malformed escape
// returns s unchanged.
func DecodeURIComponent(s string) string {
	out, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return out
}
