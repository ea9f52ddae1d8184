package assets

import (
	"strconv"
	"strings"
)

// ColorSchemeID is the id of the inline block holding the color variables.
const ColorSchemeID = "pathway-color-scheme"

// ColorSchemeCSS returns the :root rule declaring --color-<n> for each value
// in order, numbered from 1. Values that could escape the declaration are
// dropped.
func ColorSchemeCSS(values []string) string {
	var b strings.Builder
	for idx, value := range values {
		value = strings.TrimSpace(value)
		if value == "" || strings.ContainsAny(value, ";{}<>\"'\\") {
			continue
		}
		b.WriteString("--color-")
		b.WriteString(strconv.Itoa(idx + 1))
		b.WriteString(":")
		b.WriteString(value)
		b.WriteString(";")
	}
	if b.Len() == 0 {
		return ""
	}
	return ":root{" + b.String() + "}"
}
