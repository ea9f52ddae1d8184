package onboarding

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeTextField reduces value to a single line of plain text: tags and
// control characters are removed and runs of whitespace collapse to one
// space. Invalid UTF-8 yields the empty string.
func SanitizeTextField(value string) string {
	if !utf8.ValidString(value) {
		return ""
	}
	value = stripTags(value)
	var b strings.Builder
	b.Grow(len(value))
	space := false
	for _, r := range value {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsControl(r):
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripTags removes tags. A < opens a tag only before a letter, /, ! or ?;
// any other < is kept as &lt;. An unterminated tag drops the rest of the
// input.
func stripTags(value string) string {
	if !strings.ContainsRune(value, '<') {
		return value
	}
	var b strings.Builder
	for idx := 0; idx < len(value); idx++ {
		c := value[idx]
		if c != '<' {
			b.WriteByte(c)
			continue
		}
		if idx+1 >= len(value) || !opensTag(value[idx+1]) {
			b.WriteString("&lt;")
			continue
		}
		end := strings.IndexByte(value[idx:], '>')
		if end < 0 {
			break
		}
		idx += end
	}
	return b.String()
}

func opensTag(c byte) bool {
	return c == '/' || c == '!' || c == '?' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Intval parses the leading integer of value the way a lenient form decoder
// does: optional whitespace and sign, then digits. Anything else yields 0.
func Intval(value string) int64 {
	value = strings.TrimLeft(value, " \t\n\r\v\f")
	negative := false
	if value != "" && (value[0] == '+' || value[0] == '-') {
		negative = value[0] == '-'
		value = value[1:]
	}
	var n int64
	for idx := 0; idx < len(value); idx++ {
		c := value[idx]
		if c < '0' || c > '9' {
			break
		}
		if n > (1<<63-1-int64(c-'0'))/10 {
			if negative {
				return -1 << 63
			}
			return 1<<63 - 1
		}
		n = n*10 + int64(c-'0')
	}
	if negative {
		return -n
	}
	return n
}
