package casing

import (
	"strings"
	"unicode"
)

// ToSnake converts s to snake_case: "TestProp" -> "test_prop".
func ToSnake(s string) string {
	return joinLower(Words(s), "_")
}

// ToKebab converts s to kebab-case: "TestProp" -> "test-prop".
func ToKebab(s string) string {
	return joinLower(Words(s), "-")
}

// ToPascal converts s to PascalCase: "test_prop" -> "TestProp".
func ToPascal(s string) string {
	var b strings.Builder

	for i, w := range Words(s) {
		writeTitle(&b, w, i)
	}

	return b.String()
}

// ToCamel converts s to camelCase: "TEST_PROP" -> "testProp".
func ToCamel(s string) string {
	var b strings.Builder

	for i, w := range Words(s) {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}

		writeTitle(&b, w, i)
	}

	return b.String()
}

// writeTitle writes w with its first rune upper-cased and the rest lower-cased.
// A non-leading word that starts with a digit is prefixed with "_" so that it
// stays separated from the previous word.
func writeTitle(b *strings.Builder, w string, index int) {
	for i, r := range w {
		if i == 0 {
			if index > 0 && unicode.IsDigit(r) {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToUpper(r))

			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}
}

func joinLower(words []string, sep string) string {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return strings.Join(words, sep)
}

// Words splits an identifier into words.
// Examples:
//   - "test_prop" -> ["test", "prop"]
//   - "TEST_PROP" -> ["TEST", "PROP"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "version2Beta" -> ["version2", "Beta"]
func Words(s string) []string {
	if s == "" {
		return nil
	}

	var words []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		// Anything that is not a letter or digit separates words
		if isSeparator(r) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}

			continue
		}

		if current.Len() > 0 && startsWord(runes, i) {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// startsWord reports whether a new word begins at position i.
func startsWord(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) {
		return false
	}

	// Lower-case letter or digit followed by upper-case: "orderID" -> "order" + "ID"
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	// End of acronym: "XMLParser" -> "XML" + "Parser"
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
