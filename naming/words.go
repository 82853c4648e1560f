package naming

import "unicode"

// splitIntoWords segments an identifier into words using three signals:
// explicit separators ('_', '-', whitespace), a lowercase-to-uppercase
// transition ("fooBar" -> "foo", "Bar") and an uppercase-to-uppercase
// transition followed by lowercase, which marks an acronym boundary
// ("HTTPRequest" -> "HTTP", "Request").
func splitIntoWords(identifier string) []string {
	runes := []rune(identifier)
	words := make([]string, 0, 4)
	current := make([]rune, 0, len(runes))

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for i, r := range runes {
		switch {
		case isSeparator(r):
			flush()
		case unicode.IsUpper(r):
			// digits behave like lowercase for boundary detection ("value2Go" -> "value2", "Go")
			previousIsLower := i > 0 && !unicode.IsUpper(runes[i-1]) && !isSeparator(runes[i-1])
			previousIsUpper := i > 0 && unicode.IsUpper(runes[i-1])
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if len(current) > 0 && (previousIsLower || (previousIsUpper && nextIsLower)) {
				flush()
			}

			current = append(current, r)
		default:
			current = append(current, r)
		}
	}

	flush()
	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}
