package naming

import (
	"fmt"
	"strings"
)

// Rule identifies a case convention used to compute the externally visible
// name of a field from its declared name.
type Rule int

const (
	// Passthrough leaves the identifier unchanged. It is the default rule.
	Passthrough Rule = iota
	// Lowercase folds the whole identifier to lowercase: "FooBar" -> "foobar".
	Lowercase
	// Uppercase folds the whole identifier to uppercase: "FooBar" -> "FOOBAR".
	Uppercase
	// PascalCase capitalizes each word: "foo_bar" -> "FooBar".
	PascalCase
	// CamelCase capitalizes each word except the first: "foo_bar" -> "fooBar".
	CamelCase
	// SnakeCase joins lowercased words with underscores: "FooBar" -> "foo_bar".
	SnakeCase
	// ScreamingSnakeCase joins uppercased words with underscores: "FooBar" -> "FOO_BAR".
	ScreamingSnakeCase
	// KebabCase joins lowercased words with hyphens: "FooBar" -> "foo-bar".
	KebabCase
	// ScreamingKebabCase joins uppercased words with hyphens: "FooBar" -> "FOO-BAR".
	ScreamingKebabCase
)

// ParseRule converts the canonical spelling of a rule into a Rule.
func ParseRule(spelling string) (Rule, error) {
	switch spelling {
	case "lowercase":
		return Lowercase, nil
	case "UPPERCASE":
		return Uppercase, nil
	case "PascalCase":
		return PascalCase, nil
	case "camelCase":
		return CamelCase, nil
	case "snake_case":
		return SnakeCase, nil
	case "SCREAMING_SNAKE_CASE":
		return ScreamingSnakeCase, nil
	case "kebab-case":
		return KebabCase, nil
	case "SCREAMING-KEBAB-CASE":
		return ScreamingKebabCase, nil
	default:
		return Passthrough, fmt.Errorf("%w: %q", ErrUnknownRule, spelling)
	}
}

// Apply transforms the given identifier according to the rule. The result is a
// pure function of (rule, identifier).
func (rule Rule) Apply(identifier string) string {
	switch rule {
	case Lowercase:
		return strings.ToLower(identifier)
	case Uppercase:
		return strings.ToUpper(identifier)
	case PascalCase:
		return joinWords(splitIntoWords(identifier), "", capitalize)
	case CamelCase:
		return decapitalizeFirst(joinWords(splitIntoWords(identifier), "", capitalize))
	case SnakeCase:
		return joinWords(splitIntoWords(identifier), "_", strings.ToLower)
	case ScreamingSnakeCase:
		return joinWords(splitIntoWords(identifier), "_", strings.ToUpper)
	case KebabCase:
		return joinWords(splitIntoWords(identifier), "-", strings.ToLower)
	case ScreamingKebabCase:
		return joinWords(splitIntoWords(identifier), "-", strings.ToUpper)
	default:
		return identifier
	}
}

// String returns the canonical spelling of the rule.
func (rule Rule) String() string {
	switch rule {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "UPPERCASE"
	case PascalCase:
		return "PascalCase"
	case CamelCase:
		return "camelCase"
	case SnakeCase:
		return "snake_case"
	case ScreamingSnakeCase:
		return "SCREAMING_SNAKE_CASE"
	case KebabCase:
		return "kebab-case"
	case ScreamingKebabCase:
		return "SCREAMING-KEBAB-CASE"
	default:
		return "passthrough"
	}
}

func joinWords(words []string, separator string, fold func(string) string) string {
	folded := make([]string, len(words))
	for i, word := range words {
		folded[i] = fold(word)
	}

	return strings.Join(folded, separator)
}

// capitalize uppercases only the first rune, so acronym words keep their
// casing: "HTTP" stays "HTTP", "foo" becomes "Foo".
func capitalize(word string) string {
	if len(word) == 0 {
		return word
	}

	runes := []rune(word)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

func decapitalizeFirst(word string) string {
	if len(word) == 0 {
		return word
	}

	runes := []rune(word)
	return strings.ToLower(string(runes[0])) + string(runes[1:])
}
