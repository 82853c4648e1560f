package factory

import "strings"

type tagDirectives struct {
	rename    string
	sensitive bool
	opaque    bool
	arbitrary []string
}

func parseTag(tag string) tagDirectives {
	directives := tagDirectives{}
	if len(tag) == 0 {
		return directives
	}

	for _, token := range strings.Split(tag, ",") {
		token = strings.TrimSpace(token)
		if len(token) == 0 {
			continue
		}

		switch {
		case strings.HasPrefix(token, "rename="):
			directives.rename = strings.TrimPrefix(token, "rename=")
		case token == "sensitive":
			directives.sensitive = true
		case token == "opaque":
			directives.opaque = true
		default:
			directives.arbitrary = append(directives.arbitrary, token)
		}
	}

	return directives
}
