package discovery

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName converts a test file name to a readable title:
// test_inline_comments.mojo becomes "Inline Comments".
func DisplayName(fileName, prefix, extension string) string {
	name := strings.TrimSuffix(fileName, extension)
	name = strings.TrimPrefix(name, prefix)
	name = strings.ReplaceAll(name, "_", " ")
	return cases.Title(language.Und).String(name)
}
