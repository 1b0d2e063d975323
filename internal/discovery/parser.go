package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

// testFunctionPattern matches Mojo test functions, e.g.
//
//	fn test_parse_simple() raises:
//	def test_sections():
var testFunctionPattern = regexp.MustCompile(`(?m)^\s*(?:fn|def)\s+(test_\w+)\s*[\[(]`)

// Parser parses test files to extract test functions
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindTestFunctions finds all test functions in a test file
func (p *Parser) FindTestFunctions(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	seen := make(map[string]bool) // Use map to avoid duplicates
	var functions []string
	for _, match := range testFunctionPattern.FindAllStringSubmatch(string(content), -1) {
		if len(match) > 1 && !seen[match[1]] {
			seen[match[1]] = true
			functions = append(functions, match[1])
		}
	}

	// Sort for consistent output
	sort.Strings(functions)

	return functions, nil
}
