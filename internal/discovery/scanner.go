package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"iniharness/internal/domain"
)

// ErrDirectoryNotFound is returned when the test directory does not exist
var ErrDirectoryNotFound = errors.New("test directory not found")

// Scanner scans a directory for test files named <prefix>*<extension>
type Scanner struct {
	prefix    string
	extension string
}

// NewScanner creates a new Scanner for the given file name prefix and extension
func NewScanner(prefix, extension string) *Scanner {
	return &Scanner{prefix: prefix, extension: extension}
}

// Scan finds all test files directly inside dir, sorted by file name.
// A directory without matches yields an empty slice and no error.
func (s *Scanner) Scan(dir string) ([]domain.TestCase, error) {
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("stat test path %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read test dir %s: %w", dir, err)
	}

	cases := make([]domain.TestCase, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !s.Match(entry.Name()) {
			continue
		}
		cases = append(cases, domain.TestCase{
			Path:        filepath.Join(dir, entry.Name()),
			FileName:    entry.Name(),
			DisplayName: DisplayName(entry.Name(), s.prefix, s.extension),
		})
	}

	// os.ReadDir already sorts by name; keep the contract explicit.
	sort.SliceStable(cases, func(i, j int) bool {
		return cases[i].FileName < cases[j].FileName
	})

	return cases, nil
}

// Match reports whether name follows the test file naming convention
func (s *Scanner) Match(name string) bool {
	return strings.HasPrefix(name, s.prefix) &&
		strings.HasSuffix(name, s.extension) &&
		len(name) >= len(s.prefix)+len(s.extension)
}
