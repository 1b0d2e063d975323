package domain

// TestCase represents a discovered test file to be executed
type TestCase struct {
	Path        string // Path to the test file, as discovered
	FileName    string // Just the filename, used for ordering and the failure summary
	DisplayName string // Human-readable name for progress output
}
