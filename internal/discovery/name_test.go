package discovery

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		fileName string
		expected string
	}{
		{"test_parser.mojo", "Parser"},
		{"test_inline_comments.mojo", "Inline Comments"},
		{"test_WRITER_roundtrip.mojo", "Writer Roundtrip"},
		{"test_utf8.mojo", "Utf8"},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			if got := DisplayName(tt.fileName, "test_", ".mojo"); got != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.fileName, got, tt.expected)
			}
		})
	}
}
