//go:build !windows

package shellsetup

import "testing"

func TestCleanProcessName(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"zsh\n", "zsh"},
		{"-zsh", "zsh"},
		{"/usr/local/bin/fish\n", "fish"},
		{"  bash  ", "bash"},
		{"", ""},
		{"\n", ""},
	}

	for _, tt := range tests {
		if got := cleanProcessName(tt.raw); got != tt.expected {
			t.Fatalf("cleanProcessName(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}
