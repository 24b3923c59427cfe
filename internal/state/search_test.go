package state

import "testing"

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"anything", "", true},
		{"notes.txt", "note", true},
		{"notes.txt", "tes", true},
		{"notes.txt", "xyz", false},
		{"Makefile", "make", true},
		{"Makefile", "FILE", false},
		{"Makefile", "Make", true},
		{"makefile", "Make", false},
		{"Straße.txt", "straße", true},
		{"ПРИВЕТ.txt", "привет", true},
		{"привет.txt", "Привет", false},
		{"a b c", " b ", true},
	}

	for _, tt := range tests {
		if got := matchesQuery(tt.name, tt.query); got != tt.want {
			t.Errorf("matchesQuery(%q, %q) = %v, want %v", tt.name, tt.query, got, tt.want)
		}
	}
}

func TestQueryHasUppercase(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"", false},
		{"abc", false},
		{"aBc", true},
		{"Z", true},
		{"über", false},
		{"Über", true},
		{"123!.", false},
	}

	for _, tt := range tests {
		if got := queryHasUppercase(tt.query); got != tt.want {
			t.Errorf("queryHasUppercase(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}
