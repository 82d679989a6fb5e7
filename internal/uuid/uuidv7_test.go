package uuid

import (
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNew(t *testing.T) {
	id := New()

	parsed, err := googleuuid.Parse(id)
	if err != nil {
		t.Fatalf("New() returned unparsable id %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"generated", New(), true},
		{"canonical_v4", "2b1e6a3c-4d1f-4c3a-9f1e-7a2b3c4d5e6f", true},
		{"empty", "", false},
		{"numeric", "42", false},
		{"braces", "{2b1e6a3c-4d1f-4c3a-9f1e-7a2b3c4d5e6f}", false},
		{"urn", "urn:uuid:2b1e6a3c-4d1f-4c3a-9f1e-7a2b3c4d5e6f", false},
		{"bad_hex", "zb1e6a3c-4d1f-4c3a-9f1e-7a2b3c4d5e6f", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.input); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
