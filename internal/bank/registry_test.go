package bank

import (
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		input    string
		wantSlug string
		wantOK   bool
	}{
		{"sample", "sample", true},
		{"traffic", "traffic", true},
		{"first-aid", "first-aid", true},
		{"TRAFFIC", "traffic", true},
		{"  sample  ", "sample", true},
		{"demo", "sample", true},
		{"trafik", "traffic", true},
		{"ilkyardim", "first-aid", true},
		{"", "sample", true},
		{"no-such-quiz", "sample", false},
	}

	for _, tt := range tests {
		ref, ok := Resolve(tt.input)
		if ref.Slug != tt.wantSlug {
			t.Errorf("Resolve(%q).Slug = %q, want %q", tt.input, ref.Slug, tt.wantSlug)
		}
		if ok != tt.wantOK {
			t.Errorf("Resolve(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
		}
	}
}

func TestSlugs(t *testing.T) {
	slugs := Slugs()
	if len(slugs) != 3 {
		t.Fatalf("Slugs = %v, want 3 entries", slugs)
	}
	for i := 1; i < len(slugs); i++ {
		if slugs[i-1] >= slugs[i] {
			t.Errorf("Slugs not sorted: %v", slugs)
		}
	}
	for _, s := range slugs {
		if _, ok := Lookup(s); !ok {
			t.Errorf("Lookup(%q) missing", s)
		}
	}
}

func TestSourcePath(t *testing.T) {
	url := Ref{Slug: "remote", Source: "https://example.com/bank.json"}
	if got := SourcePath(url); got != url.Source {
		t.Errorf("URL source should pass through, got %q", got)
	}

	file := Ref{Slug: "sample", Source: "sample.json"}
	if got := SourcePath(file); got != filepath.Join("banks", "sample.json") {
		t.Errorf("SourcePath = %q", got)
	}

	t.Setenv("QUIZDECK_BANK_DIR", "/tmp/decks")
	if got := SourcePath(file); got != filepath.Join("/tmp/decks", "sample.json") {
		t.Errorf("SourcePath with QUIZDECK_BANK_DIR = %q", got)
	}
}
