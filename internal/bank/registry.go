package bank

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultSlug is the quiz used when no slug is given or the given one
// is unrecognized.
const DefaultSlug = "sample"

// Ref identifies a registered quiz bank.
type Ref struct {
	// Slug is the canonical identifier, also the persistence namespace
	// component for this quiz's snapshot.
	Slug string

	// Title is the human-readable quiz name.
	Title string

	// Source is the bank location: an http(s) URL, or a file name
	// resolved against the bank directory.
	Source string
}

// registry is the static slug table.
var registry = map[string]Ref{
	"sample":    {Slug: "sample", Title: "Sample Quiz", Source: "sample.json"},
	"traffic":   {Slug: "traffic", Title: "Traffic Rules", Source: "traffic.json"},
	"first-aid": {Slug: "first-aid", Title: "First Aid Basics", Source: "first-aid.json"},
}

// aliases maps alternate spellings onto canonical slugs.
var aliases = map[string]string{
	"demo":      "sample",
	"default":   "sample",
	"trafik":    "traffic",
	"firstaid":  "first-aid",
	"ilkyardim": "first-aid",
}

// Resolve maps a requested slug (possibly an alias, possibly empty or
// unknown) to a registered Ref. Unrecognized input falls back to the
// default quiz; the second return reports whether the input matched.
func Resolve(slug string) (Ref, bool) {
	s := strings.ToLower(strings.TrimSpace(slug))
	if canonical, ok := aliases[s]; ok {
		s = canonical
	}
	if ref, ok := registry[s]; ok {
		return ref, true
	}
	return registry[DefaultSlug], s == ""
}

// Slugs returns all canonical slugs in sorted order.
func Slugs() []string {
	out := make([]string, 0, len(registry))
	for s := range registry {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Aliases returns the alias table keys pointing at the given slug.
func Aliases(slug string) []string {
	var out []string
	for alias, canonical := range aliases {
		if canonical == slug {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// Lookup returns the Ref for a canonical slug.
func Lookup(slug string) (Ref, bool) {
	ref, ok := registry[slug]
	return ref, ok
}

// SourcePath resolves a Ref's source to something Load accepts. URLs
// pass through; file names are joined with the bank directory, which is
// QUIZDECK_BANK_DIR when set and ./banks otherwise.
func SourcePath(ref Ref) string {
	if strings.HasPrefix(ref.Source, "http://") || strings.HasPrefix(ref.Source, "https://") {
		return ref.Source
	}
	dir := os.Getenv("QUIZDECK_BANK_DIR")
	if dir == "" {
		dir = "banks"
	}
	return filepath.Join(dir, ref.Source)
}
