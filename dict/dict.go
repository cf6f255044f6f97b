// Package dict implements the keyword dictionary collaborator: an
// immutable mapping from known terms to concept records, matched
// against article text by case-insensitive substring containment.
package dict

import (
	"io"
	"sort"
	"strings"

	"github.com/prince50856457/readable"
	"gopkg.in/yaml.v3"
)

// Ensure Dictionary implements readable.Dictionary at compile time.
var _ readable.Dictionary = (*Dictionary)(nil)

// Dictionary holds the term lookup table. It is immutable after
// construction and safe for concurrent use.
type Dictionary struct {
	records []readable.ConceptRecord
	terms   []string // lowercased, index-aligned with records
}

// New creates a Dictionary from the given records. Records with empty
// terms are ignored; later duplicates of a term are ignored. Match
// output order follows term sort order so results are deterministic.
func New(records []readable.ConceptRecord) *Dictionary {
	sorted := make([]readable.ConceptRecord, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		term := strings.ToLower(strings.TrimSpace(rec.Term))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		sorted = append(sorted, rec)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Term) < strings.ToLower(sorted[j].Term)
	})

	d := &Dictionary{records: sorted}
	for _, rec := range sorted {
		d.terms = append(d.terms, strings.ToLower(strings.TrimSpace(rec.Term)))
	}
	return d
}

// Load reads dictionary records from YAML.
func Load(r io.Reader) (*Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var records []readable.ConceptRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, readable.Errorf(readable.EINVALID, "invalid dictionary file: %v", err)
	}

	return New(records), nil
}

// Match scans text for dictionary terms and returns one record per
// distinct matched term. Matching is case-insensitive substring
// containment; no partial or fuzzy matching.
func (d *Dictionary) Match(text string) []readable.ConceptRecord {
	if text == "" {
		return nil
	}
	lowered := strings.ToLower(text)

	var matched []readable.ConceptRecord
	for i, term := range d.terms {
		if strings.Contains(lowered, term) {
			matched = append(matched, d.records[i])
		}
	}
	return matched
}

// Len returns the number of known terms.
func (d *Dictionary) Len() int {
	return len(d.records)
}

// Default returns the built-in dictionary of common programming terms.
func Default() *Dictionary {
	return New([]readable.ConceptRecord{
		{
			Term:        "algorithm",
			Overview:    "A step-by-step procedure for solving a problem.",
			Explanation: "Algorithms describe computation independent of any programming language, characterized by their correctness and cost.",
			Example:     "Binary search finds an item in a sorted list in O(log n) comparisons.",
			Mistakes:    "Optimizing an algorithm before measuring whether it is the bottleneck.",
		},
		{
			Term:        "api",
			Overview:    "A contract through which software components communicate.",
			Explanation: "An API defines the operations, inputs, and outputs a component exposes while hiding its implementation.",
			Example:     "A weather service exposing GET /forecast?city=... over HTTP.",
			Mistakes:    "Breaking backward compatibility without versioning the interface.",
		},
		{
			Term:        "cache",
			Overview:    "A fast store of previously computed or fetched data.",
			Explanation: "Caches trade memory and staleness for latency; correctness hinges on an explicit invalidation strategy.",
			Example:     "Keeping rendered pages in memory keyed by URL for repeat visitors.",
			Mistakes:    "Caching without a TTL or invalidation path, serving stale data forever.",
		},
		{
			Term:        "concurrency",
			Overview:    "Structuring a program as independently progressing tasks.",
			Explanation: "Concurrency is about dealing with many things at once; shared mutable state is what makes it hard.",
			Example:     "A web server handling each request in its own goroutine.",
			Mistakes:    "Confusing concurrency with parallelism, or sharing state without synchronization.",
		},
		{
			Term:        "recursion",
			Overview:    "A function defined in terms of smaller instances of itself.",
			Explanation: "Recursive solutions mirror inductive problem structure: a base case plus a self-referential step.",
			Example:     "Walking a tree by visiting a node and recursing into its children.",
			Mistakes:    "Missing the base case, recursing until the stack overflows.",
		},
	})
}
