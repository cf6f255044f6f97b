package readable

// ConceptRecord is a dictionary entry describing a known term.
type ConceptRecord struct {
	Term        string `json:"term" yaml:"term"`
	Overview    string `json:"overview" yaml:"overview"`
	Explanation string `json:"explanation" yaml:"explanation"`
	Example     string `json:"example" yaml:"example"`
	Mistakes    string `json:"mistakes" yaml:"mistakes"`
}

// Dictionary is an immutable mapping from known terms to concept
// records, queried by case-insensitive substring containment.
type Dictionary interface {
	// Match scans text for dictionary terms and returns one record
	// per distinct matched term. No partial or fuzzy matching.
	Match(text string) []ConceptRecord
}
