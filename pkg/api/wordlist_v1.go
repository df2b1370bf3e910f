// pkg/api/wordlist_v1.go
package api

// WordlistV1 is the stable JSON output schema. Candidates appear in
// first-produced order; Count duplicates len(Candidates) for consumers that
// only read the header.
type WordlistV1 struct {
	Count      int      `json:"count"`
	Candidates []string `json:"candidates"`
}
