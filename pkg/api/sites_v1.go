// pkg/api/sites_v1.go
package api

// SiteV1 is the stable JSON/JSONL schema for one recognition-site hit.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SiteV1 struct {
	SequenceID string `json:"sequence_id"`
	Enzyme     string `json:"enzyme"`
	Site       string `json:"site"`
	Start      int    `json:"start"`
	End        int    `json:"end"` // exclusive; may be < start when the hit wraps
	Cut        int    `json:"cut"`
	Wraps      bool   `json:"wraps,omitempty"`
	Match      string `json:"match,omitempty"`
}

// FragmentV1 is the stable schema for one digest fragment.
type FragmentV1 struct {
	SequenceID string `json:"sequence_id"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Length     int    `json:"length"`
	Wraps      bool   `json:"wraps,omitempty"`
	Seq        string `json:"seq,omitempty"`
}

// ComplementV1 is the stable schema for a complemented molecule.
type ComplementV1 struct {
	SequenceID string `json:"sequence_id"`
	Kind       string `json:"kind"` // "DNA" | "RNA"
	Shape      string `json:"shape"`
	Length     int    `json:"length"`
	Sequence   string `json:"sequence"`
	Complement string `json:"complement"`
	FivePrime  string `json:"five_prime_bottom"`
	ThreePrime string `json:"three_prime_bottom"`
}

// EnzymeV1 is the stable schema for a catalog entry.
type EnzymeV1 struct {
	Name        string `json:"name"`
	Recognition string `json:"recognition"`
	Site        string `json:"site"`
	Cut         int    `json:"cut"`
	Palindromic bool   `json:"palindromic"`
}
