package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for importing a plan with
// progress recorded elsewhere.
type ImportSchema struct {
	Plan      PlanImport        `json:"plan"`
	Memorized []MemorizedImport `json:"memorized,omitempty"`
	Reviews   []ReviewImport    `json:"reviews,omitempty"`
}

// PlanImport defines the plan-level fields in the import file.
type PlanImport struct {
	Chapter      int    `json:"chapter"`
	StartDate    string `json:"start_date"`
	VersesPerDay int    `json:"verses_per_day"`
}

// MemorizedImport records one memorized verse. At accepts YYYY-MM-DD or
// an RFC 3339 timestamp.
type MemorizedImport struct {
	Verse int    `json:"verse"`
	At    string `json:"at"`
}

// ReviewImport records one completed murajaah. A missing End marks a
// single-verse review.
type ReviewImport struct {
	Start int    `json:"start"`
	End   *int   `json:"end,omitempty"`
	At    string `json:"at"`
}

// LoadImportSchema reads and parses a plan import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
