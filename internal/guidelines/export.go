package guidelines

import (
	"encoding/json"
	"fmt"
	"sort"
)

// exportRecord is the external five-field representation of one guideline
// entry. This serialization is a convenience for inspection and reuse; the
// in-memory registry remains the source of truth.
type exportRecord struct {
	RDAMale    *float64 `json:"rda_male"`
	RDAFemale  *float64 `json:"rda_female"`
	UpperLimit *float64 `json:"upper_limit"`
	Unit       string   `json:"unit"`
	Name       string   `json:"name"`
}

// ExportJSON serializes the registry as key -> five-field record.
func (r *Registry) ExportJSON() ([]byte, error) {
	out := make(map[string]exportRecord, len(r.keys))
	for _, key := range r.keys {
		req := r.reqs[key]
		out[key] = exportRecord{
			RDAMale:    req.RDAMale,
			RDAFemale:  req.RDAFemale,
			UpperLimit: req.UpperLimit,
			Unit:       req.Unit,
			Name:       req.Name,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

// ImportJSON rebuilds a registry from an exported serialization. JSON objects
// carry no ordering, so the imported registry orders its keys
// lexicographically; Get results round-trip exactly, MatchKey tie-breaks may
// differ from the built-in definition order.
func ImportJSON(data []byte) (*Registry, error) {
	var raw map[string]exportRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode guidelines: %w", err)
	}

	r := &Registry{
		reqs: make(map[string]NutrientRequirement, len(raw)),
		keys: make([]string, 0, len(raw)),
	}
	for key, rec := range raw {
		r.reqs[key] = NutrientRequirement{
			RDAMale:    rec.RDAMale,
			RDAFemale:  rec.RDAFemale,
			UpperLimit: rec.UpperLimit,
			Unit:       rec.Unit,
			Name:       rec.Name,
		}
		r.keys = append(r.keys, key)
	}
	sort.Strings(r.keys)

	return r, nil
}
