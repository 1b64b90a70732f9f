package cli

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/partscout/partscout/pkg/component"
	"github.com/partscout/partscout/pkg/resolve"
)

// classification is one resolved part in a report.
type classification struct {
	MPN               string `json:"mpn"`
	Manufacturer      string `json:"manufacturer"`
	ManufacturerID    string `json:"manufacturer_id"`
	Type              string `json:"type"`
	Series            string `json:"series,omitempty"`
	Package           string `json:"package,omitempty"`
	Classified        bool   `json:"classified"`
	KnownManufacturer bool   `json:"known_manufacturer"`
}

// report is the JSON document produced by classify --json. Every report
// carries a unique ID so downstream BOM tooling can reference a specific
// classification run.
type report struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Count       int              `json:"count"`
	Items       []classification `json:"items"`
}

// classify resolves a single MPN into a report row.
func classify(eng *resolve.Engine, mpn string) classification {
	m := eng.Manufacturer(mpn)
	typ := eng.Type(mpn)
	return classification{
		MPN:               resolve.Normalize(mpn),
		Manufacturer:      m.Name,
		ManufacturerID:    string(m.ID),
		Type:              typ.String(),
		Series:            eng.Series(mpn),
		Package:           eng.PackageCode(mpn),
		Classified:        typ != component.Unknown,
		KnownManufacturer: string(m.ID) != "unknown",
	}
}

// newReport classifies every MPN and assembles the report document.
func newReport(eng *resolve.Engine, mpns []string) report {
	items := make([]classification, 0, len(mpns))
	for _, mpn := range mpns {
		items = append(items, classify(eng, mpn))
	}
	return report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Count:       len(items),
		Items:       items,
	}
}

// marshal renders the report as indented JSON.
func (r report) marshal() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
