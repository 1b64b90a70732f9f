// Package catalog loads user-defined manufacturer handlers from TOML.
//
// A catalog file extends the builtin handler set with additional vendors:
//
//	[[manufacturer]]
//	name = "Acme Semiconductor"
//	id = "acme"
//	prefix_rule = "^ACM[0-9]"
//	prefix_codes = ["ACM"]
//	hints = ["ACME"]
//
//	[[manufacturer.pattern]]
//	type = "op_amp"
//	exprs = ["^ACM10[0-9][A-Z]*"]
//
// Loaded handlers append after the builtins in file order, so builtin
// resolution is never shadowed and user vendors still resolve
// deterministically.
package catalog

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/partscout/partscout/pkg/component"
	"github.com/partscout/partscout/pkg/errors"
	"github.com/partscout/partscout/pkg/mfr"
	"github.com/partscout/partscout/pkg/pattern"
)

type catalogFile struct {
	Manufacturers []manufacturerEntry `toml:"manufacturer"`
}

type manufacturerEntry struct {
	Name        string         `toml:"name"`
	ID          string         `toml:"id"`
	PrefixRule  string         `toml:"prefix_rule"`
	PrefixCodes []string       `toml:"prefix_codes"`
	Hints       []string       `toml:"hints"`
	Patterns    []patternEntry `toml:"pattern"`
}

type patternEntry struct {
	Type  string   `toml:"type"`
	Exprs []string `toml:"exprs"`
}

// Parse decodes a TOML catalog from data and converts it to handlers
// ready for the resolver. Unknown component type names and malformed
// entries fail the whole catalog: a partially loaded vendor set would
// resolve differently from what the file author wrote down.
func Parse(data []byte) ([]*mfr.Manufacturer, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "malformed catalog")
	}
	if len(file.Manufacturers) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog defines no manufacturers")
	}

	out := make([]*mfr.Manufacturer, 0, len(file.Manufacturers))
	for _, entry := range file.Manufacturers {
		m, err := convert(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Load reads and parses the catalog file at path.
func Load(path string) ([]*mfr.Manufacturer, error) {
	if err := errors.ValidateCatalogPath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read catalog: %s", path)
	}
	return Parse(data)
}

func convert(entry manufacturerEntry) (*mfr.Manufacturer, error) {
	if err := errors.ValidateManufacturerID(entry.ID); err != nil {
		return nil, err
	}
	if entry.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "manufacturer %q has no name", entry.ID)
	}

	m := &mfr.Manufacturer{
		Name:        entry.Name,
		ID:          pattern.Owner(entry.ID),
		PrefixRule:  entry.PrefixRule,
		PrefixCodes: entry.PrefixCodes,
		Hints:       entry.Hints,
	}

	for _, p := range entry.Patterns {
		typ, ok := component.Parse(p.Type)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidType,
				"manufacturer %q declares unknown component type %q", entry.ID, p.Type)
		}
		if len(p.Exprs) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidCatalog,
				"manufacturer %q declares type %s with no expressions", entry.ID, p.Type)
		}
		m.Patterns = append(m.Patterns, mfr.TypePattern{Type: typ, Exprs: p.Exprs})
	}

	return m, nil
}
