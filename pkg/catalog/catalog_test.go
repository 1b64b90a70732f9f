package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/partscout/partscout/pkg/component"
	"github.com/partscout/partscout/pkg/errors"
	"github.com/partscout/partscout/pkg/resolve"
)

const validCatalog = `
[[manufacturer]]
name = "Acme Semiconductor"
id = "acme"
prefix_rule = "^ACM[0-9]"
prefix_codes = ["ACM"]
hints = ["ACME"]

[[manufacturer.pattern]]
type = "op_amp"
exprs = ["^ACM10[0-9][A-Z]*"]

[[manufacturer]]
name = "Widget Micro"
id = "widget"

[[manufacturer.pattern]]
type = "microcontroller"
exprs = ["^WGT[0-9]{4}"]
`

func TestParse(t *testing.T) {
	handlers, err := Parse([]byte(validCatalog))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if len(handlers) != 2 {
		t.Fatalf("Parse() returned %d manufacturers, want 2", len(handlers))
	}

	acme := handlers[0]
	if acme.Name != "Acme Semiconductor" || string(acme.ID) != "acme" {
		t.Errorf("first handler = %s/%s", acme.Name, acme.ID)
	}
	if len(acme.Patterns) != 1 || acme.Patterns[0].Type != component.OpAmp {
		t.Errorf("acme patterns = %+v", acme.Patterns)
	}
	if string(handlers[1].ID) != "widget" {
		t.Errorf("second handler = %s, file order must be preserved", handlers[1].ID)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		code errors.Code
	}{
		{
			name: "malformed toml",
			toml: "[[manufacturer]\nname=",
			code: errors.ErrCodeInvalidCatalog,
		},
		{
			name: "empty catalog",
			toml: "# nothing here",
			code: errors.ErrCodeInvalidCatalog,
		},
		{
			name: "missing id",
			toml: "[[manufacturer]]\nname = \"No ID\"",
			code: errors.ErrCodeInvalidCatalog,
		},
		{
			name: "uppercase id",
			toml: "[[manufacturer]]\nname = \"Bad\"\nid = \"Bad\"",
			code: errors.ErrCodeInvalidCatalog,
		},
		{
			name: "missing name",
			toml: "[[manufacturer]]\nid = \"acme\"",
			code: errors.ErrCodeInvalidCatalog,
		},
		{
			name: "unknown type",
			toml: "[[manufacturer]]\nname = \"Acme\"\nid = \"acme\"\n[[manufacturer.pattern]]\ntype = \"warp_core\"\nexprs = [\"^WC\"]",
			code: errors.ErrCodeInvalidType,
		},
		{
			name: "pattern without expressions",
			toml: "[[manufacturer]]\nname = \"Acme\"\nid = \"acme\"\n[[manufacturer.pattern]]\ntype = \"op_amp\"",
			code: errors.ErrCodeInvalidCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.toml")
	if err := os.WriteFile(path, []byte(validCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	handlers, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if len(handlers) != 2 {
		t.Errorf("Load() returned %d manufacturers, want 2", len(handlers))
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadedHandlersResolve(t *testing.T) {
	handlers, err := Parse([]byte(validCatalog))
	if err != nil {
		t.Fatal(err)
	}

	eng, err := resolve.New(resolve.Options{Extra: handlers})
	if err != nil {
		t.Fatalf("resolve.New() = %v", err)
	}

	if got := eng.Manufacturer("ACM101X"); string(got.ID) != "acme" {
		t.Errorf("Manufacturer(ACM101X) = %s, want acme", got.ID)
	}
	if got := eng.Type("ACM101X"); got != component.OpAmp {
		t.Errorf("Type(ACM101X) = %s, want %s", got, component.OpAmp)
	}

	// Builtins resolve ahead of user vendors.
	if got := eng.Manufacturer("STM32F103C8T6"); string(got.ID) != "st" {
		t.Errorf("Manufacturer(STM32F103C8T6) = %s, want st", got.ID)
	}
}
