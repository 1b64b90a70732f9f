package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/partscout/partscout/pkg/errors"
)

func TestBuildEngineDefault(t *testing.T) {
	eng, err := buildEngine(context.Background())
	if err != nil {
		t.Fatalf("buildEngine() = %v", err)
	}
	if got := eng.Manufacturer("STM32F103C8T6"); string(got.ID) != "st" {
		t.Errorf("Manufacturer = %s, want st", got.ID)
	}
}

func TestBuildEngineWithCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.toml")
	catalogToml := `
[[manufacturer]]
name = "Acme Semiconductor"
id = "acme"
prefix_rule = "^ACM[0-9]"

[[manufacturer.pattern]]
type = "op_amp"
exprs = ["^ACM10[0-9]"]
`
	if err := os.WriteFile(path, []byte(catalogToml), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := withCatalogPath(context.Background(), path)
	eng, err := buildEngine(ctx)
	if err != nil {
		t.Fatalf("buildEngine() = %v", err)
	}
	if got := eng.Manufacturer("ACM101"); string(got.ID) != "acme" {
		t.Errorf("Manufacturer(ACM101) = %s, want acme", got.ID)
	}
}

func TestBuildEngineBadCatalog(t *testing.T) {
	ctx := withCatalogPath(context.Background(), filepath.Join(t.TempDir(), "missing.toml"))
	_, err := buildEngine(ctx)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
