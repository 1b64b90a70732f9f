package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/partscout/partscout/pkg/errors"
)

func TestCollectMPNs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.txt")
	content := "# header comment\nLM358N\n\n  1N4148  \n# trailing comment\nW25Q64FV\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	mpns, err := collectMPNs([]string{"STM32F103C8T6"}, path)
	if err != nil {
		t.Fatalf("collectMPNs() = %v", err)
	}

	want := []string{"STM32F103C8T6", "LM358N", "1N4148", "W25Q64FV"}
	if len(mpns) != len(want) {
		t.Fatalf("got %d MPNs, want %d: %v", len(mpns), len(want), mpns)
	}
	for i := range want {
		if mpns[i] != want[i] {
			t.Errorf("mpns[%d] = %q, want %q", i, mpns[i], want[i])
		}
	}
}

func TestCollectMPNsErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := collectMPNs(nil, filepath.Join(t.TempDir(), "missing.txt"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
		}
	})

	t.Run("invalid argument", func(t *testing.T) {
		_, err := collectMPNs([]string{"LM358\x01"}, "")
		if !errors.Is(err, errors.ErrCodeInvalidMPN) {
			t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidMPN)
		}
	})

	t.Run("invalid file line", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.txt")
		if err := os.WriteFile(path, []byte("LM358\x01N\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := collectMPNs(nil, path)
		if !errors.Is(err, errors.ErrCodeInvalidMPN) {
			t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidMPN)
		}
	})
}

func TestOrDash(t *testing.T) {
	if got := orDash(""); got != "—" {
		t.Errorf("orDash(\"\") = %q", got)
	}
	if got := orDash("LQFP48"); got != "LQFP48" {
		t.Errorf("orDash(LQFP48) = %q", got)
	}
}
