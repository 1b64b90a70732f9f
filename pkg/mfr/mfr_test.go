package mfr

import (
	"testing"

	"github.com/partscout/partscout/pkg/component"
	"github.com/partscout/partscout/pkg/pattern"
)

func TestBuiltinCatalogBuilds(t *testing.T) {
	cat, err := NewCatalog(Builtin())
	if err != nil {
		t.Fatalf("NewCatalog(Builtin()) = %v", err)
	}
	if len(cat.All()) == 0 {
		t.Fatal("builtin catalog is empty")
	}
}

func TestBuiltinOrderIsStable(t *testing.T) {
	a := Builtin()
	b := Builtin()
	if len(a) != len(b) {
		t.Fatalf("Builtin() length changed between calls: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("Builtin()[%d] = %s then %s", i, a[i].ID, b[i].ID)
		}
	}
}

func TestBuiltinIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Builtin() {
		id := string(m.ID)
		if seen[id] {
			t.Errorf("duplicate manufacturer ID %q", id)
		}
		seen[id] = true
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalog([]*Manufacturer{
		{Name: "A", ID: "x"},
		{Name: "B", ID: "x"},
	})
	if err == nil {
		t.Error("NewCatalog accepted duplicate IDs")
	}
}

func TestNewCatalogRejectsEmptyID(t *testing.T) {
	if _, err := NewCatalog([]*Manufacturer{{Name: "A"}}); err == nil {
		t.Error("NewCatalog accepted empty ID")
	}
}

func TestDefaultSeries(t *testing.T) {
	tests := []struct {
		mpn  string
		want string
	}{
		{"LM358N", "LM358"},
		{"lm358n", "LM358"},
		{"1N4148", "1N4148"},
		{"2N3904", "2N3904"},
		{"74HC00", "74HC00"},
		{"IRF530N", "IRF530"},
		{"", ""},
		{"---", ""},
	}
	for _, tt := range tests {
		t.Run(tt.mpn, func(t *testing.T) {
			if got := DefaultSeries(tt.mpn); got != tt.want {
				t.Errorf("DefaultSeries(%q) = %q, want %q", tt.mpn, got, tt.want)
			}
		})
	}
}

func TestDefaultPackageCode(t *testing.T) {
	tests := []struct {
		mpn  string
		want string
	}{
		{"LM358N", "N"},
		{"LM7805CT", "CT"},
		{"AT24C256-10PU", "10PU"},
		{"W25Q64FVSSIG", "FVSSIG"}, // trailing letter group after the numeric body
		{"1N4148", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.mpn, func(t *testing.T) {
			if got := DefaultPackageCode(tt.mpn); got != tt.want {
				t.Errorf("DefaultPackageCode(%q) = %q, want %q", tt.mpn, got, tt.want)
			}
		})
	}
}

func TestSTPackageCode(t *testing.T) {
	st := stMicro()
	tests := []struct {
		mpn  string
		want string
	}{
		{"STM32F103C8T6", "LQFP48"},
		{"STM32F407VGT6", "LQFP100"},
		{"STM32L476RGT6", "LQFP64"},
		{"STM32F103C8U6", "UFQFPN48"},
	}
	for _, tt := range tests {
		t.Run(tt.mpn, func(t *testing.T) {
			if got := st.PackageCode(tt.mpn); got != tt.want {
				t.Errorf("PackageCode(%q) = %q, want %q", tt.mpn, got, tt.want)
			}
		})
	}
}

func TestSTSeries(t *testing.T) {
	st := stMicro()
	if got := st.Series("STM32F103C8T6"); got != "STM32F103" {
		t.Errorf("Series(STM32F103C8T6) = %q, want STM32F103", got)
	}
}

func TestTIReplacement(t *testing.T) {
	ti := texasInstruments()
	tests := []struct {
		mpn, other string
		want       bool
	}{
		{"LM358N", "LM358AN", true},
		{"LM358AN", "LM358N", false},
		{"LM358N", "LM324N", false},
		{"", "LM358AN", false},
	}
	for _, tt := range tests {
		if got := ti.IsOfficialReplacement(tt.mpn, tt.other); got != tt.want {
			t.Errorf("IsOfficialReplacement(%q, %q) = %v, want %v", tt.mpn, tt.other, got, tt.want)
		}
	}
}

func TestOwnedPatternsMatch(t *testing.T) {
	cat, err := NewCatalog(Builtin())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		id   string
		mpn  string
		typ  component.Type
		want bool
	}{
		{"ti", "LM358N", component.OpAmp, true},
		{"ti", "LM358N", component.TemperatureSensor, true}, // LM35 prefix overlap, arbiter decides
		{"st", "STM32F103C8T6", component.STM32MCU, true},
		{"microchip", "PIC16F877A", component.PICMCU, true},
		{"winbond", "W25Q64FV", component.SPIFlash, true},
		{"infineon", "IRF530", component.MosfetIRF, true},
		{"vishay", "IRF530", component.MosfetIRF, true},
		{"ti", "STM32F103", component.STM32MCU, false}, // not TI's registration
	}
	for _, tt := range tests {
		t.Run(tt.id+"/"+tt.mpn, func(t *testing.T) {
			m, ok := cat.ByID(pattern.Owner(tt.id))
			if !ok {
				t.Fatalf("no handler %q", tt.id)
			}
			if got := m.Matches(cat.Registry(), tt.mpn, tt.typ); got != tt.want {
				t.Errorf("Matches(%q, %s) = %v, want %v", tt.mpn, tt.typ, got, tt.want)
			}
		})
	}
}
