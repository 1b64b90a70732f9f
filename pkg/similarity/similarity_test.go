package similarity

import (
	"testing"

	"github.com/partscout/partscout/pkg/resolve"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	res, err := resolve.New(resolve.Options{})
	if err != nil {
		t.Fatalf("resolve.New() = %v", err)
	}
	return New(res)
}

func TestScoreContract(t *testing.T) {
	e := newEngine(t)

	for _, mpn := range []string{"STM32F103C8T6", "LM358N", "X", "????"} {
		if got := e.Score(mpn, mpn); got != 1.0 {
			t.Errorf("Score(%q, %q) = %v, want 1.0", mpn, mpn, got)
		}
	}

	for _, pair := range [][2]string{{"", "LM358N"}, {"LM358N", ""}, {"", ""}, {"  ", "LM358N"}} {
		if got := e.Score(pair[0], pair[1]); got != 0.0 {
			t.Errorf("Score(%q, %q) = %v, want 0.0", pair[0], pair[1], got)
		}
	}

	// Normalization makes case and padding invisible.
	if got := e.Score(" lm358n ", "LM358N"); got != 1.0 {
		t.Errorf("Score of case/space variants = %v, want 1.0", got)
	}
}

func TestScoreBounds(t *testing.T) {
	e := newEngine(t)

	pairs := [][2]string{
		{"LM7805", "MC7805"},
		{"LM7805", "LM7912"},
		{"74LS00", "74HC00"},
		{"74HC00", "CD4011BE"},
		{"W25Q64FV", "AT24C256"},
		{"2N3904", "BC547"},
		{"STM32F103C8T6", "PIC16F877A"},
		{"GRM188R71C104KA01D", "ZZZZZZ"},
	}
	for _, p := range pairs {
		got := e.Score(p[0], p[1])
		if got < 0.0 || got > 1.0 {
			t.Errorf("Score(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestScoreIsSymmetric(t *testing.T) {
	e := newEngine(t)

	pairs := [][2]string{
		{"LM7805", "MC7805"},
		{"LM7805", "LM7812"},
		{"74LS00", "74HC00"},
		{"74HC00", "CD4011BE"},
		{"AT24C256", "M24C256"},
		{"W25Q64FV", "MX25L6406E"},
		{"2N3904", "BC547"},
		{"2N3904", "2N3906"},
		{"STM32F103C8T6", "STM32F103RBT6"},
		{"LM358N", "W25Q64FV"},
	}
	for _, p := range pairs {
		ab := e.Score(p[0], p[1])
		ba := e.Score(p[1], p[0])
		if ab != ba {
			t.Errorf("Score(%q, %q) = %v but Score(%q, %q) = %v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestRegulatorScores(t *testing.T) {
	e := newEngine(t)

	// Same rail, different vendor prefix: near-perfect substitutes.
	if got := e.Score("LM7805", "MC7805"); got <= 0.7 {
		t.Errorf("Score(LM7805, MC7805) = %v, want > 0.7", got)
	}
	// Different regulated voltage is a different part.
	if got := e.Score("LM7805", "LM7812"); got >= 0.5 {
		t.Errorf("Score(LM7805, LM7812) = %v, want < 0.5", got)
	}
	// Opposite polarity is close to useless.
	if got := e.Score("LM7805", "LM7905"); got > 0.2 {
		t.Errorf("Score(LM7805, LM7905) = %v, want <= 0.2", got)
	}
	// Current-grade variant of the same rail stays high.
	if got := e.Score("LM7805", "MC78M05"); got < 0.5 {
		t.Errorf("Score(LM7805, MC78M05) = %v, want >= 0.5", got)
	}
}

func TestLogicScores(t *testing.T) {
	e := newEngine(t)

	// Same function code across technology segments.
	if got := e.Score("74LS00", "74HC00"); got < 0.8 {
		t.Errorf("Score(74LS00, 74HC00) = %v, want >= 0.8", got)
	}
	// Military family folds into the commercial space.
	if got := e.Score("54LS00", "74LS00"); got < 0.8 {
		t.Errorf("Score(54LS00, 74LS00) = %v, want >= 0.8", got)
	}
	// Cross-family same boolean function.
	if got := e.Score("74HC00", "CD4011BE"); got < 0.8 {
		t.Errorf("Score(74HC00, CD4011BE) = %v, want >= 0.8", got)
	}
	// Different functions stay low but never zero.
	got := e.Score("74HC00", "74HC74")
	if got <= 0.0 || got >= 0.5 {
		t.Errorf("Score(74HC00, 74HC74) = %v, want in (0, 0.5)", got)
	}
}

func TestMemoryScores(t *testing.T) {
	e := newEngine(t)

	// Curated cross-reference equivalents.
	if got := e.Score("AT24C256", "M24C256"); got < 0.9 {
		t.Errorf("Score(AT24C256, M24C256) = %v, want >= 0.9", got)
	}
	if got := e.Score("W25Q64FV", "MX25L6406E"); got < 0.9 {
		t.Errorf("Score(W25Q64FV, MX25L6406E) = %v, want >= 0.9", got)
	}
	// Technology mismatch is a hard incompatibility: the calculator is
	// authoritative and the engine must not fall through to the generic
	// blend.
	if got := e.Score("AT24C256", "W25Q64FV"); got != 0.0 {
		t.Errorf("Score(AT24C256, W25Q64FV) = %v, want 0.0", got)
	}
}

func TestTransistorScores(t *testing.T) {
	e := newEngine(t)

	// Cross-scheme equivalence group.
	if got := e.Score("2N3904", "BC547"); got < 0.8 {
		t.Errorf("Score(2N3904, BC547) = %v, want >= 0.8", got)
	}
	if got := e.Score("2N2222A", "PN2222A"); got < 0.8 {
		t.Errorf("Score(2N2222A, PN2222A) = %v, want >= 0.8", got)
	}
	// Same polarity outside any group stays loosely comparable.
	got := e.Score("2N3904", "2N4401")
	if got <= 0.05 || got >= 0.8 {
		t.Errorf("Score(2N3904, 2N4401) = %v, want in (0.05, 0.8)", got)
	}
	// Opposite polarity is a near-total mismatch.
	if got := e.Score("2N3904", "2N3906"); got > 0.1 {
		t.Errorf("Score(2N3904, 2N3906) = %v, want <= 0.1", got)
	}
}

func TestGenericFallback(t *testing.T) {
	e := newEngine(t)

	// Two STM32 parts in the same series: same base type, manufacturer
	// and series agree on every generic dimension.
	if got := e.Score("STM32F103C8T6", "STM32F103RBT6"); got < 0.9 {
		t.Errorf("Score of same-series STM32 pair = %v, want >= 0.9", got)
	}

	// Same vendor, different series: partial credit only.
	got := e.Score("STM32F103C8T6", "STM32F407VGT6")
	if got <= 0.0 || got >= 0.9 {
		t.Errorf("Score of cross-series STM32 pair = %v, want in (0, 0.9)", got)
	}

	// Nothing in common.
	if got := e.Score("STM32F103C8T6", "GRM188R71C104KA01D"); got >= 0.4 {
		t.Errorf("Score of unrelated pair = %v, want < 0.4", got)
	}
}

func TestExplain(t *testing.T) {
	e := newEngine(t)

	tests := []struct {
		a, b string
		rule string
	}{
		{"LM358N", "LM358N", "identical"},
		{"", "LM358N", "empty"},
		{"LM7805", "MC7805", "fixed-regulator"},
		{"74LS00", "74HC00", "standard-logic"},
		{"AT24C256", "M24C256", "serial-memory"},
		{"2N3904", "BC547", "bipolar-transistor"},
		{"STM32F103C8T6", "STM32F407VGT6", "generic"},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			score, rule := e.Explain(tt.a, tt.b)
			if rule != tt.rule {
				t.Errorf("Explain(%q, %q) rule = %q, want %q", tt.a, tt.b, rule, tt.rule)
			}
			if got := e.Score(tt.a, tt.b); got != score {
				t.Errorf("Score and Explain disagree: %v vs %v", got, score)
			}
		})
	}
}

func TestPackageScore(t *testing.T) {
	if got := Score("LM7805", "MC7805"); got <= 0.7 {
		t.Errorf("Score(LM7805, MC7805) = %v, want > 0.7", got)
	}
	if Score("LM7805", "MC7805") != Score("LM7805", "MC7805") {
		t.Error("package-level Score must be deterministic")
	}
}
