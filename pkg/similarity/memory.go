package similarity

import (
	"regexp"
	"strings"

	"github.com/partscout/partscout/pkg/component"
)

// =============================================================================
// Serial memories
// =============================================================================

type memIface int

const (
	ifaceI2C memIface = iota
	ifaceSPI
	ifaceMicrowire
)

type memTech int

const (
	techEEPROM memTech = iota
	techFlash
	techSRAM
)

type memPart struct {
	tech     memTech
	iface    memIface
	capacity string // density digits as printed, not normalized to bits
	grade    string // voltage/temperature grade letters, vendor-specific
}

var (
	spiFlashRe   = regexp.MustCompile(`^(W25[QX]|MX25[LRUV]|MX66[LU]|N25Q|M25P|MT25Q|SST25[A-Z]{0,2}|IS25[LW]P)([0-9]{1,4})`)
	eeprom24Re   = regexp.MustCompile(`^(AT|M|CAT|BR|FM)?24(C|LC|AA|FC|W)?([0-9]{1,4})`)
	eeprom93Re   = regexp.MustCompile(`^(AT|M|CAT)?93(C|LC|AA)?([0-9]{1,3})`)
	eeprom25Re   = regexp.MustCompile(`^(AT|M|CAT|FM)25(C|LC|AA)?([0-9]{1,4})`)
	serialSRAMRe = regexp.MustCompile(`^(23|IS6[12]|CY62)(LC|LCV|A|K)?([0-9]{1,4})`)
)

// parseMem decomposes a serial-memory number into its technology, bus
// interface, density digits and grade letters. Flash families are tried
// first: the 25 bus digit is shared between SPI EEPROMs and every SPI
// flash family, and only the vendor family prefix separates them.
func parseMem(mpn string) (memPart, bool) {
	if m := spiFlashRe.FindStringSubmatch(mpn); m != nil {
		return memPart{tech: techFlash, iface: ifaceSPI, capacity: m[2]}, true
	}
	if m := eeprom24Re.FindStringSubmatch(mpn); m != nil {
		return memPart{tech: techEEPROM, iface: ifaceI2C, capacity: m[3], grade: m[2]}, true
	}
	if m := eeprom93Re.FindStringSubmatch(mpn); m != nil {
		return memPart{tech: techEEPROM, iface: ifaceMicrowire, capacity: m[3], grade: m[2]}, true
	}
	if m := eeprom25Re.FindStringSubmatch(mpn); m != nil {
		return memPart{tech: techEEPROM, iface: ifaceSPI, capacity: m[3], grade: m[2]}, true
	}
	if m := serialSRAMRe.FindStringSubmatch(mpn); m != nil {
		return memPart{tech: techSRAM, iface: ifaceSPI, capacity: m[3], grade: m[2]}, true
	}
	return memPart{}, false
}

// memCrossRefs lists base part numbers known to be drop-in equivalents
// across vendors. Prefix match against the normalized MPN.
var memCrossRefs = [][]string{
	{"AT24C256", "M24C256", "24LC256", "CAT24C256"},
	{"AT24C32", "M24C32", "24LC32"},
	{"AT24C02", "M24C02", "24LC02"},
	{"W25Q64", "MX25L64", "IS25LP064", "N25Q064"},
	{"W25Q32", "MX25L32", "IS25LP032"},
	{"W25Q128", "MX25L128", "IS25LP128", "N25Q128"},
}

func memCrossRef(a, b string) bool {
	for _, group := range memCrossRefs {
		inA, inB := false, false
		for _, base := range group {
			if strings.HasPrefix(a, base) {
				inA = true
			}
			if strings.HasPrefix(b, base) {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}

// Memory blend weights over the attributes that survive the hard
// compatibility gate.
const (
	weightMemCapacity = 0.5
	weightMemGrade    = 0.2
	weightMemPackage  = 0.3
)

// memoryCalculator scores serial-memory pairs. Technology or bus
// interface disagreement is a hard incompatibility and short-circuits to
// 0.0; the remaining attributes blend, and a curated cross-reference hit
// overrides the blend with a near-certain score.
func memoryCalculator() Calculator {
	return Calculator{
		Name: "serial-memory",
		Applicable: func(a, b Resolution) bool {
			return looksMem(a) && looksMem(b)
		},
		Score: func(a, b Resolution) float64 {
			if memCrossRef(a.MPN, b.MPN) {
				return 0.95
			}

			ma, _ := parseMem(a.MPN)
			mb, _ := parseMem(b.MPN)
			if ma.tech != mb.tech || ma.iface != mb.iface {
				return 0.0
			}

			score := 0.0
			if ma.capacity != "" && ma.capacity == mb.capacity {
				score += weightMemCapacity
			}
			if ma.grade == mb.grade {
				score += weightMemGrade
			}
			if a.Package != "" && a.Package == b.Package {
				score += weightMemPackage
			}
			return score
		},
	}
}

func looksMem(r Resolution) bool {
	switch r.Type {
	case component.SerialEEPROM, component.SPIFlash, component.SRAMMemory:
		return true
	}
	if r.Type != component.Unknown {
		return false
	}
	_, ok := parseMem(r.MPN)
	return ok
}
