package mfr

import "github.com/partscout/partscout/pkg/component"

// =============================================================================
// Memory specialists
// =============================================================================

func memoryVendors() []*Manufacturer {
	return []*Manufacturer{
		{
			Name:        "Winbond Electronics",
			ID:          "winbond",
			PrefixRule:  `^W2[3459]`,
			PrefixCodes: []string{"W2"},
			Patterns: []TypePattern{
				{Type: component.SPIFlash, Exprs: []string{`^W25[QX][0-9]+[A-Z]*`}},
				{Type: component.SRAMMemory, Exprs: []string{`^W24[0-9]+`}},
				{Type: component.Memory, Exprs: []string{`^W29[A-Z][0-9]+`, `^W39[A-Z][0-9]+`}},
			},
		},
		{
			Name:        "Macronix International",
			ID:          "macronix",
			PrefixRule:  `^MX(25|29|66)`,
			PrefixCodes: []string{"MX"},
			Patterns: []TypePattern{
				{Type: component.SPIFlash, Exprs: []string{`^MX25[LRUV][0-9]+[A-Z]*`, `^MX66[LU][0-9]+`}},
				{Type: component.Memory, Exprs: []string{`^MX29[A-Z][0-9]+`}},
			},
		},
		{
			Name:        "Micron Technology",
			ID:          "micron",
			PrefixRule:  `^(MT[0-9]{2}|N25Q|M25P|MT25Q)`,
			PrefixCodes: []string{"MT"},
			Patterns: []TypePattern{
				{Type: component.SPIFlash, Exprs: []string{`^(N25Q|M25P|MT25Q)[0-9]+[A-Z]*`}},
				{Type: component.Memory, Exprs: []string{`^MT4[0-9][A-Z0-9]+`, `^MT29[A-Z][0-9]+`, `^MT48[A-Z0-9]+`}},
			},
		},
		{
			Name:        "ISSI",
			ID:          "issi",
			PrefixRule:  `^IS(25|6[12]|42)`,
			PrefixCodes: []string{"IS"},
			Patterns: []TypePattern{
				{Type: component.SPIFlash, Exprs: []string{`^IS25[LW]P[0-9]+`}},
				{Type: component.SRAMMemory, Exprs: []string{`^IS6[12][A-Z0-9]+`}},
				{Type: component.Memory, Exprs: []string{`^IS42[A-Z0-9]+`}},
			},
		},
	}
}
