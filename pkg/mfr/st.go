package mfr

import (
	"regexp"
	"strings"

	"github.com/partscout/partscout/pkg/component"
)

// stm32Re splits an STM32 MPN into family, line, pin-count letter, flash
// size and package letter, e.g. STM32F103C8T6 → F1, 03, C, 8, T.
var stm32Re = regexp.MustCompile(`^STM32([FLGHWU][0-9])([0-9]{2})([A-Z])([0-9A-Z])([A-Z])`)

// stm32Packages maps the STM32 package letter to its package family.
var stm32Packages = map[string]string{
	"T": "LQFP",
	"H": "BGA",
	"U": "UFQFPN",
	"Y": "WLCSP",
	"P": "TSSOP",
	"M": "SO",
	"K": "UFBGA",
	"J": "WLCSP",
	"V": "VFQFPN",
}

// stm32Pins maps the STM32 pin-count letter to the number of pins.
var stm32Pins = map[string]string{
	"F": "20",
	"G": "28",
	"K": "32",
	"T": "36",
	"S": "44",
	"C": "48",
	"R": "64",
	"M": "80",
	"O": "90",
	"V": "100",
	"Q": "132",
	"Z": "144",
	"I": "176",
	"B": "208",
	"N": "216",
}

func stMicro() *Manufacturer {
	return &Manufacturer{
		Name:        "STMicroelectronics",
		ID:          "st",
		PrefixRule:  `^(STM32|STM8|ST[0-9A-Z]|L78|L79|LD1117|LDL|L49|TS9|STP|STF|STB|STD|STTH|STPS|VND)`,
		PrefixCodes: []string{"ST", "L7", "LD"},
		Hints:       []string{"STM"},
		Patterns: []TypePattern{
			{Type: component.STM32MCU, Exprs: []string{`^STM32[FLGHWU][0-9]{3}`}},
			{Type: component.Microcontroller, Exprs: []string{`^STM8[SAL][0-9]+`}},
			{Type: component.Regulator78xx, Exprs: []string{`^L78[0-9]{2}`, `^L78M[0-9]{2}`, `^L78L[0-9]{2}`}},
			{Type: component.Regulator79xx, Exprs: []string{`^L79[0-9]{2}`, `^L79M[0-9]{2}`}},
			{Type: component.VoltageRegulator, Exprs: []string{`^LD1117[A-Z0-9]*`, `^LDL[0-9]{3}`, `^L4940`}},
			{Type: component.OpAmp, Exprs: []string{`^TS9[0-9]{2}`, `^LM[23]58[A-Z]*$`}},
			{Type: component.Mosfet, Exprs: []string{`^ST[PFBD][0-9]{1,3}N[0-9A-Z]+`}},
			{Type: component.Diode, Exprs: []string{`^STTH[0-9]+`, `^STPS[0-9]+`}},
			{Type: component.InterfaceIC, Exprs: []string{`^ST232[A-Z]*`, `^VND[0-9]+`}},
		},
		SeriesFunc:  stSeries,
		PackageFunc: stPackageCode,
	}
}

// stSeries keeps the family/line segment for STM32 and STM8 parts
// (STM32F103C8T6 → STM32F103) and falls back to the default otherwise.
func stSeries(mpn string) string {
	mpn = strings.ToUpper(mpn)
	if m := stm32Re.FindStringSubmatch(mpn); m != nil {
		return "STM32" + m[1] + m[2]
	}
	if strings.HasPrefix(mpn, "STM8") && len(mpn) >= 8 {
		return mpn[:8]
	}
	return DefaultSeries(mpn)
}

// stPackageCode derives the package designation from the trailing package
// letter of an STM32 MPN: STM32F103C8T6 → LQFP48.
func stPackageCode(mpn string) string {
	mpn = strings.ToUpper(mpn)
	m := stm32Re.FindStringSubmatch(mpn)
	if m == nil {
		return DefaultPackageCode(mpn)
	}
	pkg, ok := stm32Packages[m[5]]
	if !ok {
		return DefaultPackageCode(mpn)
	}
	if pins, ok := stm32Pins[m[3]]; ok {
		return pkg + pins
	}
	return pkg
}
