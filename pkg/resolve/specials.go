package resolve

import (
	"regexp"
	"strconv"

	"github.com/partscout/partscout/pkg/pattern"
)

// specialCase pins a structurally ambiguous family to one vendor,
// unconditionally. The table is ordered; the first hit wins.
//
// Every entry here exists because the generic ladder would get it wrong:
// the prefix is shared by several vendors' rule sets, and the historically
// correct owner is a matter of record, not structure.
type specialCase struct {
	re *regexp.Regexp
	id pattern.Owner
}

var specialCases = []specialCase{
	{regexp.MustCompile(`^STM(32|8)`), "st"},
	{regexp.MustCompile(`^(PIC|DSPIC)[0-9]`), "microchip"},
	{regexp.MustCompile(`^(ATMEGA|ATTINY|ATXMEGA|ATSAM|AT91SAM|AT2[45])`), "microchip"},
	{regexp.MustCompile(`^(MSP430|TMS320)`), "ti"},
	{regexp.MustCompile(`^ESP(32|82)`), "espressif"},
	// IR-prefix power MOSFETs: International Rectifier, now Infineon.
	// Vishay second-sources the range; the IR line is the original.
	{regexp.MustCompile(`^IR[FL]`), "infineon"},
	// The LM prefix is National Semiconductor legacy, now TI.
	{regexp.MustCompile(`^LM[0-9]`), "ti"},
	// The MC prefix is Motorola legacy, now onsemi.
	{regexp.MustCompile(`^MC[0-9]`), "onsemi"},
	{regexp.MustCompile(`^2N[0-9]`), "onsemi"},
	{regexp.MustCompile(`^W25[QX]`), "winbond"},
	{regexp.MustCompile(`^MX25`), "macronix"},
}

// diodeRanges partitions the JEDEC 1N number space among its historically
// correct vendors. Sub-ranges, not the whole prefix: ownership of the 1N
// registry is split.
var diodeRanges = []struct {
	lo, hi int
	id     pattern.Owner
}{
	{4001, 4007, "onsemi"}, // general-purpose rectifiers
	{4148, 4448, "vishay"}, // small-signal switching
	{5333, 5408, "onsemi"}, // power rectifiers and zeners
	{5817, 5825, "vishay"}, // Schottky
}

var diodeRe = regexp.MustCompile(`^1N([0-9]{4})`)

// specialVendor returns the pinned vendor for mpn, if any. mpn must already
// be normalized.
func specialVendor(mpn string) (pattern.Owner, bool) {
	for _, sc := range specialCases {
		if sc.re.MatchString(mpn) {
			return sc.id, true
		}
	}

	if m := diodeRe.FindStringSubmatch(mpn); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			for _, r := range diodeRanges {
				if n >= r.lo && n <= r.hi {
					return r.id, true
				}
			}
		}
	}

	return "", false
}
