package mfr

import "github.com/partscout/partscout/pkg/component"

// =============================================================================
// Connector and electromechanical vendors
// =============================================================================

func connectorVendors() []*Manufacturer {
	return []*Manufacturer{
		{
			Name:        "Molex",
			ID:          "molex",
			PrefixRule:  `^(0?4[35][0-9]{3}-[0-9]{4}|5[0-9]{5}|87832)`,
			PrefixCodes: []string{"43", "50", "53"},
			Patterns: []TypePattern{
				{Type: component.Connector, Exprs: []string{`^0?4[35][0-9]{3}-[0-9]{4}`, `^5[0-9]{5}-[0-9]{4}`, `^87832-[0-9]{4}`}},
			},
		},
		{
			Name:        "TE Connectivity",
			ID:          "te",
			PrefixRule:  `^([0-9]{6,7}-[0-9]{1,2}$|282[0-9]{3})`,
			PrefixCodes: []string{"28", "17"},
			Patterns: []TypePattern{
				{Type: component.Connector, Exprs: []string{`^[0-9]{6,7}-[0-9]{1,2}$`, `^282[0-9]{3}-[0-9]`}},
				{Type: component.Relay, Exprs: []string{`^(V23[0-9]+|OMI[H]?-[A-Z0-9-]+)`}},
			},
		},
		{
			Name:        "JST",
			ID:          "jst",
			PrefixRule:  `^[BS][0-9]{1,2}B?-(XH|PH|ZH|EH|SH|GH)`,
			PrefixCodes: []string{"B", "S"},
			Patterns: []TypePattern{
				{Type: component.Connector, Exprs: []string{`^[BS][0-9]{1,2}B?-(XH|PH|ZH|EH|SH|GH)[A-Z0-9-]*`}},
			},
		},
		{
			Name:        "Hirose Electric",
			ID:          "hirose",
			PrefixRule:  `^(DF1[13]|FH1[29]|BM[0-9]{2}|U\.FL)`,
			PrefixCodes: []string{"DF", "FH"},
			Patterns: []TypePattern{
				{Type: component.Connector, Exprs: []string{`^DF1[13][A-Z0-9-]*`, `^FH1[29][A-Z0-9-]*`, `^U\.FL[A-Z0-9-]*`}},
			},
		},
		{
			Name:        "Amphenol",
			ID:          "amphenol",
			PrefixRule:  `^(10[0-9]{6}|SMA[0-9-]|901-[0-9]+)`,
			PrefixCodes: []string{"10", "90"},
			Patterns: []TypePattern{
				{Type: component.Connector, Exprs: []string{`^10[0-9]{6}[A-Z0-9-]*`, `^901-[0-9]+`}},
			},
		},
		{
			Name:        "Omron",
			ID:          "omron",
			PrefixRule:  `^(G[25][A-Z]*-|B3F-|XF2)`,
			PrefixCodes: []string{"G2", "G5"},
			Patterns: []TypePattern{
				{Type: component.Relay, Exprs: []string{`^G[25][A-Z]*-[0-9A-Z-]+`}},
				{Type: component.Electromechanical, Exprs: []string{`^B3F-[0-9]+`, `^XF2[A-Z0-9-]+`}},
			},
		},
	}
}
