package mfr

import "github.com/partscout/partscout/pkg/component"

// =============================================================================
// Passive, frequency-control and protection vendors
// =============================================================================

func passiveVendors() []*Manufacturer {
	return []*Manufacturer{
		{
			Name:        "Yageo",
			ID:          "yageo",
			PrefixRule:  `^(RC[0-9]{4}|CC[0-9]{4}|AC[0-9]{4}|RT[0-9]{4})`,
			PrefixCodes: []string{"RC", "CC"},
			Patterns: []TypePattern{
				{Type: component.Resistor, Exprs: []string{`^R[CT][0-9]{4}[A-Z0-9-]*`, `^AC[0-9]{4}[A-Z0-9-]*`}},
				{Type: component.Capacitor, Exprs: []string{`^CC[0-9]{4}[A-Z0-9-]*`}},
			},
		},
		{
			Name:        "Murata Manufacturing",
			ID:          "murata",
			PrefixRule:  `^(GRM|GCM|LQG|LQH|LQM|LQW|BLM|CSTNE|NCP1[58])`,
			PrefixCodes: []string{"GR", "LQ", "BL"},
			Patterns: []TypePattern{
				{Type: component.Capacitor, Exprs: []string{`^G[RC]M[0-9A-Z]+`}},
				{Type: component.Inductor, Exprs: []string{`^LQ[GHMW][0-9A-Z]+`, `^BLM[0-9A-Z]+`}},
				{Type: component.Crystal, Exprs: []string{`^CST[A-Z]*[0-9][0-9A-Z]*`}},
				{Type: component.TemperatureSensor, Exprs: []string{`^NCP1[58][A-Z0-9]+`}},
			},
		},
		{
			Name:        "TDK",
			ID:          "tdk",
			PrefixRule:  `^(CGA[0-9]|CKG[0-9]|MLZ|NLV|SLF|VLS|B57|B72)`,
			PrefixCodes: []string{"CG", "ML"},
			Patterns: []TypePattern{
				{Type: component.Capacitor, Exprs: []string{`^C(GA|KG)[0-9][0-9A-Z]+`}},
				{Type: component.Inductor, Exprs: []string{`^(MLZ|NLV|SLF|VLS)[0-9A-Z]+`}},
				{Type: component.Resistor, Exprs: []string{`^B57[0-9]+`}},
				{Type: component.Fuse, Exprs: []string{`^B72[0-9]+`}},
			},
		},
		{
			Name:        "KEMET",
			ID:          "kemet",
			PrefixRule:  `^(T49[0-9]|T52[0-9]|C0[0-9]{3}|A7[0-9]{2})`,
			PrefixCodes: []string{"T4", "T5"},
			Patterns: []TypePattern{
				{Type: component.Capacitor, Exprs: []string{`^T4[99][0-9A-Z]+`, `^T52[0-9][0-9A-Z]+`, `^C0[0-9]{3}[A-Z0-9]+`, `^A7[0-9]{2}[0-9A-Z]+`}},
			},
		},
		{
			Name:        "AVX",
			ID:          "avx",
			PrefixRule:  `^(TAJ[A-Z]|TPS[A-Z]|TCJ[A-Z])`,
			PrefixCodes: []string{"TA", "TP"},
			Patterns: []TypePattern{
				{Type: component.Capacitor, Exprs: []string{`^T(AJ|PS|CJ)[A-Z][0-9]+`}},
			},
		},
		{
			Name:        "Samsung Electro-Mechanics",
			ID:          "semco",
			PrefixRule:  `^CL[0-9]{2}[A-Z]`,
			PrefixCodes: []string{"CL"},
			Patterns: []TypePattern{
				{Type: component.Capacitor, Exprs: []string{`^CL[0-9]{2}[A-Z][0-9A-Z]+`}},
			},
		},
		{
			Name:        "Panasonic",
			ID:          "panasonic",
			PrefixRule:  `^(ERJ|ERA|EEE|EEU|ECA|ELL|EVQ)`,
			PrefixCodes: []string{"ER", "EE"},
			Patterns: []TypePattern{
				{Type: component.Resistor, Exprs: []string{`^ER[JA][0-9A-Z-]+`}},
				{Type: component.Capacitor, Exprs: []string{`^(EEE|EEU|ECA)[0-9A-Z-]+`}},
				{Type: component.Inductor, Exprs: []string{`^ELL[0-9A-Z-]+`}},
				{Type: component.Electromechanical, Exprs: []string{`^EVQ[0-9A-Z-]+`}},
			},
		},
		{
			Name:        "Bourns",
			ID:          "bourns",
			PrefixRule:  `^(3296|3362|3386|SRR[0-9]|SRN[0-9]|CR[0-9]{4}|MF-)`,
			PrefixCodes: []string{"32", "SR"},
			Patterns: []TypePattern{
				{Type: component.Resistor, Exprs: []string{`^3(296|362|386)[A-Z0-9-]*`, `^CR[0-9]{4}[A-Z0-9-]*`}},
				{Type: component.Inductor, Exprs: []string{`^SR[RN][0-9]+[A-Z0-9-]*`}},
				{Type: component.Fuse, Exprs: []string{`^MF-[A-Z0-9]+`}},
			},
		},
		{
			Name:        "Nichicon",
			ID:          "nichicon",
			PrefixRule:  `^U[A-Z]{2}[0-9]`,
			PrefixCodes: []string{"U"},
			Patterns: []TypePattern{
				{Type: component.Capacitor, Exprs: []string{`^U[A-Z]{2}[0-9][A-Z0-9]+`}},
			},
		},
		{
			Name:        "Würth Elektronik",
			ID:          "wurth",
			PrefixRule:  `^7[0-9]{8}`,
			PrefixCodes: []string{"74", "61"},
			Patterns: []TypePattern{
				{Type: component.Inductor, Exprs: []string{`^744[0-9]{6}`, `^784[0-9]{6}`}},
				{Type: component.Connector, Exprs: []string{`^61[0-9]{7,10}`}},
				{Type: component.Electromechanical, Exprs: []string{`^43[0-9]{7}`}},
			},
		},
		{
			Name:        "Littelfuse",
			ID:          "littelfuse",
			PrefixRule:  `^(045[0-9]|0154|157[0-9]|SMAJ|SMBJ|1812L|0805L)`,
			PrefixCodes: []string{"04", "SM"},
			Patterns: []TypePattern{
				{Type: component.Fuse, Exprs: []string{`^0(45[0-9]|154)[0-9.]+`, `^157[0-9][0-9.]+`, `^(1812|0805)L[0-9]+`}},
				{Type: component.Diode, Exprs: []string{`^SM[AB]J[0-9]+[CA]*`}},
			},
		},
		{
			Name:        "Epson",
			ID:          "epson",
			PrefixRule:  `^(FA-|FC-|TSX-|SG-|MA-|Q13)`,
			PrefixCodes: []string{"FA", "FC", "SG"},
			Patterns: []TypePattern{
				{Type: component.Crystal, Exprs: []string{`^(FA|FC|TSX|MA)-[0-9A-Z]+`, `^SG-[0-9A-Z]+`, `^Q13[0-9A-Z]+`}},
			},
		},
		{
			Name:        "Abracon",
			ID:          "abracon",
			PrefixRule:  `^AB(M|S|LS|M8|M3)`,
			PrefixCodes: []string{"AB"},
			Patterns: []TypePattern{
				{Type: component.Crystal, Exprs: []string{`^AB(M|S|LS)[0-9A-Z-]+`}},
			},
		},
	}
}
