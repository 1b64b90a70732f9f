package mfr

import (
	"strings"

	"github.com/partscout/partscout/pkg/component"
)

// =============================================================================
// Broad-line analog and discrete vendors
// =============================================================================

func analogVendors() []*Manufacturer {
	return []*Manufacturer{
		texasInstruments(),
		{
			Name:        "Analog Devices",
			ID:          "adi",
			PrefixRule:  `^(AD[0-9]|ADA4|ADR[0-9]|ADM[0-9]|ADT7|ADUC|OP[0-9]{2}|LT[0-9]{4}|LTC[0-9])`,
			PrefixCodes: []string{"AD", "OP", "LT"},
			Patterns: []TypePattern{
				{Type: component.OpAmp, Exprs: []string{`^AD8[0-9]{2,3}`, `^ADA4[0-9]{3}`, `^OP[0-9]{2,3}[A-Z]*$`, `^LT1[0-9]{3}`}},
				{Type: component.VoltageReference, Exprs: []string{`^REF19[0-9]`, `^ADR[0-9]{3}`, `^LT1004`}},
				{Type: component.InterfaceIC, Exprs: []string{`^ADM[0-9]{3,4}`, `^LTC485`}},
				{Type: component.TemperatureSensor, Exprs: []string{`^TMP3[0-9]`, `^AD590`, `^ADT7[0-9]{3}`}},
				{Type: component.Microcontroller, Exprs: []string{`^ADUC[0-9]+`}},
			},
		},
		{
			Name:        "Maxim Integrated",
			ID:          "maxim",
			PrefixRule:  `^(MAX[0-9]|DS1[0-9]|DS2[0-9]|DS3[0-9]|ICL7)`,
			PrefixCodes: []string{"MAX", "DS"},
			Patterns: []TypePattern{
				{Type: component.InterfaceIC, Exprs: []string{`^MAX(232|3232|485|3485|13487)`, `^DS1[34][0-9]{2}`}},
				{Type: component.TemperatureSensor, Exprs: []string{`^DS18B20`, `^DS1621`, `^MAX318[0-9]{2}`, `^MAX66[0-9]{2}`}},
				{Type: component.OpAmp, Exprs: []string{`^MAX44[0-9]{2}`}},
				{Type: component.VoltageRegulator, Exprs: []string{`^MAX6[0-9]{2}[A-Z]`, `^MAX171[0-9]`}},
				{Type: component.IntegratedCircuit, Exprs: []string{`^ICL7[0-9]{3}`}},
			},
		},
		onSemi(),
		{
			Name:        "Infineon Technologies",
			ID:          "infineon",
			PrefixRule:  `^(IRF|IRL|IRS|IR2|BSS|BSC|IPB|IPP|TLE[0-9]|XMC)`,
			PrefixCodes: []string{"IR", "BS"},
			Hints:       []string{"IFX"},
			Patterns: []TypePattern{
				{Type: component.MosfetIRF, Exprs: []string{`^IR(F|L)[PZSBU]?[0-9]{3,4}`}},
				{Type: component.Mosfet, Exprs: []string{`^BSS[0-9]+`, `^BSC[0-9]+`, `^IP[BP][0-9]+`}},
				{Type: component.InterfaceIC, Exprs: []string{`^TLE[0-9]{4}`, `^IR2[0-9]{3}`}},
				{Type: component.Microcontroller, Exprs: []string{`^XMC[0-9]{4}`}},
			},
		},
		{
			Name:        "Vishay",
			ID:          "vishay",
			PrefixRule:  `^(SI[0-9]{4}|CRCW|BZX[0-9]|BAT[0-9]|BAV[0-9]|TSOP[0-9]|VS-)`,
			PrefixCodes: []string{"SI", "1N", "IRF"},
			Patterns: []TypePattern{
				{Type: component.Mosfet, Exprs: []string{`^SI[0-9]{4}[A-Z]*`}},
				{Type: component.MosfetIRF, Exprs: []string{`^IRF[0-9]{3,4}`}},
				{Type: component.Diode1N, Exprs: []string{`^1N4148`, `^1N58[0-9]{2}`}},
				{Type: component.Diode, Exprs: []string{`^BZX[0-9]{2}[A-Z0-9-]*`, `^BAT[0-9]{2}`, `^BAV[0-9]{2}`}},
				{Type: component.Resistor, Exprs: []string{`^CRCW[0-9]{4}`}},
				{Type: component.Optoelectronic, Exprs: []string{`^TSOP[0-9]{4}`}},
			},
		},
		{
			Name:        "Nexperia",
			ID:          "nexperia",
			PrefixRule:  `^(74LVC|74AUP|PMBT|PMEG|BAS[0-9]|BAT54|BC8[0-9])`,
			PrefixCodes: []string{"74", "BC"},
			Patterns: []TypePattern{
				{Type: component.Logic74Series, Exprs: []string{`^74(LVC|AUP|AHC|HC)[0-9]{1,4}[A-Z]*`}},
				{Type: component.TransistorBC, Exprs: []string{`^BC8[0-9]{2}`}},
				{Type: component.BipolarTransistor, Exprs: []string{`^PMBT[0-9]{3,4}`}},
				{Type: component.Diode, Exprs: []string{`^BAS[0-9]{2}`, `^BAT54[A-Z]*`, `^PMEG[0-9]+`}},
			},
		},
		{
			Name:        "Diodes Incorporated",
			ID:          "diodes",
			PrefixRule:  `^(MMBT|DMG[0-9]|DMN[0-9]|DMP[0-9]|SS[12][0-9]|B3[24]0|AP2[0-9])`,
			PrefixCodes: []string{"MM", "SS"},
			Patterns: []TypePattern{
				{Type: component.BipolarTransistor, Exprs: []string{`^MMBT[0-9]{3,4}`}},
				{Type: component.Mosfet, Exprs: []string{`^DM[GNP][0-9]+`}},
				{Type: component.Diode, Exprs: []string{`^SS[12][0-9]`, `^B3[24]0[A-Z]*`}},
				{Type: component.VoltageRegulator, Exprs: []string{`^AP2[0-9]{3}`}},
			},
		},
		{
			Name:        "ROHM Semiconductor",
			ID:          "rohm",
			PrefixRule:  `^(BA[0-9]{3}|BD[0-9]{3}|MCR[0-9]|SML[0-9]|RB[0-9]{3}|2SCR|2SAR)`,
			PrefixCodes: []string{"BA", "BD"},
			Patterns: []TypePattern{
				{Type: component.OpAmp, Exprs: []string{`^BA[0-9]{3,4}[A-Z]*`}},
				{Type: component.VoltageRegulator, Exprs: []string{`^BD[0-9]{2}[A-Z][0-9][A-Z]*`}},
				{Type: component.BipolarTransistor, Exprs: []string{`^2S[CA]R[0-9]{3,4}`}},
				{Type: component.Resistor, Exprs: []string{`^MCR[0-9]{2}`}},
				{Type: component.LED, Exprs: []string{`^SML[0-9A-Z-]+`}},
				{Type: component.Diode, Exprs: []string{`^RB[0-9]{3}`}},
			},
		},
		{
			Name:        "Toshiba",
			ID:          "toshiba",
			PrefixRule:  `^(2S[ABCD][0-9]|TK[0-9]|TC74|TLP[0-9]|TB62)`,
			PrefixCodes: []string{"2S", "TC"},
			Patterns: []TypePattern{
				{Type: component.BipolarTransistor, Exprs: []string{`^2S[ABCD][0-9]{3,4}`}},
				{Type: component.Mosfet, Exprs: []string{`^TK[0-9]{1,3}[A-Z][0-9]{2}`}},
				{Type: component.Logic74Series, Exprs: []string{`^TC74(HC|HCT|VHC)[0-9]{2,4}`}},
				{Type: component.Optoelectronic, Exprs: []string{`^TLP[0-9]{3,4}`}},
			},
		},
	}
}

func texasInstruments() *Manufacturer {
	return &Manufacturer{
		Name:        "Texas Instruments",
		ID:          "ti",
		PrefixRule:  `^(SN74|SN75|TL[0-9]|TLC|TPS[0-9]|OPA|INA|UCC|CD4[0-9]{3}|LM[0-9]|NE5[0-9]{2}|MSP430|TMS320|CC[12][0-9]{3}|UA7|REF0|DRV8)`,
		PrefixCodes: []string{"SN", "TL", "TPS", "OPA", "INA", "LM", "NE", "CD"},
		Patterns: []TypePattern{
			{Type: component.OpAmp, Exprs: []string{
				`^LM(124|158|2(24|58)|3(24|58)|7(41|47|48))[A-Z]*`,
				`^TL0(6|7|8)[0-9][A-Z]*`,
				`^OPA[0-9]{3,4}`,
				`^NE5532`,
				`^TLV[0-9]{3,4}`,
			}},
			{Type: component.Comparator, Exprs: []string{`^LM[23]39[A-Z]*`, `^LM393[A-Z]*`, `^TL331`, `^TLC372`}},
			{Type: component.Regulator78xx, Exprs: []string{`^LM78[0-9]{2}`, `^UA78[0-9]{2}`, `^TL780`}},
			{Type: component.Regulator79xx, Exprs: []string{`^LM79[0-9]{2}`, `^UA79[0-9]{2}`}},
			{Type: component.RegulatorLM317, Exprs: []string{`^LM[23]17[A-Z]*`, `^LM337[A-Z]*`}},
			{Type: component.VoltageRegulator, Exprs: []string{`^TPS7[0-9]{3}`, `^TPS5[0-9]{3}`, `^LM25[0-9]{2}`, `^LM1117`}},
			{Type: component.VoltageReference, Exprs: []string{`^TL431`, `^REF0[0-9]`, `^LM4040`}},
			{Type: component.TimerIC, Exprs: []string{`^NE55[56]`, `^LM555`, `^TLC555`, `^SE555`}},
			{Type: component.Logic74Series, Exprs: []string{
				`^SN[57]4[A-Z0-9]+`,
				`^[57]4(LS|ALS|AS|F|S|HC|HCT|AC|ACT|AHC|AHCT|LV|LVC)[0-9]{2,4}[A-Z]*`,
			}},
			{Type: component.Logic4000Series, Exprs: []string{`^CD4[0-9]{3}[A-Z]*`}},
			{Type: component.TemperatureSensor, Exprs: []string{`^LM35[A-Z]*`, `^LM75[A-Z]*`, `^TMP[0-9]{2,3}`, `^LM92`}},
			{Type: component.MSP430MCU, Exprs: []string{`^MSP430[A-Z0-9]+`}},
			{Type: component.Microcontroller, Exprs: []string{`^TMS320[A-Z0-9]+`, `^CC[12][0-9]{3}`}},
			{Type: component.InterfaceIC, Exprs: []string{`^SN65[A-Z0-9]+`, `^SN75[A-Z0-9]+`, `^DRV8[0-9]{3}`}},
			{Type: component.OpAmp, Exprs: []string{`^INA[0-9]{3}`}},
		},
		ReplacementFunc: tiReplacement,
	}
}

// tiReplacement implements TI's grade cross-reference: the A-grade variant
// of a part is an official replacement for the base grade (LM358A for
// LM358), never the other way around.
func tiReplacement(mpn, other string) bool {
	mpn = strings.ToUpper(mpn)
	other = strings.ToUpper(other)

	base := DefaultSeries(mpn)
	if base == "" || !strings.HasPrefix(other, base) {
		return false
	}
	rest := strings.TrimPrefix(other, base)
	return strings.HasPrefix(rest, "A")
}

func onSemi() *Manufacturer {
	return &Manufacturer{
		Name:        "onsemi",
		ID:          "onsemi",
		PrefixRule:  `^(MC7[89]|MC1[0-9]{4}|MC3[0-9]{3}|NCP[0-9]|NCV[0-9]|2N[0-9]{3,4}|KSP|KSC|KSA|MMBT|FQP|FDN)`,
		PrefixCodes: []string{"MC", "NC", "2N", "LM", "1N"},
		Patterns: []TypePattern{
			{Type: component.Transistor2N, Exprs: []string{`^2N[0-9]{3,4}[A-Z]*`}},
			{Type: component.TransistorBC, Exprs: []string{`^BC[0-9]{3}[A-Z]*`}},
			{Type: component.BipolarTransistor, Exprs: []string{`^KS[PCA][0-9]{2,4}`, `^MMBT[0-9]{3,4}`, `^PN2222[A-Z]*`}},
			{Type: component.Diode1N, Exprs: []string{`^1N40[0-9]{2}`, `^1N53[0-9]{2}`}},
			{Type: component.Regulator78xx, Exprs: []string{`^MC78[0-9]{2}`, `^MC78M[0-9]{2}`}},
			{Type: component.Regulator79xx, Exprs: []string{`^MC79[0-9]{2}`}},
			{Type: component.VoltageRegulator, Exprs: []string{`^NCP1[0-9]{3}`, `^NCV[0-9]{4}`}},
			{Type: component.OpAmp, Exprs: []string{`^MC33[0-9]{2}[A-Z]*`, `^MC1741`}},
			{Type: component.Logic4000Series, Exprs: []string{`^MC14[0-9]{3}[A-Z]*`}},
			{Type: component.Mosfet, Exprs: []string{`^FQP[0-9]+`, `^FDN[0-9]+`}},
		},
	}
}
