package mfr

import "github.com/partscout/partscout/pkg/component"

// =============================================================================
// Microcontroller and interface vendors
// =============================================================================

func microVendors() []*Manufacturer {
	return []*Manufacturer{
		stMicro(),
		{
			Name:        "Microchip Technology",
			ID:          "microchip",
			PrefixRule:  `^(PIC|DSPIC|ATMEGA|ATTINY|ATXMEGA|AT[0-9]|AT2[45]|AT9|MCP|24(AA|LC|FC)|25(AA|LC)|93(AA|LC|C)|SST)`,
			PrefixCodes: []string{"AT", "MCP", "24", "25", "93"},
			Hints:       []string{"PIC", "MCP"},
			Patterns: []TypePattern{
				{Type: component.PICMCU, Exprs: []string{`^(PIC1[0268]F?[0-9]+|PIC24|DSPIC3[03])`}},
				{Type: component.AVRMCU, Exprs: []string{`^(ATMEGA|ATTINY|ATXMEGA)[0-9]+`}},
				{Type: component.Microcontroller, Exprs: []string{`^(PIC32|ATSAM[0-9A-Z]+|AT91SAM[0-9A-Z]+)`}},
				{Type: component.SerialEEPROM, Exprs: []string{
					`^24(AA|LC|FC)[0-9]+`,
					`^25(AA|LC)[0-9]+`,
					`^93(AA|LC|C)[0-9]+`,
					`^AT24C[0-9]+`,
					`^AT25[0-9]+`,
				}},
				{Type: component.SPIFlash, Exprs: []string{`^SST25[A-Z]*[0-9]+`}},
				{Type: component.OpAmp, Exprs: []string{`^MCP6[0-9]{3}`}},
				{Type: component.InterfaceIC, Exprs: []string{`^MCP2(515|551|562)`, `^MCP23[0-9]{2}`}},
				{Type: component.VoltageRegulator, Exprs: []string{`^MCP17[0-9]{2}`}},
			},
		},
		{
			Name:        "NXP Semiconductors",
			ID:          "nxp",
			PrefixRule:  `^(LPC|MK[0-9]|IMX|MIMX|S32K|PCA9|PCF8|TJA1|HEF4|74A[HU]C|74HC|74LVC)`,
			PrefixCodes: []string{"74", "PC"},
			Hints:       []string{"NXP"},
			Patterns: []TypePattern{
				{Type: component.Microcontroller, Exprs: []string{`^(LPC[0-9]{3,4}|MK[0-9]{2}[A-Z]|MIMXRT[0-9]+|S32K[0-9]+)`}},
				{Type: component.Logic74Series, Exprs: []string{`^74(AHCT|AHC|AUC|HCT|HC|LVC|LV)[0-9]{2,4}`}},
				{Type: component.Logic4000Series, Exprs: []string{`^HEF4[0-9]{3}`}},
				{Type: component.InterfaceIC, Exprs: []string{`^PCA95[0-9]{2}`, `^PCF85[0-9]{2}`, `^TJA10[0-9]{2}`}},
				{Type: component.BipolarTransistor, Exprs: []string{`^(BC5[0-9]{2}|PMBT[0-9]{3,4}|PN2222)`}},
			},
		},
		{
			Name:        "Renesas Electronics",
			ID:          "renesas",
			PrefixRule:  `^(R5F|R7F|RX[0-9]|RA[0-9]|UPD7)`,
			PrefixCodes: []string{"R5", "R7"},
			Patterns: []TypePattern{
				{Type: component.Microcontroller, Exprs: []string{`^(R5F[0-9A-Z]+|R7F[0-9A-Z]+|RX[0-9]{3}|RA[246][A-Z0-9]+|UPD7[0-9]+)`}},
			},
		},
		{
			Name:        "Silicon Labs",
			ID:          "silabs",
			PrefixRule:  `^(C8051F|EFM32|EFR32|EFM8|CP210)`,
			PrefixCodes: []string{"EF", "C8"},
			Patterns: []TypePattern{
				{Type: component.Microcontroller, Exprs: []string{`^(C8051F[0-9]+|EFM32[A-Z]+|EFR32[A-Z]+|EFM8[A-Z]+)`}},
				{Type: component.InterfaceIC, Exprs: []string{`^CP210[0-9]`}},
			},
		},
		{
			Name:        "Cypress Semiconductor",
			ID:          "cypress",
			PrefixRule:  `^CY(8C|62|7C)`,
			PrefixCodes: []string{"CY"},
			Patterns: []TypePattern{
				{Type: component.Microcontroller, Exprs: []string{`^CY8C[0-9]+`}},
				{Type: component.SRAMMemory, Exprs: []string{`^CY62[0-9]+`, `^CY7C1[0-9]+`}},
			},
		},
		{
			Name:        "Espressif Systems",
			ID:          "espressif",
			PrefixRule:  `^ESP(32|8266|8285)`,
			PrefixCodes: []string{"ESP"},
			Patterns: []TypePattern{
				{Type: component.ESPMCU, Exprs: []string{`^ESP(32|8266|8285)(-[A-Z0-9]+)*`}},
			},
		},
		{
			Name:        "FTDI",
			ID:          "ftdi",
			PrefixRule:  `^FT(232|2232|245|4232|231|230)`,
			PrefixCodes: []string{"FT"},
			Patterns: []TypePattern{
				{Type: component.InterfaceIC, Exprs: []string{`^FT(232|2232|245|4232|231|230)[A-Z0-9]*`}},
			},
		},
	}
}
