package component

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmappedType is returned by [Verify] when a declared type is missing
	// from the base-type or name tables. The taxonomy must be total.
	ErrUnmappedType = errors.New("type missing from taxonomy tables")

	// ErrSelfQualified is returned by [Verify] when a family-qualified type
	// maps to itself as its base. Qualified types must refine another type.
	ErrSelfQualified = errors.New("qualified type must not be its own base")

	// ErrBaseCycle is returned by [Verify] when following base types does not
	// reach a fixed point within the taxonomy depth.
	ErrBaseCycle = errors.New("base-type chain does not terminate")
)

// Type identifies a node in the component taxonomy.
type Type int

// Taxonomy members. The zero value is Unknown, the sentinel for
// unclassifiable parts.
const (
	Unknown Type = iota

	// Broad categories (specificity 2).
	IntegratedCircuit
	DiscreteSemiconductor
	Passive
	Electromechanical
	Optoelectronic

	// Concrete functional types (specificity 3).
	OpAmp
	Comparator
	VoltageRegulator
	VoltageReference
	Microcontroller
	Memory
	LogicIC
	InterfaceIC
	TimerIC
	TemperatureSensor
	Mosfet
	BipolarTransistor
	Diode
	LED
	Resistor
	Capacitor
	Inductor
	Crystal
	Connector
	Relay
	Fuse

	// Family-qualified concrete types (specificity 4).
	STM32MCU
	PICMCU
	AVRMCU
	MSP430MCU
	ESPMCU
	Regulator78xx
	Regulator79xx
	RegulatorLM317
	Logic74Series
	Logic4000Series
	SerialEEPROM
	SPIFlash
	SRAMMemory
	MosfetIRF
	Transistor2N
	TransistorBC
	Diode1N

	// sentinelType marks the end of the enum for exhaustiveness checks.
	sentinelType
)

// names maps every type to its canonical snake_case identifier. The same
// identifiers are accepted by [Parse] and used in rule catalogs.
var names = map[Type]string{
	Unknown:               "unknown",
	IntegratedCircuit:     "integrated_circuit",
	DiscreteSemiconductor: "discrete_semiconductor",
	Passive:               "passive",
	Electromechanical:     "electromechanical",
	Optoelectronic:        "optoelectronic",
	OpAmp:                 "op_amp",
	Comparator:            "comparator",
	VoltageRegulator:      "voltage_regulator",
	VoltageReference:      "voltage_reference",
	Microcontroller:       "microcontroller",
	Memory:                "memory",
	LogicIC:               "logic_ic",
	InterfaceIC:           "interface_ic",
	TimerIC:               "timer_ic",
	TemperatureSensor:     "temperature_sensor",
	Mosfet:                "mosfet",
	BipolarTransistor:     "bipolar_transistor",
	Diode:                 "diode",
	LED:                   "led",
	Resistor:              "resistor",
	Capacitor:             "capacitor",
	Inductor:              "inductor",
	Crystal:               "crystal",
	Connector:             "connector",
	Relay:                 "relay",
	Fuse:                  "fuse",
	STM32MCU:              "stm32_mcu",
	PICMCU:                "pic_mcu",
	AVRMCU:                "avr_mcu",
	MSP430MCU:             "msp430_mcu",
	ESPMCU:                "esp_mcu",
	Regulator78xx:         "regulator_78xx",
	Regulator79xx:         "regulator_79xx",
	RegulatorLM317:        "regulator_lm317",
	Logic74Series:         "logic_74_series",
	Logic4000Series:       "logic_4000_series",
	SerialEEPROM:          "serial_eeprom",
	SPIFlash:              "spi_flash",
	SRAMMemory:            "sram",
	MosfetIRF:             "mosfet_irf",
	Transistor2N:          "transistor_2n",
	TransistorBC:          "transistor_bc",
	Diode1N:               "diode_1n",
}

// String returns the canonical identifier for t.
func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// Parse resolves a canonical identifier (as produced by [Type.String]) back
// to its Type. The second return is false for unrecognized identifiers.
func Parse(s string) (Type, bool) {
	t, ok := byName[s]
	return t, ok
}

var byName = func() map[string]Type {
	m := make(map[string]Type, len(names))
	for t, n := range names {
		m[n] = t
	}
	return m
}()

// All returns every declared type in enum order, Unknown included.
func All() []Type {
	ts := make([]Type, 0, int(sentinelType))
	for t := Unknown; t < sentinelType; t++ {
		ts = append(ts, t)
	}
	return ts
}
