package component

import "fmt"

// maxChainDepth bounds the base-type walk. The taxonomy has four levels, so
// any chain longer than this indicates a cycle.
const maxChainDepth = 4

// baseOf is the total base-type mapping. Categories and Unknown map to
// themselves; every other type maps to a strictly less specific one.
var baseOf = map[Type]Type{
	Unknown:               Unknown,
	IntegratedCircuit:     IntegratedCircuit,
	DiscreteSemiconductor: DiscreteSemiconductor,
	Passive:               Passive,
	Electromechanical:     Electromechanical,
	Optoelectronic:        Optoelectronic,

	OpAmp:             IntegratedCircuit,
	Comparator:        IntegratedCircuit,
	VoltageRegulator:  IntegratedCircuit,
	VoltageReference:  IntegratedCircuit,
	Microcontroller:   IntegratedCircuit,
	Memory:            IntegratedCircuit,
	LogicIC:           IntegratedCircuit,
	InterfaceIC:       IntegratedCircuit,
	TimerIC:           IntegratedCircuit,
	TemperatureSensor: IntegratedCircuit,
	Mosfet:            DiscreteSemiconductor,
	BipolarTransistor: DiscreteSemiconductor,
	Diode:             DiscreteSemiconductor,
	LED:               Optoelectronic,
	Resistor:          Passive,
	Capacitor:         Passive,
	Inductor:          Passive,
	Crystal:           Passive,
	Connector:         Electromechanical,
	Relay:             Electromechanical,
	Fuse:              Passive,

	STM32MCU:        Microcontroller,
	PICMCU:          Microcontroller,
	AVRMCU:          Microcontroller,
	MSP430MCU:       Microcontroller,
	ESPMCU:          Microcontroller,
	Regulator78xx:   VoltageRegulator,
	Regulator79xx:   VoltageRegulator,
	RegulatorLM317:  VoltageRegulator,
	Logic74Series:   LogicIC,
	Logic4000Series: LogicIC,
	SerialEEPROM:    Memory,
	SPIFlash:        Memory,
	SRAMMemory:      Memory,
	MosfetIRF:       Mosfet,
	Transistor2N:    BipolarTransistor,
	TransistorBC:    BipolarTransistor,
	Diode1N:         Diode,
}

// specificityOf assigns the numeric specificity used by the type arbiter.
// Categories deliberately score below concrete functional types so that a
// matched op-amp is never reported as merely "integrated circuit".
var specificityOf = map[Type]int{
	Unknown:               1,
	IntegratedCircuit:     2,
	DiscreteSemiconductor: 2,
	Passive:               2,
	Electromechanical:     2,
	Optoelectronic:        2,

	OpAmp:             3,
	Comparator:        3,
	VoltageRegulator:  3,
	VoltageReference:  3,
	Microcontroller:   3,
	Memory:            3,
	LogicIC:           3,
	InterfaceIC:       3,
	TimerIC:           3,
	TemperatureSensor: 3,
	Mosfet:            3,
	BipolarTransistor: 3,
	Diode:             3,
	LED:               3,
	Resistor:          3,
	Capacitor:         3,
	Inductor:          3,
	Crystal:           3,
	Connector:         3,
	Relay:             3,
	Fuse:              3,

	STM32MCU:        4,
	PICMCU:          4,
	AVRMCU:          4,
	MSP430MCU:       4,
	ESPMCU:          4,
	Regulator78xx:   4,
	Regulator79xx:   4,
	RegulatorLM317:  4,
	Logic74Series:   4,
	Logic4000Series: 4,
	SerialEEPROM:    4,
	SPIFlash:        4,
	SRAMMemory:      4,
	MosfetIRF:       4,
	Transistor2N:    4,
	TransistorBC:    4,
	Diode1N:         4,
}

// Base returns the immediate base type of t. Categories and Unknown return
// themselves. Types outside the taxonomy return Unknown; [Verify] guarantees
// that never happens for declared types.
func (t Type) Base() Type {
	if b, ok := baseOf[t]; ok {
		return b
	}
	return Unknown
}

// Root returns the fixed point of the base-type walk: the broad category a
// type belongs to (or Unknown).
func (t Type) Root() Type {
	cur := t
	for range maxChainDepth {
		next := cur.Base()
		if next == cur {
			return cur
		}
		cur = next
	}
	return cur
}

// Specificity returns the numeric specificity of t (1–4).
func (t Type) Specificity() int {
	if s, ok := specificityOf[t]; ok {
		return s
	}
	return 1
}

// IsQualified reports whether t is a family-qualified concrete type.
func (t Type) IsQualified() bool { return t.Specificity() == 4 }

// HasAncestor reports whether repeatedly taking the base type of t reaches
// ancestor. A type is not its own ancestor.
func (t Type) HasAncestor(ancestor Type) bool {
	cur := t
	for range maxChainDepth {
		next := cur.Base()
		if next == cur {
			return false
		}
		if next == ancestor {
			return true
		}
		cur = next
	}
	return false
}

// Verify checks that the taxonomy is well formed: every declared type has a
// name, a base type and a specificity; no qualified type is its own base;
// and every base chain terminates. It is run during engine construction so
// an incomplete table fails startup instead of silently defaulting.
func Verify() error {
	for _, t := range All() {
		if _, ok := names[t]; !ok {
			return fmt.Errorf("%w: %d has no name", ErrUnmappedType, int(t))
		}
		if _, ok := baseOf[t]; !ok {
			return fmt.Errorf("%w: %s has no base", ErrUnmappedType, t)
		}
		if _, ok := specificityOf[t]; !ok {
			return fmt.Errorf("%w: %s has no specificity", ErrUnmappedType, t)
		}
		if t.IsQualified() && t.Base() == t {
			return fmt.Errorf("%w: %s", ErrSelfQualified, t)
		}

		cur := t
		terminated := false
		for range maxChainDepth {
			next := cur.Base()
			if next == cur {
				terminated = true
				break
			}
			cur = next
		}
		if !terminated {
			return fmt.Errorf("%w: starting at %s", ErrBaseCycle, t)
		}
	}
	return nil
}
