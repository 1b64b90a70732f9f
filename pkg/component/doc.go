// Package component defines the component type taxonomy used throughout
// partscout.
//
// Types are arranged in a four-level specificity hierarchy:
//
//	4  family-qualified concrete types (STM32, 78xx regulators, IRF MOSFETs)
//	3  concrete functional types (op-amp, microcontroller, MOSFET)
//	2  broad categories (integrated circuit, passive, discrete semiconductor)
//	1  Unknown
//
// Every type has exactly one base type reachable via [Type.Base]; repeated
// application terminates at a category (or Unknown) in a bounded number of
// steps. The mapping is total over [All] and is checked by [Verify], which
// runs as part of engine construction. An unmapped or cyclic type fails
// startup rather than silently degrading to "self".
package component
