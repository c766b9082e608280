// Package driven defines the interfaces the core consumes.
//
// Driven ports are implemented by adapters on the outside of the
// hexagon (text normalisation, tokenisation, configuration storage,
// call tracing). The core services depend only on these interfaces,
// never on concrete adapters.
package driven
