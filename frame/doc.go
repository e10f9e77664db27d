// Package frame tags the spatial kernel types with named coordinate
// systems and enforces that arithmetic only ever combines values expressed
// in the same frame. Every frame declares, in its own coordinates, which
// directions are up and front and whether it is right-handed; conversions
// between frames always route through the canonical Right-Down-Front frame
// exposed as RDF.
package frame
