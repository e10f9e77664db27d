// Package spatial implements the frame-agnostic 3D math kernel used across
// banshee tooling: Hamiltonian quaternions, near-unit rotation values, and
// rigid transforms. All types are immutable values; every operation returns
// a new value and is safe for concurrent use.
//
// Vectors are represented as github.com/golang/geo/r3.Vector throughout.
// Frame-aware wrappers that tag these values with a coordinate system live
// in the sibling frame package.
package spatial
