// Package buffer provides reusable scratch slices and a pool for them.
//
// Transform plans lease a Buffer for the duration of a single call and put it
// back before returning, so steady-state execution allocates only outputs.
package buffer
