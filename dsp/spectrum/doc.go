// Package spectrum provides utilities over half spectra produced by the
// transform engine in package rfft.
//
// The package does not compute transforms. It converts between the complex
// bin slice and the packed re/im wire form, derives magnitude, power and
// phase, and locates the dominant bin. [Goertzel] evaluates a single DFT bin
// directly from time-domain samples and serves as an independent check of a
// full transform.
package spectrum
