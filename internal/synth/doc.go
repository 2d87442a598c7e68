// Package synth searches for decryption programs consistent with a set of
// input/output examples.
//
// An Enumerator yields candidate trees of the form
//
//	bits_to_text(T_n(...T_1(@0, get_int("k1"))..., get_int("kn")))
//
// in a fixed order, a Decider accepts the candidates that map every example
// input to its expected output, and a Synthesizer runs the decider over the
// enumeration with bounded parallelism and returns the first accepted candidate.
package synth
