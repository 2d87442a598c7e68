// Package encryption provides the rotation, one-time-pad and feedback-PRF
// transforms over 7-bit bit-strings.
// Every transform has a decoding direction, used by the interpreter at run time,
// and a pure encoding direction used to build example ciphertexts.
// Decoders validate their input before touching the key and fail with
// bits.ErrFormat; encoders fail with bits.ErrRange on characters outside 7 bits.
package encryption
