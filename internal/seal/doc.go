// Package seal hides the expected outputs of an example set.
//
// Outputs are sealed with deterministic authenticated encryption (AES-SIV via
// Tink), so equal plaintexts always seal to the same string. A decider can then
// check a candidate's output by sealing it and comparing, without ever opening
// the stored answer.
package seal
