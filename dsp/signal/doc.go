// Package signal defines the decoded multi-channel [Signal] consumed by the
// measurement packages, plus deterministic generators for building test
// material.
//
// A Signal is owned by the caller. Analyses only read from it.
package signal
