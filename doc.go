// Package gobench implements the adaptive iteration-count controller,
// multi-thread coordination, and repetition/aggregation pipeline at the
// core of a microbenchmark harness.
//
// A caller supplies a list of [Instance] values (typically produced by the
// discovery/filter layer in package discovery) to an [Orchestrator], which
// drives each Instance through [RunRepetitions] and hands the resulting
// [Run] records to one or two [Reporter] implementations.
//
// Output formatting, flag parsing, and platform-specific timer calibration
// are deliberately kept out of this package; see the reporters and
// discovery packages and cmd/gobench for those concerns.
package gobench
