// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() family of functions report a test error if the
// expectation is not met. The Demand() family of functions will halt the test
// with t.Fatalf() instead.
package test
