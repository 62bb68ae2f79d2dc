// Package hydraulics holds the capacity verification formulas for a drainage
// system feeding an oil-water separator.
//
// Every function is pure: inputs are SI values (flow results in L/s) and
// out-of-domain inputs are rejected with ErrInvalidParameter or
// ErrNumericDegenerate instead of producing NaN.
package hydraulics
