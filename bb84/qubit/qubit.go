// Package qubit models single qubits as they appear in BB84: two-amplitude
// state vectors, the X and H gates, and projective measurement with collapse.
package qubit

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrAlreadyMeasured is returned when measuring a state that has already
	// collapsed. Re-measurement without re-preparation is not physical.
	ErrAlreadyMeasured = errors.New("qubit: state already measured")

	// ErrInvalidBasis is returned when a basis value is neither Computational
	// nor Hadamard.
	ErrInvalidBasis = errors.New("qubit: invalid basis")

	// ErrNormViolation is returned when a state's amplitude norm has drifted
	// from 1 by more than NormTolerance.
	ErrNormViolation = errors.New("qubit: amplitude norm invariant violated")
)

// NormTolerance bounds how far a state's norm may drift from 1 before the
// state is considered corrupt.
const NormTolerance = 1e-9

// invSqrt2 is 1/√2 rounded once at compile time. H multiplies by this rather
// than dividing by √2 so that a same-basis prepare/measure round trip cancels
// the losing amplitude to an exact zero instead of a small residue.
const invSqrt2 = 1 / math.Sqrt2

// A Basis identifies one of the two BB84 encoding/measurement bases.
type Basis int

const (
	// Computational is the Z basis, {|0⟩, |1⟩}.
	Computational Basis = iota
	// Hadamard is the X basis, {|+⟩, |−⟩}.
	Hadamard
)

// String implements fmt.Stringer.
func (b Basis) String() string {
	switch b {
	case Computational:
		return "computational"
	case Hadamard:
		return "hadamard"
	default:
		return fmt.Sprintf("basis(%d)", int(b))
	}
}

func (b Basis) valid() bool {
	return b == Computational || b == Hadamard
}
