package qubit

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
)

// A State is a single-qubit pure state: two complex amplitudes over the
// computational basis. Gates mutate it in place; measurement collapses it at
// most once.
type State struct {
	a0, a1   complex128
	measured bool
}

// NewState returns a fresh qubit initialized to |0⟩.
func NewState() *State {
	return &State{a0: 1}
}

// Prepare returns a qubit encoding bit in basis b: |0⟩/|1⟩ for the
// computational basis, |+⟩/|−⟩ for the Hadamard basis. The bit is flipped in
// with X before the basis rotation with H.
func Prepare(bit bool, b Basis) (*State, error) {
	if !b.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBasis, int(b))
	}
	s := NewState()
	if bit {
		s.ApplyX()
	}
	if b == Hadamard {
		s.ApplyH()
	}
	return s, nil
}

// ApplyX applies the bit-flip (Pauli X) gate, exchanging the amplitudes.
func (s *State) ApplyX() {
	s.a0, s.a1 = s.a1, s.a0
}

// ApplyH applies the Hadamard gate, rotating between the computational and
// Hadamard bases.
func (s *State) ApplyH() {
	s.a0, s.a1 = (s.a0+s.a1)*invSqrt2, (s.a0-s.a1)*invSqrt2
}

// Amplitudes returns the amplitudes of |0⟩ and |1⟩.
func (s *State) Amplitudes() (a0, a1 complex128) {
	return s.a0, s.a1
}

// Measured reports whether the state has already collapsed.
func (s *State) Measured() bool {
	return s.measured
}

// Norm returns the Euclidean norm of the amplitude vector, 1 for any valid
// state.
func (s *State) Norm() float64 {
	return math.Sqrt(real(s.a0*cmplx.Conj(s.a0)) + real(s.a1*cmplx.Conj(s.a1)))
}

// Measure performs a projective measurement of s in basis b, drawing from
// rng to resolve superpositions. It returns the observed bit and collapses s
// to the matching post-measurement state. A state can be measured only once;
// rng must be non-nil.
func (s *State) Measure(b Basis, rng *rand.Rand) (bool, error) {
	if !b.valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidBasis, int(b))
	}
	if s.measured {
		return false, ErrAlreadyMeasured
	}
	if b == Hadamard {
		s.ApplyH()
	}
	if norm := s.Norm(); math.Abs(norm-1) > NormTolerance {
		return false, fmt.Errorf("%w: norm %v", ErrNormViolation, norm)
	}
	p0 := real(s.a0 * cmplx.Conj(s.a0))
	bit := rng.Float64() >= p0
	s.collapse(bit)
	return bit, nil
}

// collapse pins s to the post-measurement state for the observed bit, in the
// basis the measurement was taken in.
func (s *State) collapse(bit bool) {
	s.a0, s.a1 = 1, 0
	if bit {
		s.a0, s.a1 = 0, 1
	}
	s.measured = true
}
