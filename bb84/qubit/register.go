package qubit

import "math/rand"

// A Register is an ordered block of independent qubits, prepared by the
// sender and handed to the receiver as one unit. Position i of the register
// corresponds to index i of every classical record of the exchange.
type Register struct {
	states []*State
}

// NewRegister returns a register of n qubits, each initialized to |0⟩.
func NewRegister(n int) *Register {
	states := make([]*State, n)
	for i := range states {
		states[i] = NewState()
	}
	return &Register{states: states}
}

// Len returns the number of qubits in the register.
func (r *Register) Len() int {
	return len(r.states)
}

// At returns the i-th qubit, shared with the register.
func (r *Register) At(i int) *State {
	return r.states[i]
}

// Prepare loads position i with a fresh qubit encoding bit in basis b.
func (r *Register) Prepare(i int, bit bool, b Basis) error {
	s, err := Prepare(bit, b)
	if err != nil {
		return err
	}
	r.states[i] = s
	return nil
}

// Measure measures the i-th qubit in basis b, collapsing it.
func (r *Register) Measure(i int, b Basis, rng *rand.Rand) (bool, error) {
	return r.states[i].Measure(b, rng)
}
