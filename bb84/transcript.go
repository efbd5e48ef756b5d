package bb84

import "github.com/NavMohan-24/Quantum-Key-Distribution/bb84/bitmap"

// A Transcript records everything the two parties know after one run:
// Alice's encoded bits and bases, Bob's bases and measured bits. Index i of
// every field refers to qubit i.
type Transcript struct {
	AliceBits  bitmap.Dense
	AliceBases bitmap.Dense
	BobBases   bitmap.Dense
	BobBits    bitmap.Dense
}

// Qubits returns the number of qubits exchanged in the run.
func (t Transcript) Qubits() int {
	return t.AliceBits.Size()
}

// MatchMask reports which positions used matching bases.
func (t Transcript) MatchMask() (bitmap.Dense, error) {
	return MatchMask(t.AliceBases, t.BobBases)
}

// Key returns the raw shared key: Bob's measured bits at the matching
// positions.
func (t Transcript) Key() (bitmap.Dense, error) {
	return Sift(t.AliceBases, t.BobBases, t.BobBits)
}

// AliceKey returns Alice's view of the raw key: her encoded bits at the
// matching positions. On a noiseless link it always equals Key.
func (t Transcript) AliceKey() (bitmap.Dense, error) {
	return Sift(t.AliceBases, t.BobBases, t.AliceBits)
}

// Stats packages together summary metrics for a run.
type Stats struct {
	Qubits    int
	Matched   int
	MatchRate float64
}

// Stats summarizes the run: how many qubits were exchanged, how many
// positions survived sifting, and the fraction that did.
func (t Transcript) Stats() (Stats, error) {
	mask, err := t.MatchMask()
	if err != nil {
		return Stats{}, err
	}
	s := Stats{
		Qubits:  t.Qubits(),
		Matched: bitmap.CountOnes(mask),
	}
	if s.Qubits > 0 {
		s.MatchRate = float64(s.Matched) / float64(s.Qubits)
	}
	return s, nil
}
