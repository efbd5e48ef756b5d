package bb84

import (
	"fmt"
	"math/rand"

	"github.com/NavMohan-24/Quantum-Key-Distribution/bb84/bitmap"
	"github.com/NavMohan-24/Quantum-Key-Distribution/bb84/qubit"
)

// An alice represents the sending side of the link: she draws random bit and
// basis strings and encodes them into a register of qubits.
type alice struct {
	rand      *rand.Rand
	bitsFunc  func() bitmap.Dense
	basesFunc func() bitmap.Dense
}

// A bob represents the receiving side of the link: he draws his own random
// basis string and measures each received qubit in his chosen basis.
type bob struct {
	rand      *rand.Rand
	basesFunc func() bitmap.Dense
}

func (a *alice) prepare(n int) (*qubit.Register, bitmap.Dense, bitmap.Dense, error) {
	bits := a.drawBits(n)
	bases := a.drawBases(n)
	if bits.Size() != n || bases.Size() != n {
		return nil, bitmap.Empty(), bitmap.Empty(), fmt.Errorf(
			"%w: drew %d bits and %d bases for %d qubits",
			ErrInvalidArgument, bits.Size(), bases.Size(), n)
	}
	reg := qubit.NewRegister(n)
	for i := 0; i < n; i++ {
		if err := reg.Prepare(i, bits.Get(i), basisFor(bases, i)); err != nil {
			return nil, bitmap.Empty(), bitmap.Empty(), fmt.Errorf("encoding qubit %d: %w", i, err)
		}
	}
	return reg, bits, bases, nil
}

func (a *alice) drawBits(n int) bitmap.Dense {
	if a.bitsFunc != nil {
		return a.bitsFunc()
	}
	return bitmap.Random(a.rand, n)
}

func (a *alice) drawBases(n int) bitmap.Dense {
	if a.basesFunc != nil {
		return a.basesFunc()
	}
	return bitmap.Random(a.rand, n)
}

func (b *bob) measure(reg *qubit.Register) (bitmap.Dense, bitmap.Dense, error) {
	n := reg.Len()
	bases := b.drawBases(n)
	if bases.Size() != n {
		return bitmap.Empty(), bitmap.Empty(), fmt.Errorf(
			"%w: drew %d bases for %d qubits", ErrInvalidArgument, bases.Size(), n)
	}
	var bits bitmap.Dense
	for i := 0; i < n; i++ {
		bit, err := reg.Measure(i, basisFor(bases, i), b.rand)
		if err != nil {
			return bitmap.Empty(), bitmap.Empty(), fmt.Errorf("measuring qubit %d: %w", i, err)
		}
		bits.AppendBit(bit)
	}
	return bases, bits, nil
}

func (b *bob) drawBases(n int) bitmap.Dense {
	if b.basesFunc != nil {
		return b.basesFunc()
	}
	return bitmap.Random(b.rand, n)
}

// basisFor maps bit i of a basis string to a measurement basis: 0 is
// computational, 1 is Hadamard.
func basisFor(bases bitmap.Dense, i int) qubit.Basis {
	if bases.Get(i) {
		return qubit.Hadamard
	}
	return qubit.Computational
}
