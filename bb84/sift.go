package bb84

import (
	"fmt"

	"github.com/NavMohan-24/Quantum-Key-Distribution/bb84/bitmap"
)

// MatchMask reports the positions at which two basis strings agree: bit i of
// the result is set iff aliceBases and bobBases chose the same basis for
// qubit i.
func MatchMask(aliceBases, bobBases bitmap.Dense) (bitmap.Dense, error) {
	if aliceBases.Size() != bobBases.Size() {
		return bitmap.Empty(), fmt.Errorf("%w: basis strings have lengths %d and %d",
			ErrInvalidArgument, aliceBases.Size(), bobBases.Size())
	}
	return bitmap.XNor(aliceBases, bobBases), nil
}

// Sift extracts a raw key from one side's view of a run: the subsequence of
// measured, in ascending index order, at the positions where the two basis
// strings agree. A run with no agreeing positions yields an empty key. Sift
// reads its inputs without modifying them, so sifting the same run twice
// yields the same key.
func Sift(aliceBases, bobBases, measured bitmap.Dense) (bitmap.Dense, error) {
	mask, err := MatchMask(aliceBases, bobBases)
	if err != nil {
		return bitmap.Empty(), err
	}
	if measured.Size() != aliceBases.Size() {
		return bitmap.Empty(), fmt.Errorf("%w: %d measured bits for %d bases",
			ErrInvalidArgument, measured.Size(), aliceBases.Size())
	}
	return bitmap.Select(measured, mask), nil
}
