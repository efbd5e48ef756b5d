package bitmap

// XOr returns the bitwise XOR of two bitmaps. The result is as long as the
// longer operand, with the shorter treated as padded with trailing zeros.
func XOr(a, b Dense) Dense {
	short, long := a, b
	if b.len < a.len {
		short, long = b, a
	}
	r := Dense{
		bits: make([]byte, 0, BytesFor(long.len)),
		len:  long.len,
	}
	for i := range short.bits {
		r.bits = append(r.bits, a.bits[i]^b.bits[i])
	}
	for i := len(short.bits); i < len(long.bits); i++ {
		r.bits = append(r.bits, long.bits[i])
	}
	return r
}

// XNor returns the bitwise XNOR of two bitmaps, i.e. a mask of the positions
// where a and b agree. The result is as long as the longer operand, with the
// shorter treated as padded with trailing zeros.
func XNor(a, b Dense) Dense {
	r := XOr(a, b)
	for i := range r.bits {
		r.bits[i] = ^r.bits[i]
	}
	r.clearSlack()
	return r
}
