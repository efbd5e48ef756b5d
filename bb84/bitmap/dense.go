package bitmap

import (
	"math/rand"
	"strings"
)

// A Dense is a bitmap where every bit is explicitly represented. The zero
// value is an empty bitmap, ready to use. Bits past Size() in the final byte
// of the backing array are always zero.
type Dense struct {
	bits []byte
	len  int
}

// NewDense returns a new dense bitmap whose contents are a copy of data, and
// whose length is bitLen. If bitLen is longer than data, trailing zeros are
// added. If bitLen is negative, it is inferred from data.
func NewDense(data []byte, bitLen int) Dense {
	if bitLen < 0 {
		bitLen = len(data) * byteSize
	}
	d := Dense{
		bits: make([]byte, BytesFor(bitLen)),
		len:  bitLen,
	}
	copy(d.bits, data)
	d.clearSlack()
	return d
}

// Random returns a bitmap of n bits drawn from rng.
func Random(rng *rand.Rand, n int) Dense {
	buf := make([]byte, BytesFor(n))
	rng.Read(buf)
	return NewDense(buf, n)
}

// Get returns the i-th bit in this bitmap, or false if i is out of range.
func (d Dense) Get(i int) bool {
	if i < 0 || i >= d.len {
		return false
	}
	j, pos := i/byteSize, i%byteSize
	if j >= len(d.bits) {
		return false
	}
	return 0 < d.bits[j]&(1<<pos)
}

// Size returns the number of bits in this bitmap.
func (d Dense) Size() int {
	return d.len
}

// SizeBytes returns the number of bytes needed to hold this bitmap.
func (d Dense) SizeBytes() int {
	return BytesFor(d.len)
}

// Data returns a copy of the bytes underlying this bitmap.
func (d Dense) Data() []byte {
	r := make([]byte, len(d.bits))
	copy(r, d.bits)
	return r
}

// AppendBit adds a single bit to the end of d.
func (d *Dense) AppendBit(bit bool) {
	j, pos := d.len/byteSize, d.len%byteSize
	if pos == 0 {
		d.bits = append(d.bits, 0)
	}
	if bit {
		d.bits[j] |= 1 << pos
	}
	d.len++
}

// String renders d as a string of '0' and '1' characters, bit 0 first.
func (d Dense) String() string {
	var sb strings.Builder
	sb.Grow(d.len)
	for i := 0; i < d.len; i++ {
		if d.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// clearSlack zeroes the bits between len and the end of the backing array.
func (d *Dense) clearSlack() {
	off := d.len % byteSize
	if off == 0 || len(d.bits) == 0 {
		return
	}
	d.bits[len(d.bits)-1] &= 0xFF >> (byteSize - off)
}
