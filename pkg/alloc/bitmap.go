package alloc

const bitsPerByte = 8

// Bitmap is a one-bit-per-resource occupancy map. Bit order within a byte
// is LSB-first (`1 << (bit % 8)`), matching the kernel-side reader.
type Bitmap struct {
	bytes []byte
}

// New returns an all-zero bitmap backed by `size` bytes.
func New(size int) Bitmap {
	return Bitmap{make([]byte, size)}
}

// FromImage returns a bitmap aliasing the provided block image. Mutations
// write through to the image.
func FromImage(image []byte) Bitmap {
	return Bitmap{image}
}

func (bm Bitmap) Test(bit uint32) bool {
	return bm.bytes[bit/bitsPerByte]&(1<<(bit%bitsPerByte)) != 0
}

func (bm Bitmap) Reserve(bit uint32) {
	bm.bytes[bit/bitsPerByte] |= 1 << (bit % bitsPerByte)
}

func (bm Bitmap) Free(bit uint32) {
	bm.bytes[bit/bitsPerByte] &^= 1 << (bit % bitsPerByte)
}

// AllocFrom scans bits in ascending order in `[origin, limit)`, claims the
// first unset bit, and returns its index. Each call rescans from the
// origin; there is no cached search position. The scan is bounded by the
// bitmap's bit capacity even when `limit` exceeds it.
func (bm Bitmap) AllocFrom(origin, limit uint32) (uint32, bool) {
	if capacity := uint32(len(bm.bytes) * bitsPerByte); limit > capacity {
		limit = capacity
	}
	for bit := origin; bit < limit; bit++ {
		byt := bm.bytes[bit/bitsPerByte]
		if byt == 0xff {
			// skip to the next byte boundary
			bit |= bitsPerByte - 1
			continue
		}
		if byt&(1<<(bit%bitsPerByte)) == 0 {
			bm.Reserve(bit)
			return bit, true
		}
	}
	return 0, false
}

func (bm Bitmap) Bytes() []byte { return bm.bytes }
