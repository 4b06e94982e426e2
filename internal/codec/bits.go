package codec

// bitWriter packs values most-significant bit first. The final byte is
// zero-padded on the right.
type bitWriter struct {
	buf []byte
	n   int
}

func (w *bitWriter) write(value uint64, width int) {
	for i := width - 1; i >= 0; i-- {
		if w.n%8 == 0 {
			w.buf = append(w.buf, 0)
		}
		if (value>>uint(i))&1 == 1 {
			w.buf[w.n/8] |= 1 << uint(7-w.n%8)
		}
		w.n++
	}
}

func (w *bitWriter) bytes() []byte {
	return w.buf
}

// bitReader reads values most-significant bit first. Reads past the end of
// the stream yield zero bits.
type bitReader struct {
	buf     []byte
	pos     int
	overrun int
}

func newBitReader(buf []byte) *bitReader {
	return &bitReader{buf: buf}
}

func (r *bitReader) read(width int) uint64 {
	var value uint64
	for i := 0; i < width; i++ {
		value <<= 1
		if r.pos < len(r.buf)*8 {
			value |= uint64(r.buf[r.pos/8]>>uint(7-r.pos%8)) & 1
		} else {
			r.overrun++
		}
		r.pos++
	}
	return value
}
