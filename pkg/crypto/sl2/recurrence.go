package sl2

// Bits are consumed most significant first within each byte, bytes in order.
// Both directions and their inverses below depend on this order; it is
// fixed for serialized hashes to stay comparable.

// AppendBytes returns m·hash(p): every bit of p right-multiplies the state
// by its generator.
func (m Matrix) AppendBytes(p []byte) Matrix {
	for _, b := range p {
		for i := 7; i >= 0; i-- {
			m = m.MulBitRight(b>>uint(i)&1 == 1)
		}
	}
	return m
}

// PrependBytes returns hash(p)·m. Bits are visited last to first and
// left-multiplied, so the first bit of p ends up outermost.
func (m Matrix) PrependBytes(p []byte) Matrix {
	for j := len(p) - 1; j >= 0; j-- {
		b := p[j]
		for i := 0; i < 8; i++ {
			m = m.MulBitLeft(b>>uint(i)&1 == 1)
		}
	}
	return m
}

// UnappendBytes returns m·hash(p)⁻¹, undoing AppendBytes(p).
func (m Matrix) UnappendBytes(p []byte) Matrix {
	for j := len(p) - 1; j >= 0; j-- {
		b := p[j]
		for i := 0; i < 8; i++ {
			m = m.MulInverseBitRight(b>>uint(i)&1 == 1)
		}
	}
	return m
}

// UnprependBytes returns hash(p)⁻¹·m, undoing PrependBytes(p).
func (m Matrix) UnprependBytes(p []byte) Matrix {
	for _, b := range p {
		for i := 7; i >= 0; i-- {
			m = m.MulInverseBitLeft(b>>uint(i)&1 == 1)
		}
	}
	return m
}
