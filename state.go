package rocca

// block is a 128-bit value: a full AES block, one lane of the ROCCA
// register file, or a 128-bit length/constant encoding. The type carries
// no endianness of its own — callers choose how to read bytes into and
// out of it.
type block [16]byte

func xorBlock(a, b block) block {
	var out block
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

func readBlock(p []byte) block {
	var b block
	copy(b[:], p)
	return b
}

func (b block) put(p []byte) {
	copy(p, b[:])
}

// le128 encodes n, a bit count, as a 128-bit little-endian block.
func le128(n uint64) block {
	var b block
	b[0] = byte(n)
	b[1] = byte(n >> 8)
	b[2] = byte(n >> 16)
	b[3] = byte(n >> 24)
	b[4] = byte(n >> 32)
	b[5] = byte(n >> 40)
	b[6] = byte(n >> 48)
	b[7] = byte(n >> 56)
	// bits 64..127 are always zero: no AD or message this primitive
	// handles approaches 2^64 bytes, let alone 2^64 bits.
	return b
}

// z0, z1 are the compile-time constants for initialization: the first two
// 128-bit chunks of the SHA-256 round constants, written little-endian
// before being loaded as AES blocks. Getting this byte order wrong
// silently produces a different, incompatible cipher that still
// round-trips against itself — see state_test.go.
var z0 = block{0xcd, 0x65, 0xef, 0x23, 0x91, 0x44, 0x37, 0x71, 0x22, 0xae, 0x28, 0xd7, 0x98, 0x2f, 0x8a, 0x42}
var z1 = block{0xbc, 0xdb, 0x89, 0x81, 0xa5, 0xdb, 0xb5, 0xe9, 0x2f, 0x3b, 0x4d, 0xec, 0xcf, 0xfb, 0xc0, 0xb5}

// State is ROCCA's 8-lane AES-block register file.
//
// A State is a plain value: it is created by initState, mutated in place
// by every absorb/encrypt/decrypt step, and consumed by finalize. It does
// not outlive the encrypt or decrypt call that owns it, and concurrent
// calls share nothing — each gets its own State.
type State struct {
	s [8]block
}

// initState sets up the initial register file from key and nonce and
// runs it through 20 blank update rounds before any data is absorbed.
func initState(key, nonce []byte) *State {
	k0 := readBlock(key[0:16])
	k1 := readBlock(key[16:32])
	n := readBlock(nonce)
	zero := block{}

	st := &State{s: [8]block{
		k1,
		n,
		z0,
		z1,
		xorBlock(n, k1),
		zero,
		k0,
		zero,
	}}
	for i := 0; i < 20; i++ {
		update(st, z0, z1)
	}
	return st
}

// updateGeneric implements the state update function in portable Go. It reads
// every lane of s before writing any of them — the 8 assignments below
// are computed into s2 first and only then copied back into s, which is
// what makes the "read before write" requirement hold regardless of
// evaluation order.
func updateGeneric(s *State, x0, x1 block) {
	var s2 [8]block
	s2[0] = xorBlock(s.s[7], x0)
	s2[1] = aesRoundGeneric(s.s[0], s.s[7])
	s2[2] = xorBlock(s.s[1], s.s[6])
	s2[3] = aesRoundGeneric(s.s[2], s.s[1])
	s2[4] = xorBlock(s.s[3], x1)
	s2[5] = aesRoundGeneric(s.s[4], s.s[3])
	s2[6] = aesRoundGeneric(s.s[5], s.s[4])
	s2[7] = xorBlock(s.s[0], s.s[6])
	s.s = s2
}

// absorb folds associated data into the state without producing
// ciphertext: every 32-byte chunk of ad (zero-padded on the trailing
// partial chunk) is fed through the encryption transform and its
// ciphertext output discarded. This is a dedicated function that never
// materializes a ciphertext buffer, rather than one that reuses the
// encrypt routine and throws the result away; both have identical
// mathematical effect on the state.
func absorb(s *State, ad []byte) {
	i := 0
	for ; i+32 <= len(ad); i += 32 {
		m0 := readBlock(ad[i : i+16])
		m1 := readBlock(ad[i+16 : i+32])
		update(s, m0, m1)
	}
	if rem := len(ad) - i; rem > 0 {
		var buf [32]byte
		copy(buf[:], ad[i:])
		update(s, readBlock(buf[0:16]), readBlock(buf[16:32]))
	}
}

// encryptBlock encrypts one full
// 32-byte plaintext block.
func encryptBlock(s *State, dst, src []byte) {
	m0 := readBlock(src[0:16])
	m1 := readBlock(src[16:32])

	c0 := xorBlock(aesRound(s.s[1], s.s[5]), m0)
	c1 := xorBlock(aesRound(xorBlock(s.s[0], s.s[4]), s.s[2]), m1)

	c0.put(dst[0:16])
	c1.put(dst[16:32])

	update(s, m0, m1)
}

// decryptBlock decrypts one full
// 32-byte ciphertext block.
func decryptBlock(s *State, dst, src []byte) {
	c0 := readBlock(src[0:16])
	c1 := readBlock(src[16:32])

	m0 := xorBlock(aesRound(s.s[1], s.s[5]), c0)
	m1 := xorBlock(aesRound(xorBlock(s.s[0], s.s[4]), s.s[2]), c1)

	m0.put(dst[0:16])
	m1.put(dst[16:32])

	update(s, m0, m1)
}

// decryptLast handles the final, partial ciphertext block: dst
// receives exactly len(src) recovered plaintext bytes (0 < len(src) <
// 32), while the state absorbs the zero-extended 32-byte plaintext —
// not the zero-extended ciphertext — per the "zero the tail after
// decryption" discipline.
func decryptLast(s *State, dst, src []byte) {
	var padded [32]byte
	copy(padded[:], src)

	var tmp [32]byte
	decryptBlockRaw(s, tmp[:], padded[:])

	copy(dst, tmp[:len(src)])

	for i := len(src); i < 32; i++ {
		tmp[i] = 0
	}
	update(s, readBlock(tmp[0:16]), readBlock(tmp[16:32]))
}

// decryptBlockRaw computes the keystream-xor step of decryptBlock without
// calling update, so decryptLast can zero the tail of the recovered
// plaintext before feeding it back into the state.
func decryptBlockRaw(s *State, dst, src []byte) {
	c0 := readBlock(src[0:16])
	c1 := readBlock(src[16:32])

	m0 := xorBlock(aesRound(s.s[1], s.s[5]), c0)
	m1 := xorBlock(aesRound(xorBlock(s.s[0], s.s[4]), s.s[2]), c1)

	m0.put(dst[0:16])
	m1.put(dst[16:32])
}

// encryptLast implements the symmetric partial-block case for
// encryption: plaintext is zero-extended to 32 bytes, encrypted as a
// full block, and only the first len(src) ciphertext bytes are emitted.
func encryptLast(s *State, dst, src []byte) {
	var padded [32]byte
	copy(padded[:], src)

	var tmp [32]byte
	encryptBlock(s, tmp[:], padded[:])

	copy(dst, tmp[:len(src)])
}

// finalize runs 20 more update rounds keyed on the bit lengths of the
// associated data and message, then XORs all 8 lanes into the tag.
func finalize(s *State, adLenBytes, msgLenBytes int) [TagSize]byte {
	lad := le128(uint64(adLenBytes) * 8)
	lm := le128(uint64(msgLenBytes) * 8)

	for i := 0; i < 20; i++ {
		update(s, lad, lm)
	}

	tag := s.s[0]
	for i := 1; i < 8; i++ {
		tag = xorBlock(tag, s.s[i])
	}

	var out [TagSize]byte
	tag.put(out[:])
	return out
}
