// Package rocca implements the ROCCA authenticated encryption with
// associated data (AEAD) algorithm.
//
// ROCCA targets software platforms with hardware AES acceleration
// (AES-NI on amd64, the Cryptography Extension on arm64) and is built
// for high-throughput bulk encryption with 256-bit keys, 128-bit
// nonces, and 128-bit authentication tags. Messages are processed in
// 256-bit blocks over an 8-lane AES-block state.
package rocca

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/ericlagergren/subtle"
)

const (
	// KeySize is the size in bytes of a ROCCA key.
	KeySize = 32
	// NonceSize is the size in bytes of a ROCCA nonce.
	NonceSize = 16
	// TagSize is the size in bytes of a ROCCA authentication tag.
	TagSize = 16
	// BlockSize is the size in bytes of a ROCCA message block.
	BlockSize = 32
)

// ErrAuthFailed is returned by Decrypt and by the Open method of the
// cipher.AEAD adapter when the supplied tag does not match the computed
// one. It is the only runtime failure mode this primitive has — buffer
// length mismatches are programmer errors and panic instead.
var ErrAuthFailed = errors.New("rocca: message authentication failed")

// Encrypt seals plaintext under key and nonce, authenticating ad
// alongside it, and writes len(plaintext) bytes of ciphertext to
// ciphertext and TagSize bytes of tag to tag.
//
// ciphertext and plaintext may fully or partially overlap (including
// being identical), since the ciphertext for each 32-byte block is
// written only after that block's plaintext has been read, but neither
// may partially overlap with a positional offset that reorders reads and
// writes relative to that block boundary.
//
// Encrypt panics if len(ciphertext) != len(plaintext), len(key) !=
// KeySize, len(nonce) != NonceSize, or len(tag) != TagSize — these are
// programmer errors, not part of the observable error surface.
func Encrypt(ciphertext, tag, plaintext, ad, nonce, key []byte) {
	if len(ciphertext) != len(plaintext) {
		panic("rocca: ciphertext and plaintext have different lengths")
	}
	if len(key) != KeySize {
		panic("rocca: invalid key length")
	}
	if len(nonce) != NonceSize {
		panic("rocca: invalid nonce length")
	}
	if len(tag) != TagSize {
		panic("rocca: invalid tag length")
	}

	st := initState(key, nonce)
	absorb(st, ad)

	n := len(plaintext)
	full := n - n%BlockSize
	for i := 0; i < full; i += BlockSize {
		encryptBlock(st, ciphertext[i:i+BlockSize], plaintext[i:i+BlockSize])
	}
	if rem := n - full; rem > 0 {
		encryptLast(st, ciphertext[full:n], plaintext[full:n])
	}

	computed := finalize(st, len(ad), n)
	copy(tag, computed[:])
}

// Decrypt opens ciphertext under key and nonce, verifying tag and ad,
// and writes len(ciphertext) bytes of plaintext to plaintext.
//
// On success it returns nil. On tag mismatch it returns ErrAuthFailed
// and overwrites every byte of plaintext with 0xAA; callers must not
// read plaintext on that path, since it never held real recovered
// plaintext.
//
// Decrypt panics if len(plaintext) != len(ciphertext), len(key) !=
// KeySize, len(nonce) != NonceSize, or len(tag) != TagSize.
func Decrypt(plaintext, ciphertext, tag, ad, nonce, key []byte) error {
	if len(plaintext) != len(ciphertext) {
		panic("rocca: plaintext and ciphertext have different lengths")
	}
	if len(key) != KeySize {
		panic("rocca: invalid key length")
	}
	if len(nonce) != NonceSize {
		panic("rocca: invalid nonce length")
	}
	if len(tag) != TagSize {
		panic("rocca: invalid tag length")
	}

	st := initState(key, nonce)
	absorb(st, ad)

	n := len(ciphertext)
	full := n - n%BlockSize
	for i := 0; i < full; i += BlockSize {
		decryptBlock(st, plaintext[i:i+BlockSize], ciphertext[i:i+BlockSize])
	}
	if rem := n - full; rem > 0 {
		decryptLast(st, plaintext[full:n], ciphertext[full:n])
	}

	computed := finalize(st, len(ad), n)
	if subtle.ConstantTimeCompare(computed[:], tag) != 1 {
		for i := range plaintext {
			plaintext[i] = 0xaa
		}
		return ErrAuthFailed
	}
	return nil
}

// AEAD adapts ROCCA to the crypto/cipher.AEAD interface, appending the
// tag to the ciphertext on Seal and stripping/verifying it on Open — the
// idiomatic Go ecosystem shape, layered on top of the two functions
// Encrypt/Decrypt above without replacing them.
type AEAD struct {
	key [KeySize]byte
}

var _ cipher.AEAD = (*AEAD)(nil)

// New constructs an AEAD keyed by key, which must be KeySize bytes.
func New(key []byte) (*AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("rocca: invalid key length: %d", len(key))
	}
	a := &AEAD{}
	copy(a.key[:], key)
	return a, nil
}

// NonceSize returns NonceSize.
func (*AEAD) NonceSize() int { return NonceSize }

// Overhead returns TagSize.
func (*AEAD) Overhead() int { return TagSize }

// Seal encrypts and authenticates plaintext, authenticates additionalData,
// and appends the result to dst.
func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic("rocca: invalid nonce length")
	}

	ret, out := subtle.SliceForAppend(dst, len(plaintext)+TagSize)
	if subtle.InexactOverlap(out, plaintext) {
		panic("rocca: invalid buffer overlap")
	}

	ciphertext := out[:len(plaintext)]
	tag := out[len(plaintext):]
	Encrypt(ciphertext, tag, plaintext, additionalData, nonce, a.key[:])
	return ret
}

// Open decrypts and authenticates ciphertext, authenticates
// additionalData and, if successful, appends the resulting plaintext to
// dst.
func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("rocca: invalid nonce length")
	}
	if len(ciphertext) < TagSize {
		return nil, ErrAuthFailed
	}

	tag := ciphertext[len(ciphertext)-TagSize:]
	ciphertext = ciphertext[:len(ciphertext)-TagSize]

	ret, out := subtle.SliceForAppend(dst, len(ciphertext))
	if subtle.InexactOverlap(out, ciphertext) {
		panic("rocca: invalid buffer overlap")
	}

	if err := Decrypt(out, ciphertext, tag, additionalData, nonce, a.key[:]); err != nil {
		return nil, err
	}
	return ret, nil
}
