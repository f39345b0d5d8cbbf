//go:build fuzz

package rocca_test

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/jedisct1/go-rocca"
	rand "github.com/ericlagergren/saferand"
)

// TestFuzz runs randomized round-trip and tamper-detection checks for a
// fixed wall-clock budget. There is no reference implementation of ROCCA
// anywhere in this corpus to diff against (unlike AEGIS's supercop-backed
// internal/ref), so this fuzzes the two properties Encrypt/Decrypt must
// hold on their own: round-trip equality and authentication-failure
// detection, rather than agreement with a second implementation.
func TestFuzz(t *testing.T) {
	d := 2 * time.Second
	if testing.Short() {
		d = 10 * time.Millisecond
	}
	if s := os.Getenv("ROCCA_FUZZ_TIMEOUT"); s != "" {
		var err error
		d, err = time.ParseDuration(s)
		if err != nil {
			t.Fatal(err)
		}
	}
	tm := time.NewTimer(d)

	key := make([]byte, rocca.KeySize)
	nonce := make([]byte, rocca.NonceSize)
	plaintext := make([]byte, 1*1024*1024) // 1 MB
	ad := make([]byte, 64*1024)

	for i := 0; ; i++ {
		select {
		case <-tm.C:
			t.Logf("iters: %d", i)
			return
		default:
		}

		if _, err := rand.Read(key); err != nil {
			t.Fatal(err)
		}
		if _, err := rand.Read(nonce); err != nil {
			t.Fatal(err)
		}
		n := rand.Intn(len(plaintext))
		if _, err := rand.Read(plaintext[:n]); err != nil {
			t.Fatal(err)
		}
		pt := plaintext[:n]

		adn := rand.Intn(len(ad))
		if _, err := rand.Read(ad[:adn]); err != nil {
			t.Fatal(err)
		}
		adBuf := ad[:adn]

		ct := make([]byte, n)
		var tag [rocca.TagSize]byte
		rocca.Encrypt(ct, tag[:], pt, adBuf, nonce, key)

		got := make([]byte, n)
		if err := rocca.Decrypt(got, ct, tag[:], adBuf, nonce, key); err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if !bytes.Equal(got, pt) {
			t.Fatalf("roundtrip mismatch at iter %d, n=%d", i, n)
		}

		if n > 0 {
			ct[0] ^= 1
			if err := rocca.Decrypt(got, ct, tag[:], adBuf, nonce, key); err != rocca.ErrAuthFailed {
				t.Fatalf("expected ErrAuthFailed after ciphertext tamper, got %v", err)
			}
			for _, b := range got {
				if b != 0xaa {
					t.Fatalf("tampered decrypt left non-sentinel byte %#x", b)
				}
			}
		}
	}
}
