package rocca

import "testing"

func BenchmarkSeal16B(b *testing.B) { benchmarkSeal(b, make([]byte, 16)) }
func BenchmarkOpen16B(b *testing.B) { benchmarkOpen(b, make([]byte, 16)) }
func BenchmarkSeal1K(b *testing.B)  { benchmarkSeal(b, make([]byte, 1024)) }
func BenchmarkOpen1K(b *testing.B)  { benchmarkOpen(b, make([]byte, 1024)) }
func BenchmarkSeal8K(b *testing.B)  { benchmarkSeal(b, make([]byte, 8*1024)) }
func BenchmarkOpen8K(b *testing.B)  { benchmarkOpen(b, make([]byte, 8*1024)) }
func BenchmarkSeal64K(b *testing.B) { benchmarkSeal(b, make([]byte, 64*1024)) }
func BenchmarkOpen64K(b *testing.B) { benchmarkOpen(b, make([]byte, 64*1024)) }

func benchmarkSeal(b *testing.B, buf []byte) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	aead, err := New(key)
	if err != nil {
		b.Fatal(err)
	}
	dst := make([]byte, 0, len(buf)+aead.Overhead())

	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		aead.Seal(dst[:0], nonce, buf, nil)
	}
}

func benchmarkOpen(b *testing.B, buf []byte) {
	key := make([]byte, KeySize)
	nonce := make([]byte, NonceSize)
	aead, err := New(key)
	if err != nil {
		b.Fatal(err)
	}
	ct := aead.Seal(nil, nonce, buf, nil)
	dst := make([]byte, 0, len(buf))

	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := aead.Open(dst[:0], nonce, ct, nil); err != nil {
			b.Fatal(err)
		}
	}
}
