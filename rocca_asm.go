//go:build (amd64 || arm64) && gc && !purego

package rocca

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// haveAsm reports whether the hardware AES-NI (amd64) or ARMv8 Cryptography
// Extension (arm64) instructions needed by updateAsm/aesRoundAsm are
// available. Darwin is assumed capable the way the upstream dispatch
// does, since every shipping Apple Silicon and x86_64 Mac part has them.
var haveAsm = runtime.GOOS == "darwin" ||
	cpu.ARM64.HasAES ||
	(cpu.X86.HasAES && cpu.X86.HasSSE41)

func update(s *State, m0, m1 block) {
	if haveAsm {
		updateAsm(s, &m0, &m1)
		return
	}
	updateGeneric(s, m0, m1)
}

func aesRound(x, rk block) block {
	if haveAsm {
		var out block
		aesRoundAsm(&out, &x, &rk)
		return out
	}
	return aesRoundGeneric(x, rk)
}
