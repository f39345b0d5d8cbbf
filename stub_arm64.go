//go:build arm64 && gc && !purego

package rocca

// updateAsm and aesRoundAsm are implemented in rocca_arm64.s, generated by
// asm/asm.go. They apply the fused AESE+AESMC instruction pair, which
// together compute the same SubBytes/ShiftRows/MixColumns/AddRoundKey
// round as amd64's AESENC (AddRoundKey is folded in via a final EOR).

//go:noescape
func updateAsm(s *State, m0, m1 *block)

//go:noescape
func aesRoundAsm(out, in, rk *block)
