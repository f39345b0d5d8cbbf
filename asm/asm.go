package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	. "github.com/mmcloughlin/avo/reg"
)

//go:generate go run asm.go -out ../rocca_amd64.s -stubs ../stub_amd64.go -pkg rocca

var (
	z0 Mem
	z1 Mem
)

func main() {
	Package("github.com/jedisct1/go-rocca")
	ConstraintExpr("amd64,gc,!purego")

	z0 = GLOBL("z0", RODATA|NOPTR)
	DATA(0, U64(0x7137449123ef65cd))
	DATA(8, U64(0x428a2f98d728ae22))

	z1 = GLOBL("z1", RODATA|NOPTR)
	DATA(0, U64(0xe9b5dba58189dbbc))
	DATA(8, U64(0xb5c0fbcfec4d3b2f))

	declareAESRound()
	declareUpdate()

	Generate()
}

// declareAESRound emits aesRoundAsm(out, in, rk *block): one AESENC
// round, the same SubBytes/ShiftRows/MixColumns/AddRoundKey(rk) transform
// aesRoundGeneric computes in portable Go.
func declareAESRound() {
	TEXT("aesRoundAsm", NOSPLIT, "func(out, in, rk *block)")
	Pragma("noescape")

	inp := Mem{Base: Load(Param("in"), GP64())}
	rkp := Mem{Base: Load(Param("rk"), GP64())}
	outp := Mem{Base: Load(Param("out"), GP64())}

	out, rk := XMM(), XMM()
	MOVOU(inp, out)
	MOVOU(rkp, rk)
	AESENC(rk, out)
	MOVOU(out, outp)

	RET()
}

// rState holds the 8 lanes of a ROCCA state across a sequence of
// instructions, holding the 8 lanes across a sequence of instructions.
type rState [8]VecVirtual

// update implements the state update function in amd64 assembly:
//
//	S'0 = S7 ^ X0
//	S'1 = AESRound(S0, S7)
//	S'2 = S1 ^ S6
//	S'3 = AESRound(S2, S1)
//	S'4 = S3 ^ X1
//	S'5 = AESRound(S4, S3)
//	S'6 = AESRound(S5, S4)
//	S'7 = S0 ^ S6
//
// Every right-hand side reads a lane of the pre-update state, so all 8
// are computed into fresh registers before any of s[0..7] is reassigned
// — the hardware analog of state.go's read-then-assign discipline.
func (s *rState) update(x0, x1 VecVirtual) {
	n0, n1, n2, n3 := XMM(), XMM(), XMM(), XMM()
	n4, n5, n6, n7 := XMM(), XMM(), XMM(), XMM()

	Comment("S'0 = S7 ^ X0")
	MOVOU(s[7], n0)
	PXOR(x0, n0)

	Comment("S'1 = AESRound(S0, S7)")
	MOVOU(s[0], n1)
	AESENC(s[7], n1)

	Comment("S'2 = S1 ^ S6")
	MOVOU(s[1], n2)
	PXOR(s[6], n2)

	Comment("S'3 = AESRound(S2, S1)")
	MOVOU(s[2], n3)
	AESENC(s[1], n3)

	Comment("S'4 = S3 ^ X1")
	MOVOU(s[3], n4)
	PXOR(x1, n4)

	Comment("S'5 = AESRound(S4, S3)")
	MOVOU(s[4], n5)
	AESENC(s[3], n5)

	Comment("S'6 = AESRound(S5, S4)")
	MOVOU(s[5], n6)
	AESENC(s[4], n6)

	Comment("S'7 = S0 ^ S6")
	MOVOU(s[0], n7)
	PXOR(s[6], n7)

	s[0], s[1], s[2], s[3] = n0, n1, n2, n3
	s[4], s[5], s[6], s[7] = n4, n5, n6, n7
}

func declareUpdate() {
	TEXT("updateAsm", NOSPLIT, "func(s *State, m0, m1 *block)")
	Pragma("noescape")

	sp := Mem{Base: Load(Param("s"), GP64())}
	m0p := Mem{Base: Load(Param("m0"), GP64())}
	m1p := Mem{Base: Load(Param("m1"), GP64())}

	Comment("load state")
	var s rState
	for i := range s {
		s[i] = XMM()
		MOVOU(sp.Offset(i*16), s[i])
	}

	x0, x1 := XMM(), XMM()
	MOVOU(m0p, x0)
	MOVOU(m1p, x1)

	s.update(x0, x1)

	Comment("store state")
	for i := range s {
		MOVOU(s[i], sp.Offset(i*16))
	}
	RET()
}
