// Code generated by command: go run asm.go -out ../rocca_amd64.s -stubs ../stub_amd64.go -pkg rocca. DO NOT EDIT.

//go:build amd64 && gc && !purego

package rocca

//go:noescape
func aesRoundAsm(out *block, in *block, rk *block)

//go:noescape
func updateAsm(s *State, m0 *block, m1 *block)
