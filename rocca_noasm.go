//go:build !((amd64 || arm64) && gc && !purego)

package rocca

func update(s *State, m0, m1 block) {
	updateGeneric(s, m0, m1)
}

func aesRound(x, rk block) block {
	return aesRoundGeneric(x, rk)
}
