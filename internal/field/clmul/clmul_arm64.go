//go:build arm64 && gc && !purego

package clmul

import "golang.org/x/sys/cpu"

//go:noescape
func mul64ArmAsm(a, b uint64) (lo, hi uint64)

func init() {
	if cpu.ARM64.HasPMULL {
		Mul64 = mul64ArmAsm
	}
}
