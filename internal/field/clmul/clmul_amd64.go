//go:build amd64 && gc && !purego

package clmul

import "golang.org/x/sys/cpu"

//go:noescape
func mul64AmdAsm(a, b uint64) (lo, hi uint64)

func init() {
	if cpu.X86.HasPCLMULQDQ {
		Mul64 = mul64AmdAsm
	}
}
