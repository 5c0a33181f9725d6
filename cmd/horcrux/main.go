// Command horcrux splits and reconstructs secrets using Shamir's Secret
// Sharing over GF(2^n).
package main

import (
	"github.com/gendx/horcrux/internal/cli"
)

var version = "0.1.0"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
