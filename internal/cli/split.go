package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	horerrs "github.com/gendx/horcrux/internal/errors"
	"github.com/gendx/horcrux/internal/logging"
	"github.com/gendx/horcrux/internal/oracle"
	"github.com/gendx/horcrux/internal/cli/runner"
	"github.com/gendx/horcrux/internal/sss"
)

var splitRunner = builder.Config()

func init() {
	cmd := &cobra.Command{
		Use:   "split <secret-hex>",
		Short: "Split a secret into N Shamir shares",
		Args:  cobra.ExactArgs(1),
		RunE:  splitRunner.Wrap(runSplit),
	}

	cmd.Flags().IntP("nshares", "n", 0, "total number of shares N (required)")
	cmd.Flags().IntP("threshold", "t", 0, "reconstruction threshold T (required)")
	cmd.Flags().String("type", "", "encoding: compact or random (default from config)")
	cmd.Flags().String("seed", "", "hex seed for a deterministic ChaCha20 oracle (debug/test use only)")
	_ = cmd.MarkFlagRequired("nshares")
	_ = cmd.MarkFlagRequired("threshold")

	rootCmd.AddCommand(cmd)
}

func runSplit(ctx *runner.CommandContext, cmd *cobra.Command, args []string) error {
	secretHex := args[0]
	secret, err := hex.DecodeString(secretHex)
	if err != nil {
		return fmt.Errorf("%w: secret is not valid hex", horerrs.ErrParseShare)
	}

	flags := runner.Flags(cmd)
	n := flags.Int("nshares")
	t := flags.Int("threshold")
	if flags.HasErrors() {
		return flags.Err()
	}

	encName := cmd.Flags().Lookup("type").Value.String()
	if encName == "" && ctx.Config != nil {
		encName = ctx.Config.DefaultEncoding
	}
	enc, err := parseEncoding(encName)
	if err != nil {
		return err
	}

	var o oracle.Oracle = oracle.CryptoRand{}
	seedHex := cmd.Flags().Lookup("seed").Value.String()
	if seedHex != "" {
		seed, err := hex.DecodeString(seedHex)
		if err != nil {
			return fmt.Errorf("%w: seed is not valid hex", horerrs.ErrParseShare)
		}
		seeded, err := oracle.NewSeeded(seed)
		if err != nil {
			return err
		}
		o = seeded
	}

	logging.Info("splitting secret",
		logging.Int("nshares", n),
		logging.Int("threshold", t),
		logging.String("encoding", enc.String()),
		logging.Int("secret_bytes", len(secret)),
	)

	shares, err := sss.Split(secret, n, t, enc, o)
	if err != nil {
		return err
	}

	PrintHeader("Secret")
	PrintInfo("%s", secretHex)
	PrintHeader("Shares")
	for _, s := range shares {
		PrintInfo("%s", sss.FormatShare(s))
	}

	return nil
}

func parseEncoding(s string) (sss.Encoding, error) {
	switch s {
	case "", "compact":
		return sss.EncodingCompact, nil
	case "random", "randomized":
		return sss.EncodingRandomized, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q: want \"compact\" or \"random\"", s)
	}
}
