package cli

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gendx/horcrux/internal/cli/runner"
	"github.com/gendx/horcrux/internal/logging"
	"github.com/gendx/horcrux/internal/sss"
)

var reconstructRunner = builder.Config()

func init() {
	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "Reconstruct a secret from T Shamir shares",
		Args:  cobra.NoArgs,
		RunE:  reconstructRunner.Wrap(runReconstruct),
	}

	cmd.Flags().IntP("threshold", "t", 0, "reconstruction threshold T (required)")
	cmd.Flags().String("shares", "", "path to a file of share lines (required)")
	_ = cmd.MarkFlagRequired("threshold")
	_ = cmd.MarkFlagRequired("shares")

	rootCmd.AddCommand(cmd)
}

func runReconstruct(ctx *runner.CommandContext, cmd *cobra.Command, args []string) error {
	flags := runner.Flags(cmd)
	t := flags.Int("threshold")
	path := flags.String("shares")
	if flags.HasErrors() {
		return flags.Err()
	}

	shares, err := readShareFile(path)
	if err != nil {
		return err
	}

	logging.Info("reconstructing secret",
		logging.Int("threshold", t),
		logging.Int("shares_read", len(shares)),
	)

	secret, err := sss.Reconstruct(shares, t)
	if err != nil {
		return err
	}

	PrintHeader("Secret")
	PrintInfo("%s", hex.EncodeToString(secret))
	return nil
}

func readShareFile(path string) ([]sss.Share, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening share file: %w", err)
	}
	defer f.Close()

	var shares []sss.Share
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s, err := sss.ParseShare(line)
		if err != nil {
			return nil, err
		}
		shares = append(shares, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading share file: %w", err)
	}
	return shares, nil
}
