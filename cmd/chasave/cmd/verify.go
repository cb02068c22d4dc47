package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssargent/chasave/pkg/codec"
)

type verifyResult struct {
	Path       string `json:"path" yaml:"path"`
	Size       int    `json:"size" yaml:"size"`
	PrefixSize int    `json:"prefix_size" yaml:"prefix_size"`
	TailSize   int    `json:"tail_size" yaml:"tail_size"`
	Identical  bool   `json:"identical" yaml:"identical"`
	FirstDiff  int    `json:"first_diff" yaml:"first_diff"`
}

// firstDiff returns the first offset at which a and b differ, or -1.
func firstDiff(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that a save survives decode and encode unchanged",
		Long: `Decode a save, encode it again without edits and compare the bytes.

A save that does not round-trip should not be edited with this tool.

Examples:
  chasave verify 0.cha`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			original, err := os.ReadFile(path)
			if err != nil {
				return describeError(err)
			}
			s, tail, err := codec.Unmarshal(original)
			if err != nil {
				return describeError(err)
			}
			encoded, err := codec.Marshal(s, tail)
			if err != nil {
				return describeError(err)
			}

			res := verifyResult{
				Path:       path,
				Size:       len(original),
				PrefixSize: s.PrefixSize(),
				TailSize:   len(tail),
				Identical:  bytes.Equal(original, encoded),
				FirstDiff:  firstDiff(original, encoded),
			}
			a.log.Debug("round trip checked",
				zap.String("path", path),
				zap.Bool("identical", res.Identical),
			)

			out := cmd.OutOrStdout()
			done, err := printStructured(out, a.opts.Format, res)
			if err != nil {
				return err
			}
			if !res.Identical {
				return fmt.Errorf("round trip mismatch at offset %d", res.FirstDiff)
			}
			if !done && !a.opts.Quiet {
				fmt.Fprintf(out, "OK %s: %d bytes (prefix %d, tail %d)\n", path, res.Size, res.PrefixSize, res.TailSize)
			}
			return nil
		},
	}
}
