package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/go-selfies/internal/decoder"
	"github.com/turtacn/go-selfies/internal/monitoring/logging"
	"github.com/turtacn/go-selfies/pkg/selfies"
)

// translateFunc runs one translation and returns the output plus the
// optional attribution map.
type translateFunc func(input string) (string, selfies.AttributionMap, error)

// newEncodeCommand builds `selfies encode [SMILES...]`.
func newEncodeCommand(cliCtx *CLIContext) *cobra.Command {
	var attribute bool

	cmd := &cobra.Command{
		Use:   "encode [SMILES...]",
		Short: "Translate SMILES strings into SELFIES",
		Long: `Translate SMILES into SELFIES.  Inputs are taken from the
arguments, or line by line from stdin when no arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cliCtx, args, attribute, func(in string) (string, selfies.AttributionMap, error) {
				if attribute {
					return selfies.EncoderAttributed(in)
				}
				out, err := selfies.Encoder(in)
				return out, nil, err
			})
		},
	}
	cmd.Flags().BoolVar(&attribute, "attribute", false, "print the attribution map as JSON")
	return cmd
}

// newDecodeCommand builds `selfies decode [SELFIES...]`.
func newDecodeCommand(cliCtx *CLIContext) *cobra.Command {
	var attribute bool
	var compatible bool

	cmd := &cobra.Command{
		Use:   "decode [SELFIES...]",
		Short: "Translate SELFIES strings into SMILES",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cliCtx, args, attribute, func(in string) (string, selfies.AttributionMap, error) {
				if attribute {
					return decoder.Decode(in, decoder.Options{Attribute: true, Compatible: compatible})
				}
				out, err := selfies.DecoderWithOptions(in, selfies.DecodeOptions{Compatible: compatible})
				return out, nil, err
			})
		},
	}
	cmd.Flags().BoolVar(&attribute, "attribute", false, "print the attribution map as JSON")
	cmd.Flags().BoolVar(&compatible, "compatible", false, "accept legacy v1-era symbols")
	return cmd
}

// runTranslate applies fn to every input, printing one result per line.
// Per-line failures are reported and the command exits non-zero after
// processing all inputs.
func runTranslate(cliCtx *CLIContext, args []string, attribute bool, fn translateFunc) error {
	inputs := args
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	failures := 0
	for _, in := range inputs {
		out, attrs, err := fn(in)
		if err != nil {
			cliCtx.Logger.Warn("translation failed", logging.String("input", in), logging.Err(err))
			fail(err)
			failures++
			continue
		}
		fmt.Println(out)
		if attribute {
			blob, err := json.Marshal(attrs)
			if err != nil {
				return err
			}
			fmt.Println(string(blob))
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d inputs failed", failures, len(inputs))
	}
	return nil
}

//Personal.AI order the ending
