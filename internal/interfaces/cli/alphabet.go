package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/go-selfies/pkg/selfies"
)

// newAlphabetCommand builds `selfies alphabet`.
func newAlphabetCommand(_ *CLIContext) *cobra.Command {
	return &cobra.Command{
		Use:   "alphabet",
		Short: "Print the semantic robust alphabet under the installed constraints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, sym := range selfies.GetSemanticRobustAlphabet() {
				fmt.Println(sym)
			}
			return nil
		},
	}
}

// newConstraintsCommand builds `selfies constraints`.
func newConstraintsCommand(_ *CLIContext) *cobra.Command {
	return &cobra.Command{
		Use:   "constraints",
		Short: "Print the installed semantic constraint table as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			blob, err := json.MarshalIndent(selfies.GetSemanticConstraints(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(blob))
			return nil
		},
	}
}

//Personal.AI order the ending
