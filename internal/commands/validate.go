// internal/commands/validate.go
package cspdash

import (
	"errors"
	"fmt"
	"os"

	"github.com/MMIthomas/SAE303/internal/dataset"
	"github.com/spf13/cobra"
)

// validateCmd checks the input document against the export schema.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the benchmark export is well formed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := GetConfig().InputPath()
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read dataset %s: %w", path, err)
		}

		out := cmd.OutOrStdout()
		if err := dataset.Validate(raw); err != nil {
			var verr *dataset.ValidationError
			if !errors.As(err, &verr) {
				return fmt.Errorf("unable to check dataset %s: %w", path, err)
			}
			for _, p := range verr.Problems {
				fmt.Fprintf(out, "  - %s\n", p)
			}
			return fmt.Errorf("%s: %d schema problem(s)", path, len(verr.Problems))
		}

		doc, err := dataset.Parse(raw)
		if err != nil {
			return fmt.Errorf("unable to parse dataset %s: %w", path, err)
		}
		if doc.Table() == nil {
			fmt.Fprintf(out, "%s is valid but has no table section\n", path)
			return nil
		}
		fmt.Fprintf(out, "%s is valid (%d records)\n", path, len(dataset.TableResults(doc)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
