package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/votesmart/filter"
	"github.com/s0up4200/votesmart/votesmart"
)

var (
	filterExpr string
	preset     string
	fieldsFlag string
)

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:   "call <Namespace.method> [name=value...]",
	Short: "Call a Vote Smart API operation by name",
	Long: `Call any operation from the operation table, e.g.

  votesmart call Candidates.getByOfficeState officeId=6 stateId=NY
  votesmart call Votes.getBill billId=17623 -o json

Results can be narrowed with --filter or a --preset from the config file.
Run "votesmart ops" to list the available operations.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	callCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	callCmd.Flags().StringVar(&fieldsFlag, "fields", "", "comma separated table columns")
}

func runCall(cmd *cobra.Command, args []string) error {
	params, err := parseParams(args[1:])
	if err != nil {
		return err
	}

	// Compile first so a bad filter fails before any request
	compiled, err := getFilter()
	if err != nil {
		return err
	}

	name := args[0]
	logger.Debug().Str("operation", name).Interface("params", params).Msg("Calling operation")

	records, err := client.Invoke(cmd.Context(), name, params)
	if err != nil {
		return describeError(err)
	}

	if compiled != nil {
		total := len(records)
		records, err = filter.Apply(cmd.Context(), compiled, records)
		if err != nil {
			return fmt.Errorf("filter failed: %w", err)
		}
		logger.Debug().Int("matched", len(records)).Int("total", total).Msg("Applied filter")
	}

	return renderRecords(os.Stdout, cfg.Output.Format, records, splitList(fieldsFlag))
}

// getFilter determines the filter to apply, if any.
// Priority: command line filter > preset.
func getFilter() (filter.CompiledFilter, error) {
	if filterExpr != "" {
		compiled, err := filters.Compile(filterExpr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		return compiled, nil
	}

	if preset != "" {
		compiled, ok := filters.GetFilter(preset)
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		return compiled, nil
	}

	return nil, nil
}

// describeError adds a hint for the error kinds a user can fix
func describeError(err error) error {
	switch votesmart.KindOf(err) {
	case votesmart.KindMissingCredential:
		return fmt.Errorf("%w (set VOTESMART_API_KEY or votesmart.api_key)", err)
	case votesmart.KindServiceError:
		return fmt.Errorf("service error: %w", err)
	default:
		return err
	}
}
