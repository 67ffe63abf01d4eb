package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/votesmart/votesmart"
)

// biosCmd represents the bios command
var biosCmd = &cobra.Command{
	Use:   "bios <candidateId> [candidateId...]",
	Short: "Fetch biographies for several candidates at once",
	Long: `Fetch CandidateBio.getBio for every candidate id, running up to
concurrency.limit requests in parallel. Results keep the order of the ids.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBios,
}

func init() {
	biosCmd.Flags().StringVar(&fieldsFlag, "fields", "", "comma separated table columns")
}

func runBios(cmd *cobra.Command, args []string) error {
	records, err := fetchBios(cmd.Context(), client, args, cfg.Concurrency.Limit)
	if err != nil {
		return describeError(err)
	}

	return renderRecords(os.Stdout, cfg.Output.Format, records, splitList(fieldsFlag))
}

// fetchBios fetches one biography per id with at most limit calls in flight.
// The first failure cancels the remaining calls.
func fetchBios(ctx context.Context, c *votesmart.Client, ids []string, limit int) ([]votesmart.Record, error) {
	results := make([]votesmart.Record, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i, id := range ids {
		g.Go(func() error {
			records, err := c.Invoke(ctx, "CandidateBio.getBio", votesmart.Params{"candidateId": id})
			if err != nil {
				return err
			}
			// getBio is single-shaped
			results[i] = records[0]
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug().Int("count", len(results)).Msg("Fetched biographies")
	return results, nil
}
