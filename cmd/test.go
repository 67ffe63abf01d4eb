package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/votesmart/votesmart"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection and API key",
	Long:  `Test the connection to the Vote Smart API and display basic information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to Vote Smart at %s...\n", client.BaseURL())

	if err := client.TestConnection(cmd.Context()); err != nil {
		return describeError(err)
	}
	fmt.Println("✓ Connection successful!")

	fmt.Printf("\nClient:\n")
	fmt.Printf("- Operations: %d\n", len(votesmart.Operations()))
	fmt.Printf("- Namespaces: %d\n", len(votesmart.Namespaces()))
	fmt.Printf("- Filter presets: %d\n", len(filters.ListFilters()))

	return nil
}
