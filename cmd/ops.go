package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/s0up4200/votesmart/votesmart"
)

// opsCmd represents the ops command
var opsCmd = &cobra.Command{
	Use:   "ops [namespace]",
	Short: "List the available API operations",
	Long:  `List every operation in the operation table with its parameters, optionally limited to one namespace.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOps,
}

// operationInfo is the printable form of an operation descriptor
type operationInfo struct {
	Name     string   `json:"name" yaml:"name"`
	Shape    string   `json:"shape" yaml:"shape"`
	Kind     string   `json:"kind" yaml:"kind"`
	Path     string   `json:"path" yaml:"path"`
	Required []string `json:"required" yaml:"required"`
	Optional []string `json:"optional" yaml:"optional"`
}

func runOps(cmd *cobra.Command, args []string) error {
	namespace := ""
	if len(args) == 1 {
		namespace = args[0]
	}

	ops, err := selectOperations(namespace)
	if err != nil {
		return err
	}

	return renderOperations(os.Stdout, cfg.Output.Format, ops)
}

// selectOperations returns all operations, or those of one namespace
// (matched case-insensitively)
func selectOperations(namespace string) ([]operationInfo, error) {
	var out []operationInfo
	for _, op := range votesmart.Operations() {
		if namespace != "" && !strings.EqualFold(op.Namespace(), namespace) {
			continue
		}
		out = append(out, operationInfo{
			Name:     op.Name,
			Shape:    op.Shape.String(),
			Kind:     string(op.Kind),
			Path:     strings.Join(op.Path, "."),
			Required: op.Required,
			Optional: op.Optional,
		})
	}

	if namespace != "" && len(out) == 0 {
		return nil, fmt.Errorf("unknown namespace %q (available: %s)",
			namespace, strings.Join(votesmart.Namespaces(), ", "))
	}
	return out, nil
}

func renderOperations(w io.Writer, format string, ops []operationInfo) error {
	switch format {
	case OutputFormatJSON:
		return renderJSON(w, ops)
	case OutputFormatYAML:
		return renderYAML(w, ops)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Operation", "Shape", "Kind", "Required", "Optional")

	for _, op := range ops {
		if err := table.Append(op.Name, op.Shape, op.Kind,
			strings.Join(op.Required, ", "),
			strings.Join(op.Optional, ", ")); err != nil {
			return fmt.Errorf("failed to build table: %w", err)
		}
	}

	return table.Render()
}
