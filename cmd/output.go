package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/votesmart/votesmart"
)

// Output formats
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// renderRecords writes records in the requested format. columns selects the
// table columns; when empty every field seen in any record is shown.
func renderRecords(w io.Writer, format string, records []votesmart.Record, columns []string) error {
	switch format {
	case OutputFormatJSON:
		return renderJSON(w, recordMaps(records))
	case OutputFormatYAML:
		return renderYAML(w, recordMaps(records))
	default:
		return renderRecordTable(w, records, columns)
	}
}

func recordMaps(records []votesmart.Record) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.AsMap())
	}
	return out
}

func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}
	return nil
}

func renderRecordTable(w io.Writer, records []votesmart.Record, columns []string) error {
	if len(records) == 0 {
		_, _ = io.WriteString(w, "No results found\n")
		return nil
	}

	if len(columns) == 0 {
		columns = fieldUnion(records)
	}

	header := make([]any, 0, len(columns)+1)
	header = append(header, "Display")
	for _, c := range columns {
		header = append(header, c)
	}

	table := tablewriter.NewWriter(w)
	table.Header(header...)

	for _, rec := range records {
		row := make([]any, 0, len(columns)+1)
		row = append(row, rec.Display())
		for _, c := range columns {
			row = append(row, cellText(rec, c))
		}
		if err := table.Append(row...); err != nil {
			return fmt.Errorf("failed to build table: %w", err)
		}
	}

	return table.Render()
}

// cellText prints scalar fields as text and nested sequences as a count
func cellText(rec votesmart.Record, column string) string {
	if children, ok := rec.Nested[column]; ok {
		return fmt.Sprintf("%d items", len(children))
	}
	v, ok := rec.Get(column)
	if !ok {
		return ""
	}
	switch v.(type) {
	case map[string]any, []any:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(raw)
	}
	return rec.Text(column)
}

// fieldUnion returns every field name used by any record, sorted
func fieldUnion(records []votesmart.Record) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for _, k := range rec.Keys() {
			seen[k] = struct{}{}
		}
		for k := range rec.Nested {
			seen[k] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// parseParams turns name=value arguments into request parameters
func parseParams(args []string) (votesmart.Params, error) {
	params := make(votesmart.Params, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected name=value", arg)
		}
		params[name] = value
	}
	return params, nil
}

// splitList splits a comma separated flag value
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
