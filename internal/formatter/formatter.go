// package formatter renders rename plans to various formats (plain text, Markdown, CSV)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"albumweld/internal/sorter"
)

// PlanToText converts a rename plan to plain text, one rename per line.
func PlanToText(plan *sorter.Plan) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Directory: %s\n", plan.Dir))
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(plan.Ops)))

	for _, op := range plan.Ops {
		buf.WriteString(fmt.Sprintf("%s ==> %s\n", filepath.Base(op.Source), op.NewName))
	}

	return buf.Bytes(), nil
}

// PlanToMarkdown converts a rename plan to a Markdown table.
func PlanToMarkdown(plan *sorter.Plan) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", filepath.Base(plan.Dir)))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(plan.Ops)))

	buf.WriteString("| # | Track | Current name | New name |\n")
	buf.WriteString("|---|-------|--------------|----------|\n")
	for i, op := range plan.Ops {
		buf.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n", i+1, op.Title, filepath.Base(op.Source), op.NewName))
	}

	return buf.Bytes(), nil
}

// PlanToCSV converts a rename plan to CSV with columns: Index, Track, Source, NewName
func PlanToCSV(plan *sorter.Plan) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Index", "Track", "Source", "NewName"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, op := range plan.Ops {
		record := []string{
			strconv.Itoa(i + 1),
			op.Title,
			filepath.Base(op.Source),
			op.NewName,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderPlan renders a plan in the named format: "text", "markdown", or "csv".
func RenderPlan(plan *sorter.Plan, format string) ([]byte, error) {
	switch format {
	case "", "text":
		return PlanToText(plan)
	case "markdown", "md":
		return PlanToMarkdown(plan)
	case "csv":
		return PlanToCSV(plan)
	default:
		return nil, fmt.Errorf("unknown plan format: %q", format)
	}
}

// WritePlanExport renders a plan and writes it to the given path.
func WritePlanExport(plan *sorter.Plan, path, format string) error {
	data, err := RenderPlan(plan, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}

	return nil
}
