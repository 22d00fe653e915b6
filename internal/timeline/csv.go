package timeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/golobby/cast"
)

// csvColumns is the canonical column order used when writing CSV.
var csvColumns = []string{
	"id",
	"title",
	"description",
	"status",
	"completed_on",
	"section",
}

var requiredCSVColumns = []string{"id", "title", "status", "section"}

var intType = reflect.TypeOf(0)

// ReadCSV reads steps from a CSV table with a header row.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable fields

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[normalizeColumnName(col)] = i
	}

	for _, col := range requiredCSVColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	var steps []Step
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", lineNum+1, err)
		}
		lineNum++

		step, err := parseRow(record, colIndex)
		if err != nil {
			return nil, fmt.Errorf("failed to parse row %d: %w", lineNum, err)
		}
		steps = append(steps, step)
	}

	return New(steps)
}

// WriteCSV writes the dataset as a CSV table.
func (d *Dataset) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, s := range d.steps {
		if err := writer.Write(formatRow(s)); err != nil {
			return fmt.Errorf("failed to write CSV row for step %d: %w", s.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// normalizeColumnName converts column names to snake_case.
func normalizeColumnName(name string) string {
	name = strings.TrimSpace(name)

	if strings.Contains(name, "_") || strings.ToLower(name) == name {
		return strings.ToLower(name)
	}

	// camelCase -> snake_case, so "completedOn" matches "completed_on"
	var result strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := rune(name[i-1])
			if prev >= 'a' && prev <= 'z' {
				result.WriteByte('_')
			}
		}
		result.WriteRune(r)
	}

	return strings.ToLower(result.String())
}

// parseRow parses a CSV record into a Step.
func parseRow(record []string, colIndex map[string]int) (Step, error) {
	getValue := func(col string) string {
		if idx, ok := colIndex[col]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}

	var step Step

	rawID := getValue("id")
	if rawID == "" {
		return step, fmt.Errorf("id is required")
	}
	id, err := cast.FromType(rawID, intType)
	if err != nil {
		return step, fmt.Errorf("invalid id %q: %w", rawID, err)
	}
	n, ok := id.(int)
	if !ok {
		return step, fmt.Errorf("invalid id %q", rawID)
	}
	step.ID = n

	status, err := ParseStatus(getValue("status"))
	if err != nil {
		return step, err
	}
	step.Status = status

	step.Title = getValue("title")
	step.Description = getValue("description")
	step.Section = SectionName(getValue("section"))
	if date := getValue("completed_on"); date != "" && !strings.EqualFold(date, "null") {
		step.CompletedOn = DateString(date)
	}

	return step, nil
}

// formatRow formats a Step as a CSV record in csvColumns order.
func formatRow(s Step) []string {
	completedOn := ""
	if s.CompletedOn != nil {
		completedOn = *s.CompletedOn
	}
	return []string{
		strconv.Itoa(s.ID),
		s.Title,
		s.Description,
		s.Status.String(),
		completedOn,
		string(s.Section),
	}
}
