package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// NotAvailable is the output token for fields a pod does not have.
const NotAvailable = "N/A"

var header = []string{
	"POD_NAME",
	"NAMESPACE",
	"REPLICASET",
	"PRIORITY_CLASS",
	"PRIORITY_VALUE",
	"PDB_NAME",
	"MIN_AVAILABLE",
	"MAX_UNAVAILABLE",
}

func orNA(value string) string {
	if value == "" {
		return NotAvailable
	}
	return value
}

// fields renders a row as its eight column values, in header order.
func fields(row Row) []string {
	priorityValue := NotAvailable
	if row.HasPriority {
		priorityValue = strconv.FormatInt(int64(row.PriorityValue), 10)
	}
	return []string{
		row.PodName,
		row.Namespace,
		orNA(row.ReplicaSet),
		orNA(row.PriorityClass),
		priorityValue,
		orNA(row.PDBName),
		orNA(row.MinAvailable),
		orNA(row.MaxUnavailable),
	}
}

// WriteTSV writes the report as a tab-separated table, header first,
// values verbatim, preserving row order.
func WriteTSV(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("writing TSV: %w", err)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(fields(row), "\t")); err != nil {
			return fmt.Errorf("writing TSV: %w", err)
		}
	}
	return nil
}

// WriteCSV writes the report to path, creating or truncating the file.
// Quoting follows encoding/csv's RFC 4180 rules.
func WriteCSV(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		file.Close()
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(fields(row)); err != nil {
			file.Close()
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("flushing CSV: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
