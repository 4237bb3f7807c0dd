// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package importer implements the CSV bulk loader for client records. It is
// deliberately non-transactional: every valid row is inserted on its own,
// a failing row neither rolls back earlier rows nor stops later ones, and
// the caller receives an aggregate result instead of a success boolean so
// partial success stays visible.
package importer

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"rtaweb/internal/models"
	"rtaweb/internal/store"
)

// Result is the aggregate outcome of one import run. Successful+Failed
// equals ValidRows; rows rejected during validation appear only in Errors.
type Result struct {
	TotalRows  int      `json:"totalRows"`
	ValidRows  int      `json:"validRows"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors"`
}

// parsedRow pairs a validated client with its 1-indexed raw-file line
// number (header included) for error reporting.
type parsedRow struct {
	line   int
	client models.Client
}

// Importer performs bulk client inserts against the store.
type Importer struct {
	clients *store.ClientStore
}

// New creates an Importer writing through the given client store.
func New(clients *store.ClientStore) *Importer {
	return &Importer{clients: clients}
}

// Import parses the raw CSV content and inserts every valid row
// independently. Partial success is a normal outcome, reported through the
// returned Result, never through an error.
func (im *Importer) Import(content string) *Result {
	rows, result := parse(content)

	for _, r := range rows {
		if _, err := im.clients.Create(&r.client); err != nil {
			slog.Error("bulk import insert failed", "line", r.line, "error", err)
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Insert failed", r.line))
			continue
		}
		result.Successful++
	}

	slog.Info("bulk import finished",
		"total", result.TotalRows,
		"valid", result.ValidRows,
		"successful", result.Successful,
		"failed", result.Failed,
	)
	return result
}

// parse splits the raw content into validated rows. The first line is the
// header; blank lines are skipped. A data row must match the header's
// column count, carry all four required fields (serial number, company
// name, security type, ISIN) non-empty, and have an integer serial number.
// Error line numbers are 1-indexed against the raw file including the
// header line.
func parse(content string) ([]parsedRow, *Result) {
	result := &Result{Errors: []string{}}

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		result.Errors = append(result.Errors, "Row 1: Missing header")
		return nil, result
	}
	header := strings.Split(lines[0], ",")
	if len(header) < 4 {
		result.Errors = append(result.Errors, "Row 1: Header must have at least 4 columns")
		return nil, result
	}

	var rows []parsedRow
	for i := 1; i < len(lines); i++ {
		line := i + 1 // 1-indexed against the raw file
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		result.TotalRows++

		cols := strings.Split(lines[i], ",")
		if len(cols) != len(header) {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Column count mismatch", line))
			continue
		}

		serial := strings.TrimSpace(cols[0])
		company := strings.TrimSpace(cols[1])
		security := strings.ToUpper(strings.TrimSpace(cols[2]))
		isin := strings.TrimSpace(cols[3])

		if serial == "" || company == "" || security == "" || isin == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Missing required fields", line))
			continue
		}

		serialNumber, err := strconv.Atoi(serial)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Invalid serial number", line))
			continue
		}

		result.ValidRows++
		rows = append(rows, parsedRow{
			line: line,
			client: models.Client{
				SerialNumber: serialNumber,
				CompanyName:  company,
				SecurityType: models.SecurityType(security),
				ISINCode:     isin,
				IsActive:     true,
			},
		})
	}

	return rows, result
}
