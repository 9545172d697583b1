package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	errUtils "github.com/stonkie/stonkie/errors"
)

// ReportType identifies a financial statement kind. Values match the
// backend's URL path segments.
type ReportType string

const (
	ReportIncomeStatement ReportType = "income_statement"
	ReportBalanceSheet    ReportType = "balance_sheet"
	ReportCashFlow        ReportType = "cash_flow"
)

// ReportTypes lists the valid report types in display order.
func ReportTypes() []ReportType {
	return []ReportType{ReportIncomeStatement, ReportBalanceSheet, ReportCashFlow}
}

// Title returns a human-readable name for the report type.
func (r ReportType) Title() string {
	switch r {
	case ReportIncomeStatement:
		return "Income Statement"
	case ReportBalanceSheet:
		return "Balance Sheet"
	case ReportCashFlow:
		return "Cash Flow"
	default:
		return string(r)
	}
}

// ParseReportType validates a user-supplied report name. Hyphens are
// accepted in place of underscores so `balance-sheet` works on the CLI.
func ParseReportType(s string) (ReportType, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch ReportType(normalized) {
	case ReportIncomeStatement, ReportBalanceSheet, ReportCashFlow:
		return ReportType(normalized), nil
	default:
		return "", fmt.Errorf("%w: %q (valid: income_statement, balance_sheet, cash_flow)",
			errUtils.ErrInvalidReportType, s)
	}
}

// Statement is one financial statement: ordered column names plus row
// records keyed by column. An empty Rows slice is a valid statement; the
// backend reports tickers it has no data for that way.
type Statement struct {
	Columns []string
	Rows    []map[string]any
}

// Empty reports whether the backend had no data for the ticker.
func (s *Statement) Empty() bool { return len(s.Rows) == 0 }

// Cell returns the row's value under col formatted for display. Absent or
// null cells render empty.
func (s *Statement) Cell(row map[string]any, col string) string {
	v, ok := row[col]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// statementEnvelope mirrors the financial-data endpoint's response.
type statementEnvelope struct {
	Data    []map[string]any `json:"data"`
	Columns []string         `json:"columns"`
}

// FinancialStatement GETs /api/financial-data/{ticker}/{report}. The
// report type is validated client side before any request goes out.
func (c *HTTPClient) FinancialStatement(ctx context.Context, ticker string, report ReportType) (*Statement, error) {
	if _, err := ParseReportType(string(report)); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/financial-data/%s/%s", c.baseURL, ticker, report)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	// UseNumber keeps large figures out of float notation.
	dec.UseNumber()
	var envelope statementEnvelope
	if err := dec.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode statement: %w", err)
	}

	return &Statement{Columns: envelope.Columns, Rows: envelope.Data}, nil
}
