package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/stonkie/stonkie/errors"
)

func TestParseReportType(t *testing.T) {
	t.Run("accepts canonical names", func(t *testing.T) {
		for _, name := range []string{"income_statement", "balance_sheet", "cash_flow"} {
			report, err := ParseReportType(name)
			require.NoError(t, err)
			assert.Equal(t, ReportType(name), report)
		}
	})

	t.Run("normalizes hyphens and case", func(t *testing.T) {
		report, err := ParseReportType(" Balance-Sheet ")
		require.NoError(t, err)
		assert.Equal(t, ReportBalanceSheet, report)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := ParseReportType("quarterly_magic")
		require.Error(t, err)
		assert.ErrorIs(t, err, errUtils.ErrInvalidReportType)
		assert.Contains(t, err.Error(), "quarterly_magic")
	})
}

func TestFinancialStatement(t *testing.T) {
	t.Run("fetches and preserves column order", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/financial-data/AAPL/income_statement", r.URL.Path)
			w.Write([]byte(`{
				"status": "success",
				"data": [
					{"Date": "2024-09-28", "Revenue": 391035000000, "NetIncome": 93736000000},
					{"Date": "2023-09-30", "Revenue": 383285000000, "NetIncome": 96995000000}
				],
				"columns": ["Date", "Revenue", "NetIncome"]
			}`))
		}))
		defer server.Close()

		statement, err := New(server.URL).FinancialStatement(context.Background(), "AAPL", ReportIncomeStatement)
		require.NoError(t, err)
		assert.Equal(t, []string{"Date", "Revenue", "NetIncome"}, statement.Columns)
		require.Len(t, statement.Rows, 2)
		assert.False(t, statement.Empty())
	})

	t.Run("large figures render without float notation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": [{"Revenue": 391035000000}], "columns": ["Revenue"]}`))
		}))
		defer server.Close()

		statement, err := New(server.URL).FinancialStatement(context.Background(), "AAPL", ReportIncomeStatement)
		require.NoError(t, err)
		assert.Equal(t, "391035000000", statement.Cell(statement.Rows[0], "Revenue"))
	})

	t.Run("missing and null cells render empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": [{"Date": "2024", "Revenue": null}], "columns": ["Date", "Revenue", "Margin"]}`))
		}))
		defer server.Close()

		statement, err := New(server.URL).FinancialStatement(context.Background(), "AAPL", ReportIncomeStatement)
		require.NoError(t, err)
		row := statement.Rows[0]
		assert.Equal(t, "2024", statement.Cell(row, "Date"))
		assert.Empty(t, statement.Cell(row, "Revenue"))
		assert.Empty(t, statement.Cell(row, "Margin"))
	})

	t.Run("empty data is a valid statement", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "success", "data": [], "columns": []}`))
		}))
		defer server.Close()

		statement, err := New(server.URL).FinancialStatement(context.Background(), "ZZZZ", ReportCashFlow)
		require.NoError(t, err)
		assert.True(t, statement.Empty())
	})

	t.Run("invalid report type never reaches the backend", func(t *testing.T) {
		var hits int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
		}))
		defer server.Close()

		_, err := New(server.URL).FinancialStatement(context.Background(), "AAPL", ReportType("pension_ledger"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errUtils.ErrInvalidReportType)
		assert.Zero(t, hits)
	})

	t.Run("backend error propagates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := New(server.URL).FinancialStatement(context.Background(), "AAPL", ReportBalanceSheet)
		require.Error(t, err)
		assert.ErrorIs(t, err, errUtils.ErrUnexpectedStatus)
	})
}

func TestReportTypeTitle(t *testing.T) {
	assert.Equal(t, "Income Statement", ReportIncomeStatement.Title())
	assert.Equal(t, "Balance Sheet", ReportBalanceSheet.Title())
	assert.Equal(t, "Cash Flow", ReportCashFlow.Title())
}

func TestSuggestedQuestions(t *testing.T) {
	t.Run("returns backend questions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/TSLA/faq", r.URL.Path)
			w.Write([]byte(`{"status": "success", "data": ["How is automotive margin trending?", "What is energy storage revenue?"]}`))
		}))
		defer server.Close()

		questions := New(server.URL).SuggestedQuestions(context.Background(), "TSLA")
		assert.Equal(t, []string{
			"How is automotive margin trending?",
			"What is energy storage revenue?",
		}, questions)
	})

	t.Run("falls back to defaults on backend error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		assert.Equal(t, DefaultQuestions, New(server.URL).SuggestedQuestions(context.Background(), "TSLA"))
	})

	t.Run("falls back to defaults on garbage payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json at all`))
		}))
		defer server.Close()

		assert.Equal(t, DefaultQuestions, New(server.URL).SuggestedQuestions(context.Background(), "TSLA"))
	})

	t.Run("falls back to defaults on empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "success", "data": []}`))
		}))
		defer server.Close()

		assert.Equal(t, DefaultQuestions, New(server.URL).SuggestedQuestions(context.Background(), "TSLA"))
	})

	t.Run("fallback is a copy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		questions := New(server.URL).SuggestedQuestions(context.Background(), "TSLA")
		questions[0] = "mutated"
		assert.Equal(t, "What is the company's revenue?", DefaultQuestions[0])
	})
}
