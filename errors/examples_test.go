package errors

import (
	"fmt"
	"os"
	"testing"

	"github.com/cockroachdb/errors"
)

// TestExampleErrorFormatting demonstrates error formatting and can be run manually.
// Run with: go test -v ./errors -run TestExampleErrorFormatting.
func TestExampleErrorFormatting(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping example test in short mode")
	}

	fmt.Fprintf(os.Stderr, "\n=== Example 1: Simple Error ===\n")
	err1 := errors.New("no financial data found for ticker 'AAPL'")
	formatted1 := Format(err1, FormatterConfig{
		Verbose:       false,
		MaxLineLength: 80,
	})
	fmt.Fprintf(os.Stderr, "%s\n\n", formatted1)

	fmt.Fprintf(os.Stderr, "=== Example 2: Error with Single Hint ===\n")
	err2 := errors.New("unknown report type 'profit_margins'")
	err2 = errors.WithHint(err2, "Use 'stonkie financials AAPL income_statement' to see a valid report")
	formatted2 := Format(err2, FormatterConfig{
		Verbose:       false,
		MaxLineLength: 80,
	})
	fmt.Fprintf(os.Stderr, "%s\n\n", formatted2)

	fmt.Fprintf(os.Stderr, "=== Example 3: Error with Multiple Hints ===\n")
	err3 := errors.New("failed to reach the analysis backend")
	err3 = errors.WithHint(err3, "Check that the backend is running")
	err3 = errors.WithHint(err3, "Verify BACKEND_URL points at the right host")
	err3 = errors.WithHint(err3, "Try 'curl http://localhost:8080/api/health'")
	formatted3 := Format(err3, FormatterConfig{
		Verbose:       false,
		MaxLineLength: 80,
	})
	fmt.Fprintf(os.Stderr, "%s\n\n", formatted3)

	fmt.Fprintf(os.Stderr, "=== Example 4: Long Error Chain (Collapsed) ===\n")
	err4 := errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")
	err4 = errors.Wrap(err4, "request failed")
	err4 = errors.Wrap(err4, "failed to analyze AAPL")
	err4 = errors.WithHint(err4, "Check that the backend is running")
	err4 = errors.WithHint(err4, "Set BACKEND_URL if the backend is not on localhost:8080")
	formatted4 := Format(err4, FormatterConfig{
		Verbose:       false,
		MaxLineLength: 80,
	})
	fmt.Fprintf(os.Stderr, "%s\n\n", formatted4)

	fmt.Fprintf(os.Stderr, "=== Example 5: Same Error Chain (Verbose) ===\n")
	formatted5 := Format(err4, FormatterConfig{
		Verbose:       true,
		MaxLineLength: 80,
	})
	fmt.Fprintf(os.Stderr, "%s\n\n", formatted5)

	fmt.Fprintf(os.Stderr, "=== Example 6: Builder Pattern ===\n")
	err6 := Build(errors.New("analysis request rejected")).
		WithHint("Check that the ticker symbol is valid").
		WithHintf("Is the backend running at %s?", "http://localhost:8080").
		WithExitCode(2).
		Err()
	formatted6 := Format(err6, FormatterConfig{
		Verbose:       false,
		MaxLineLength: 80,
	})
	fmt.Fprintf(os.Stderr, "%s\n\n", formatted6)

	fmt.Fprintf(os.Stderr, "=== Example 7: Very Long Error Message (Wrapped) ===\n")
	err7 := errors.New("failed to load the balance sheet for ticker AAPL because the backend returned a response whose data field was neither a string nor an object with a nested data string")
	formatted7 := Format(err7, FormatterConfig{
		Verbose:       false,
		MaxLineLength: 80,
	})
	fmt.Fprintf(os.Stderr, "%s\n\n", formatted7)
}
