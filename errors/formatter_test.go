package errors

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestDefaultFormatterConfig(t *testing.T) {
	config := DefaultFormatterConfig()

	assert.False(t, config.Verbose)
	assert.Equal(t, "auto", config.Color)
	assert.Equal(t, DefaultMaxLineLength, config.MaxLineLength)
}

func TestFormat_NilError(t *testing.T) {
	result := Format(nil, DefaultFormatterConfig())

	assert.Empty(t, result)
}

func TestFormat_SimpleError(t *testing.T) {
	err := errors.New("test error")

	result := Format(err, DefaultFormatterConfig())

	assert.Contains(t, result, "test error")
	assert.NotContains(t, result, "💡") // No hints.
}

func TestFormat_ErrorWithHint(t *testing.T) {
	err := errors.WithHint(
		errors.New("test error"),
		"Try running --help",
	)

	result := Format(err, DefaultFormatterConfig())

	assert.Contains(t, result, "test error")
	assert.Contains(t, result, "💡")
	assert.Contains(t, result, "Try running --help")
}

func TestFormat_ErrorWithMultipleHints(t *testing.T) {
	err := errors.WithHint(
		errors.WithHint(
			errors.New("test error"),
			"First hint",
		),
		"Second hint",
	)

	result := Format(err, DefaultFormatterConfig())

	assert.Contains(t, result, "First hint")
	assert.Contains(t, result, "Second hint")
	assert.Equal(t, 2, strings.Count(result, "💡"))
}

func TestFormat_WithBuilder(t *testing.T) {
	err := Build(errors.New("backend request failed")).
		WithHint("Check that the backend is running").
		WithHintf("Try setting BACKEND_URL to %s", "http://localhost:8080").
		Err()

	result := Format(err, DefaultFormatterConfig())

	assert.Contains(t, result, "backend request failed")
	assert.Contains(t, result, "Check that the backend is running")
	assert.Contains(t, result, "Try setting BACKEND_URL to http://localhost:8080")
	assert.Equal(t, 2, strings.Count(result, "💡"))
}

func TestFormat_LongMessageWraps(t *testing.T) {
	longMsg := "This is a very long error message that exceeds the maximum line length and should be wrapped to multiple lines for better readability in the terminal output"
	err := errors.New(longMsg)

	config := DefaultFormatterConfig()
	config.Color = "never"

	result := Format(err, config)

	lines := strings.Split(result, "\n")
	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), config.MaxLineLength)
	}
}

func TestFormat_VerboseIncludesChain(t *testing.T) {
	err := errors.Wrap(errors.New("inner failure"), "outer operation")

	config := DefaultFormatterConfig()
	config.Verbose = true
	config.Color = "never"

	result := Format(err, config)

	assert.Contains(t, result, "outer operation")
	assert.Contains(t, result, "inner failure")
	// The verbose chain carries more detail than the bare message.
	assert.Greater(t, len(result), len(err.Error()))
}

func TestShouldUseColor(t *testing.T) {
	assert.True(t, shouldUseColor("always"))
	assert.False(t, shouldUseColor("never"))

	// Auto depends on whether stderr is a TTY; just verify it answers.
	result := shouldUseColor("auto")
	assert.IsType(t, false, result)
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected int // Minimum number of lines expected.
	}{
		{
			name:     "short text",
			text:     "hello world",
			width:    80,
			expected: 1,
		},
		{
			name:     "long text wraps",
			text:     "This is a very long sentence that should wrap to multiple lines when the width is set to a small value",
			width:    40,
			expected: 3,
		},
		{
			name:     "single long word stays on one line",
			text:     "supercalifragilisticexpialidocious",
			width:    10,
			expected: 1,
		},
		{
			name:     "zero width uses default",
			text:     "hello world",
			width:    0,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := wrapText(tt.text, tt.width)
			lines := strings.Split(result, "\n")

			assert.GreaterOrEqual(t, len(lines), tt.expected)
		})
	}
}
