package utils

import (
	"bytes"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/arsham/figurine/figurine"
)

// HighlightCode returns a syntax highlighted code for the specified language
func HighlightCode(code string, language string, syntaxTheme string) (string, error) {
	buf := new(bytes.Buffer)
	if err := quick.Highlight(buf, code, language, "terminal256", syntaxTheme); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// PrintDecoratedText writes text to w as an ASCII-art banner
func PrintDecoratedText(w io.Writer, text string) error {
	return figurine.Write(w, text, "ANSI Regular.flf")
}
