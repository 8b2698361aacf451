package goof

import (
	"fmt"
	"strconv"
	"strings"
)

// formatCodeFrame quotes lineText with a caret under pos.Column. Columns are
// byte based, matching the scanner.
func formatCodeFrame(lineText string, pos Position) string {
	if pos.Line <= 0 {
		return ""
	}

	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if column > len(lineText)+1 {
		column = len(lineText) + 1
	}

	lineLabel := strconv.Itoa(pos.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := caretPadding(lineText[:column-1])

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		pos.Line,
		column,
		lineLabel,
		lineText,
		gutterPad,
		caretPad,
	)
}

// caretPadding keeps tabs so the caret lines up with the quoted text.
func caretPadding(prefix string) string {
	var b strings.Builder
	for i := 0; i < len(prefix); i++ {
		if prefix[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
