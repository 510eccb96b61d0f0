package render

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/hugeless/internal/textutil"
)

// formatStatusLine builds the bottom-line summary shown when no prompt is
// active: byte position, percentage through the file, an (END) marker at
// EOF, the active pattern if any, and the [i][r][n][w] option-indicator badge
// so a user who toggled a search option away from its default can see it
// without opening a search prompt. The result is truncated to width so a
// long pattern never wraps the status line onto a second row.
func formatStatusLine(vs *ViewState, width int) string {
	var parts []string

	if vs.errorText != "" {
		parts = append(parts, textutil.SanitizeTerminalText(vs.errorText))
	} else {
		parts = append(parts, formatPosition(vs))
	}

	if badge := formatOptionBadge(vs); badge != "" {
		parts = append(parts, badge)
	}

	if vs.pattern != "" {
		parts = append(parts, fmt.Sprintf("pattern: %s", textutil.SanitizeTerminalText(vs.pattern)))
	}

	if vs.statusText != "" {
		parts = append(parts, vs.statusText)
	}

	return textutil.Truncate(strings.Join(parts, "  "), width)
}

func formatPosition(vs *ViewState) string {
	if vs.fileSize == 0 {
		return "(empty file) (100%)"
	}
	pct := formatPercent(vs.topByte, vs.fileSize)
	if vs.viewport.AtEOF {
		return fmt.Sprintf("byte %d/%d (END) %s", vs.topByte, vs.fileSize, pct)
	}
	return fmt.Sprintf("byte %d/%d %s", vs.topByte, vs.fileSize, pct)
}

func formatPercent(pos, size int64) string {
	if size <= 0 {
		return "(0%)"
	}
	pct := int(float64(pos) / float64(size) * 100)
	if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf("(%d%%)", pct)
}

// formatOptionBadge shows which interactive options are non-default, using
// less(1)-style single-letter toggles: -i case-sensitivity, -r regex,
// -n invert match, -w whole-word. Smart-case's derived sensitivity is not
// shown here since it is not something the user explicitly set.
func formatOptionBadge(vs *ViewState) string {
	var b strings.Builder
	if !vs.options.SmartCase && vs.options.CaseSensitive {
		b.WriteString("[i]")
	}
	if vs.options.Regex {
		b.WriteString("[r]")
	}
	if vs.options.Invert {
		b.WriteString("[n]")
	}
	if vs.options.WholeWord {
		b.WriteString("[w]")
	}
	return b.String()
}
