package relocate

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

const (
	// DefaultDiffMaxLines is the default maximum number of diff lines shown per file.
	DefaultDiffMaxLines = 40
	// diffLineCapFlagName is the CLI flag name used to raise per-file diff line caps.
	diffLineCapFlagName = "--diff-lines"
)

// DiffPreview is a unified diff of one planned rewrite.
type DiffPreview struct {
	Path        string
	UnifiedDiff string
	Truncated   bool
}

// Preview renders the change a Result would make as a unified diff of at most maxLines lines.
func Preview(res Result, maxLines int) DiffPreview {
	rendered, truncated := renderTruncatedUnifiedDiff(
		res.Path,
		res.Path+" (relocated)",
		string(res.Original.Bytes()),
		string(res.Rewritten.Bytes()),
		maxLines,
	)
	return DiffPreview{Path: res.Path, UnifiedDiff: rendered, Truncated: truncated}
}

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := lines[:limit]
	truncated = append(
		truncated,
		fmt.Sprintf("... (truncated to %d lines; rerun with %s <n> to see more)", limit, diffLineCapFlagName),
	)
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" {
		return ""
	}
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
