package app

import (
	"regexp"
	"strings"
)

// Batched upserts can run to kilobytes; spans only need the statement shape.
const maxTracedStatementLen = 512

var whitespaceRun = regexp.MustCompile(`\s+`)

// formatDBQueryForTrace collapses whitespace and truncates long statements
// before otelsql attaches them to spans.
func formatDBQueryForTrace(statement string) string {
	statement = whitespaceRun.ReplaceAllString(strings.TrimSpace(statement), " ")
	if len(statement) > maxTracedStatementLen {
		return statement[:maxTracedStatementLen] + "..."
	}
	return statement
}
