package qb

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Log is the record callers emit after rendering a query. The builder itself
// never logs.
type Log struct {
	Type     string `json:"type"`
	Table    string `json:"table,omitempty"`
	Query    string `json:"query"`
	Duration int64  `json:"duration"`
	Error    string `json:"error,omitempty"`
}

var whitespace = regexp.MustCompile(`\s+`)

func (l *Log) PrettyPrint(writer io.Writer) {
	status := "\u001B[38;5;24mFQL\u001B[0m"
	if l.Error != "" {
		status = "\u001B[38;5;160mERR\u001B[0m"
	}

	fmt.Fprintf(writer, "\u001B[38;5;8m%-32s\u001B[0m %-6s %8d\u001B[38;5;8mµs\u001B[0m %s\n",
		l.Type, status, l.Duration, clean(l.Query, l.Error))
}

func clean(query, errMsg string) string {
	if errMsg != "" {
		return errMsg
	}

	return strings.TrimSpace(whitespace.ReplaceAllString(query, " "))
}
