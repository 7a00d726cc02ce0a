// Package history appends raw die draws to a plain-text log file so past
// sessions can be audited or mined for streak complaints. Each line has
// the form:
//
//	2026-08-29 14:03|0.14.0|6:3,1,4,6
//
// that is: UTC timestamp, program version, die size, and every value drawn
// from dice of that size during the invocation.
package history

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// LogFileName is the default history file in the user's home directory.
const LogFileName = ".roll.history"

const timestampLayout = "2006-01-02 15:04"

// Log accumulates draws grouped by die size and appends them to a file.
type Log struct {
	path  string
	draws map[int][]int
}

// New returns a Log that will append to path.
func New(path string) *Log {
	return &Log{path: path, draws: make(map[int][]int)}
}

// Record merges a batch of draws into the log, keyed by die size.
func (l *Log) Record(draws map[int][]int) {
	for sides, values := range draws {
		l.draws[sides] = append(l.draws[sides], values...)
	}
}

// Write appends one line per die size and truncates nothing. Writing an
// empty log is a no-op.
func (l *Log) Write(version string) error {
	if len(l.draws) == 0 {
		return nil
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) // #nosec G304 -- controlled path
	if err != nil {
		return fmt.Errorf("open history %s: %w", l.path, err)
	}
	defer func() { _ = f.Close() }()

	timestamp := time.Now().UTC().Format(timestampLayout)

	sizes := make([]int, 0, len(l.draws))
	for sides := range l.draws {
		sizes = append(sizes, sides)
	}
	sort.Ints(sizes)

	for _, sides := range sizes {
		line := fmt.Sprintf("%s|%s|%d:%s\n", timestamp, version, sides, joinValues(l.draws[sides]))
		if _, err := f.WriteString(line); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
	}
	return nil
}

func joinValues(values []int) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	return b.String()
}
