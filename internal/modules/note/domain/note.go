package domain

import (
	"path/filepath"
	"time"

	"github.com/samber/lo"
)

// Note is a post rendered into a Markdown file ready to be written
type Note struct {
	PostID   int64
	Date     time.Time
	Folder   string
	FileName string
	Body     string
	Content  string
}

// RelativePath returns the note location relative to the output directory.
func (n *Note) RelativePath() string {
	return filepath.Join(n.Folder, n.FileName)
}

// Result is the outcome of writing one note
type Result struct {
	Index int
	Note  *Note
	Path  string
	Err   error
}

// OK reports whether the note was written.
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary aggregates the results of a batch
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Failures  []Result
}

// Summarize counts successes and collects failures.
func Summarize(results []Result) Summary {
	failures := lo.Filter(results, func(r Result, _ int) bool {
		return !r.OK()
	})

	return Summary{
		Total:     len(results),
		Succeeded: lo.CountBy(results, Result.OK),
		Failed:    len(failures),
		Failures:  failures,
	}
}
