package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/ruleslint/internal/ui/pretty"
	"github.com/yaklabco/ruleslint/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. Every result is printed, passing ones included.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	for i, file := range result.Files {
		if i > 0 {
			fmt.Fprintln(r.bw)
		}
		fmt.Fprint(r.bw, r.styles.FormatFileHeader(displayPath(file.Path, r.opts.WorkingDir)))
		for _, res := range file.Report.Results {
			fmt.Fprint(r.bw, r.styles.FormatResult(res))
		}
		fmt.Fprint(r.bw, r.styles.FormatVerdict(file.OK()))
	}

	if r.opts.ShowSummary {
		if len(result.Files) > 1 {
			fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
		} else {
			fmt.Fprintln(r.bw)
		}
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return result.Stats.FilesFailed, nil
}
