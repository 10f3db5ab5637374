package document

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/tonal/internal/theme"
	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

// Finding is one problem reported while linting a document.
type Finding struct {
	Channel string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Channel, f.Message)
}

// Report collects lint findings in the order they were produced.
type Report struct {
	Findings []Finding
}

// OK reports whether the document produced no findings.
func (r Report) OK() bool { return len(r.Findings) == 0 }

// Lint validates the color schema and then resolves every value outside the
// "color" section, collecting the warnings and errors the resolver reports.
func Lint(doc theme.Document) Report {
	var report Report

	if err := Validate(doc); err != nil {
		var issues tonalerrors.ValidationErrors
		if errors.As(err, &issues) {
			for _, issue := range issues {
				report.Findings = append(report.Findings, Finding{Channel: "schema", Message: fmt.Sprintf("%s: %s", issue.Field, issue.Message)})
			}
		}
	}

	var mu sync.Mutex
	collect := func(channel string) theme.Sink {
		return func(args ...any) {
			parts := make([]string, 0, len(args))
			for _, arg := range args {
				parts = append(parts, fmt.Sprint(arg))
			}
			mu.Lock()
			defer mu.Unlock()
			report.Findings = append(report.Findings, Finding{Channel: channel, Message: strings.Join(parts, " ")})
		}
	}

	r, err := theme.New(doc,
		theme.WithMode(theme.ModeProduction),
		theme.WithConsole(nil),
		theme.WithSinks(theme.Sinks{Warning: collect("warning"), Error: collect("error")}),
	)
	if err != nil {
		// Production mode never raises; keep the report usable regardless.
		report.Findings = append(report.Findings, Finding{Channel: "error", Message: err.Error()})
		return report
	}

	body := doc.Values()
	delete(body, theme.ColorKey)
	_, _ = r.ResolveStyle(theme.Style(body))

	return report
}
