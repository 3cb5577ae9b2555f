package partial

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DiagnosticOutput receives the rendered text written by Print. Defaults to
// os.Stderr; tests and embedders may replace it.
var DiagnosticOutput io.Writer = os.Stderr

// Printer renders values with a fixed configuration.
type Printer struct {
	opts Options
}

// New creates a Printer. Zero-value fields in opts take their defaults.
func New(opts Options) *Printer {
	return &Printer{opts: opts.normalized()}
}

// Render produces the bounded one-line dump of the given values. Multiple
// values render comma-separated and share a single total-length budget.
func (p *Printer) Render(values ...any) string {
	eng := newEngine(p.opts)
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = eng.render(v)
	}
	return eng.finalize(strings.Join(parts, ", "))
}

// Dump renders one or more values with default options. When more than one
// argument is given, the final argument must be an Options or *Options
// carrying the configuration; a trailing non-Options argument alongside
// multiple values is a usage error and returns ErrUsage with no output.
func Dump(args ...any) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return New(DefaultOptions()).Render(args[0]), nil
	}

	opts, ok := trailingOptions(args[len(args)-1])
	if !ok {
		return "", fmt.Errorf("%w: final argument is %T", ErrUsage, args[len(args)-1])
	}
	return New(opts).Render(args[:len(args)-1]...), nil
}

// Print renders like Dump and also writes the result to DiagnosticOutput,
// followed by a newline. A logging convenience for callers that want the
// side effect regardless of the return value.
func Print(args ...any) (string, error) {
	out, err := Dump(args...)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(DiagnosticOutput, out)
	return out, nil
}

func trailingOptions(v any) (Options, bool) {
	switch o := v.(type) {
	case Options:
		return o, true
	case *Options:
		if o == nil {
			return DefaultOptions(), true
		}
		return *o, true
	default:
		return Options{}, false
	}
}
