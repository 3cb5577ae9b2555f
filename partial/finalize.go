package partial

import "github.com/randalmurphal/dumpkit/truncate"

// finalize turns raw rendered text into the final one-line form: comments
// and indentation stripped, line breaks collapsed, and, at the outermost
// pass only, the total length budget enforced with a trailing ellipsis.
// Nested passes splice their text into a parent's output and must not cap
// it; the parent caps once at the end.
func (e *engine) finalize(raw string) string {
	out := truncate.SingleLine(raw)
	if e.inner || e.opts.MaxTotalLen == NoLimit {
		return out
	}
	return truncate.Cap(out, e.opts.MaxTotalLen)
}
