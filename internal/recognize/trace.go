package recognize

import "fmt"

// Step is one recorded stage message of a decode call.
type Step struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Trace is an explicit diagnostics sink for a single decode call. Callers
// that want insight into why a raster decoded to a value pass one in;
// passing nil disables collection. A Trace is not safe for concurrent use,
// matching the one-call-one-trace lifecycle.
type Trace struct {
	Steps []Step
}

// Addf appends a formatted step message. Safe to call on a nil Trace.
func (t *Trace) Addf(stage, format string, args ...any) {
	if t == nil {
		return
	}
	t.Steps = append(t.Steps, Step{Stage: stage, Message: fmt.Sprintf(format, args...)})
}
