package phone

// Edit results reported to Metrics.
const (
	ResultAccepted  = "accepted"
	ResultRejected  = "rejected"
	ResultUnchanged = "unchanged"
)

// History operations reported to Metrics.
const (
	OpUndo = "undo"
	OpRedo = "redo"
)

// Metrics collects field statistics. See phone/prommetrics for a
// Prometheus implementation.
type Metrics interface {
	IncEdit(result string)
	IncHistory(op string, moved bool)
}

type nopMetrics struct{}

func (nopMetrics) IncEdit(string)          {}
func (nopMetrics) IncHistory(string, bool) {}
