package prommetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/go-phone/phone"
)

var _ phone.Metrics = (*PromMetrics)(nil)

func TestPromMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm, err := New(reg, "vortex", "phone")
	require.NoError(t, err)

	pm.IncEdit(phone.ResultAccepted)
	pm.IncEdit(phone.ResultAccepted)
	pm.IncEdit(phone.ResultRejected)
	pm.IncHistory(phone.OpUndo, true)
	pm.IncHistory(phone.OpUndo, false)
	pm.IncHistory(phone.OpRedo, true)

	require.Equal(t, 2.0, testutil.ToFloat64(pm.edits.WithLabelValues("accepted")))
	require.Equal(t, 1.0, testutil.ToFloat64(pm.edits.WithLabelValues("rejected")))
	require.Equal(t, 1.0, testutil.ToFloat64(pm.history.WithLabelValues("undo", "true")))
	require.Equal(t, 1.0, testutil.ToFloat64(pm.history.WithLabelValues("undo", "false")))
	require.Equal(t, 1.0, testutil.ToFloat64(pm.history.WithLabelValues("redo", "true")))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(mfs))
	for _, mf := range mfs {
		names = append(names, mf.GetName())
	}
	require.ElementsMatch(t, []string{"vortex_phone_edits_total", "vortex_phone_history_ops_total"}, names)
}

func TestPromMetrics_WiredIntoField(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm, err := New(reg, "vortex", "phone")
	require.NoError(t, err)

	engine, err := phone.NewEngine(phone.DefaultConfig(), nil)
	require.NoError(t, err)
	f := phone.NewField(engine, "", phone.WithMetrics(pm))

	f.Handle(phone.Edit{Text: "1", Intent: phone.Insertion})
	f.Handle(phone.Edit{Text: "+1", Intent: phone.Insertion})
	f.Handle(phone.Edit{Text: "+1234567890123456", Intent: phone.Insertion})
	f.Undo()
	f.Undo()

	require.Equal(t, 1.0, testutil.ToFloat64(pm.edits.WithLabelValues("accepted")))
	require.Equal(t, 1.0, testutil.ToFloat64(pm.edits.WithLabelValues("unchanged")))
	require.Equal(t, 1.0, testutil.ToFloat64(pm.edits.WithLabelValues("rejected")))
	require.Equal(t, 1.0, testutil.ToFloat64(pm.history.WithLabelValues("undo", "true")))
	require.Equal(t, 1.0, testutil.ToFloat64(pm.history.WithLabelValues("undo", "false")))
}

func TestNew_NilRegistry(t *testing.T) {
	_, err := New(nil, "vortex", "phone")
	require.Error(t, err)
}

func TestNew_AlreadyRegisteredIsIgnored(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg, "vortex", "phone")
	require.NoError(t, err)
	_, err = New(reg, "vortex", "phone")
	require.NoError(t, err)
}
