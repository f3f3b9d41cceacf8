package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveUpdate("command", 10*time.Millisecond)
	m.ObserveUpdate("command", 20*time.Millisecond)
	m.ObserveUpdate("button", time.Millisecond)
	m.IncCommand("numbers")
	m.ObserveAssistantCall("tutor", "ok", time.Second)
	m.ObserveAssistantCall("tutor", "error", time.Second)
	m.IncError()
	m.SetUsers(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpdatesProcessed.WithLabelValues("command")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpdatesProcessed.WithLabelValues("button")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsProcessed.WithLabelValues("numbers")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AssistantCalls.WithLabelValues("tutor", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AssistantCalls.WithLabelValues("tutor", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.UsersTotal))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveUpdate("text", time.Millisecond)
		m.IncCommand("start")
		m.ObserveAssistantCall("ask", "ok", time.Millisecond)
		m.IncError()
		m.SetUsers(1)
	})
}
