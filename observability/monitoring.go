// Package observability aggregates runtime counters for the debug surface.
package observability

import (
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ChatMetrics holds the router's live counters. All fields are atomic; the
// transport adapter and broadcast path update them concurrently.
type ChatMetrics struct {
	connectionsOpened atomic.Uint64
	connectionsClosed atomic.Uint64
	messagesHandled   atomic.Uint64
	handlerFailures   atomic.Uint64
	startedAt         time.Time
}

func NewChatMetrics() *ChatMetrics {
	return &ChatMetrics{startedAt: time.Now().UTC()}
}

func (m *ChatMetrics) ConnectionOpened() { m.connectionsOpened.Add(1) }
func (m *ChatMetrics) ConnectionClosed() { m.connectionsClosed.Add(1) }
func (m *ChatMetrics) MessageHandled()   { m.messagesHandled.Add(1) }
func (m *ChatMetrics) HandlerFailure()   { m.handlerFailures.Add(1) }

// Snapshot renders the counters plus process telemetry for the debug server.
// Process metrics are best-effort; a platform where gopsutil cannot read
// them just omits the entries.
func (m *ChatMetrics) Snapshot() map[string]any {
	stats := map[string]any{
		"connections_opened": m.connectionsOpened.Load(),
		"connections_closed": m.connectionsClosed.Load(),
		"connections_live":   m.connectionsOpened.Load() - m.connectionsClosed.Load(),
		"messages_handled":   m.messagesHandled.Load(),
		"handler_failures":   m.handlerFailures.Load(),
		"goroutines":         runtime.NumGoroutine(),
		"uptime":             time.Since(m.startedAt).Round(time.Second).String(),
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return stats
	}
	if mem, err := proc.MemoryInfo(); err == nil {
		stats["rss_mb"] = mem.RSS / 1024 / 1024
	}
	if cpu, err := proc.CPUPercent(); err == nil {
		stats["cpu_percent"] = cpu
	}
	return stats
}
