package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts work done on the event loop.
type Metrics struct {
	taskCount    atomic.Uint64
	taskTotalNs  atomic.Int64
	taskMaxNs    atomic.Int64
	taskCanceled atomic.Uint64
	taskPanics   atomic.Uint64

	snapshots atomic.Uint64
	keys      atomic.Uint64
	pointers  atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordTask records how long one event loop task ran.
func (m *Metrics) RecordTask(d time.Duration) {
	ns := d.Nanoseconds()
	m.taskCount.Add(1)
	m.taskTotalNs.Add(ns)
	for {
		old := m.taskMaxNs.Load()
		if ns <= old || m.taskMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordCanceled records a task abandoned before it ran.
func (m *Metrics) RecordCanceled() { m.taskCanceled.Add(1) }

// RecordPanic records a task that panicked.
func (m *Metrics) RecordPanic() { m.taskPanics.Add(1) }

// RecordSnapshot records a history entry.
func (m *Metrics) RecordSnapshot() { m.snapshots.Add(1) }

// RecordKey records a key event, handled or not.
func (m *Metrics) RecordKey() { m.keys.Add(1) }

// RecordPointer records a pointer event.
func (m *Metrics) RecordPointer() { m.pointers.Add(1) }

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Uptime        time.Duration `json:"uptime"`
	Tasks         uint64        `json:"tasks"`
	TaskAvg       time.Duration `json:"taskAvg"`
	TaskMax       time.Duration `json:"taskMax"`
	TasksCanceled uint64        `json:"tasksCanceled"`
	TaskPanics    uint64        `json:"taskPanics"`
	Snapshots     uint64        `json:"snapshots"`
	KeyEvents     uint64        `json:"keyEvents"`
	PointerEvents uint64        `json:"pointerEvents"`
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Uptime:        time.Since(m.startTime),
		Tasks:         m.taskCount.Load(),
		TaskMax:       time.Duration(m.taskMaxNs.Load()),
		TasksCanceled: m.taskCanceled.Load(),
		TaskPanics:    m.taskPanics.Load(),
		Snapshots:     m.snapshots.Load(),
		KeyEvents:     m.keys.Load(),
		PointerEvents: m.pointers.Load(),
	}
	if s.Tasks > 0 {
		s.TaskAvg = time.Duration(m.taskTotalNs.Load() / int64(s.Tasks))
	}
	return s
}
