// Package queue defines message payloads exchanged over the message broker.
package queue

// SeatStatusQueue is the durable queue carrying seat-status changes.
const SeatStatusQueue = "performance.status.changed"

// SeatStatusChangedEvent is published by the box office whenever the seat
// availability label of a performance changes.  An empty Status clears the
// performance from the snapshot.
type SeatStatusChangedEvent struct {
    PerformanceID string `json:"performance_id"`
    Status        string `json:"status"`
    ChangedAt     string `json:"changed_at"`
}
