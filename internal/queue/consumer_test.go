package queue

import (
    "context"
    "errors"
    "testing"
    "time"
)

type memWriter struct {
    statuses map[string]string
    err      error
}

func (m *memWriter) Set(_ context.Context, id, status string) error {
    if m.err != nil {
        return m.err
    }
    if m.statuses == nil {
        m.statuses = map[string]string{}
    }
    if status == "" {
        delete(m.statuses, id)
        return nil
    }
    m.statuses[id] = status
    return nil
}

func TestHandleMessage(t *testing.T) {
    w := &memWriter{}
    ctx := context.Background()

    if err := HandleMessage(ctx, w, []byte(`{"performance_id":"p1","status":"○","changed_at":"2024-06-01T10:00:00Z"}`)); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if w.statuses["p1"] != "○" {
        t.Fatalf("expected status to be written, got %v", w.statuses)
    }

    if err := HandleMessage(ctx, w, []byte(`{"performance_id":"p1","status":""}`)); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if _, ok := w.statuses["p1"]; ok {
        t.Fatalf("expected status to be cleared")
    }
}

func TestHandleMessage_Rejects(t *testing.T) {
    ctx := context.Background()

    if err := HandleMessage(ctx, &memWriter{}, []byte(`not json`)); err == nil {
        t.Fatalf("expected unmarshal error")
    }
    if err := HandleMessage(ctx, &memWriter{}, []byte(`{"status":"○"}`)); !errors.Is(err, errMissingPerformance) {
        t.Fatalf("expected errMissingPerformance, got %v", err)
    }

    boom := errors.New("redis down")
    if err := HandleMessage(ctx, &memWriter{err: boom}, []byte(`{"performance_id":"p1","status":"○"}`)); !errors.Is(err, boom) {
        t.Fatalf("expected wrapped writer error, got %v", err)
    }
}

func TestSleep_Cancelled(t *testing.T) {
    ctx, cancel := context.WithCancel(context.Background())
    cancel()
    if sleep(ctx, time.Hour) {
        t.Fatalf("sleep must return false once ctx is cancelled")
    }
}
