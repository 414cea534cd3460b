// Package queue contains the background consumer that listens to the
// performance.status.changed queue and applies each change to the
// seat-status snapshot.
package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// StatusWriter stores the seat status of a performance.
type StatusWriter interface {
    Set(ctx context.Context, performanceID, status string) error
}

var errMissingPerformance = errors.New("event has no performance_id")

// StartSeatStatusConsumer connects to RabbitMQ, declares the
// performance.status.changed queue (durable) and applies every message to w.
// It runs a reconnect loop with exponential backoff and only returns when
// ctx is cancelled.  Malformed messages are logged and rejected without
// requeue so the loop keeps going.
func StartSeatStatusConsumer(ctx context.Context, url string, w StatusWriter) error {
    backoff := time.Second
    for {
        if err := ctx.Err(); err != nil {
            return err
        }
        conn, err := amqp.Dial(url)
        if err != nil {
            log.Printf("status-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        err = consumeLoop(ctx, conn, w)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        log.Printf("status-consumer: consume loop ended: %v; reconnecting", err)
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, w StatusWriter) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Printf("status-consumer: set QoS failed: %v", err)
    }

    if _, err := ch.QueueDeclare(SeatStatusQueue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }

    msgs, err := ch.Consume(SeatStatusQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok := <-msgs:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            if err := HandleMessage(ctx, w, d.Body); err != nil {
                log.Printf("status-consumer: handle message failed: %v", err)
                _ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
                continue
            }
            _ = d.Ack(false)
        }
    }
}

// HandleMessage decodes one SeatStatusChangedEvent and writes it to w.
func HandleMessage(ctx context.Context, w StatusWriter, body []byte) error {
    var ev SeatStatusChangedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if ev.PerformanceID == "" {
        return errMissingPerformance
    }
    if err := w.Set(ctx, ev.PerformanceID, ev.Status); err != nil {
        return fmt.Errorf("write status %s: %w", ev.PerformanceID, err)
    }
    return nil
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}
