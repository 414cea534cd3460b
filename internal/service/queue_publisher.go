// Package queue_publisher provides functions to publish domain events to RabbitMQ.
// Errors are logged and returned so callers decide whether a failed publish
// matters to them.
package queue_publisher

import (
    "context"
    "encoding/json"
    "log"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    q "github.com/iliyamo/performance-search/internal/queue"
)

// PublishSeatStatusChanged publishes a SeatStatusChangedEvent to the
// "performance.status.changed" queue.  ChangedAt is filled in when empty.
// Messages are marked as persistent.
func PublishSeatStatusChanged(ctx context.Context, url string, event q.SeatStatusChangedEvent) error {
    conn, err := amqp.Dial(url)
    if err != nil {
        log.Printf("rabbitmq: dial failed: %v", err)
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        log.Printf("rabbitmq: channel open failed: %v", err)
        return err
    }
    defer func() { _ = ch.Close() }()

    // Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(
        q.SeatStatusQueue, // name
        true,              // durable
        false,             // autoDelete
        false,             // exclusive
        false,             // noWait
        nil,               // args
    ); err != nil {
        log.Printf("rabbitmq: queue declare failed: %v", err)
        return err
    }

    pub, err := newStatusPublishing(event, time.Now().UTC())
    if err != nil {
        log.Printf("rabbitmq: marshal event failed: %v", err)
        return err
    }

    if err := ch.PublishWithContext(ctx,
        "",                // default exchange
        q.SeatStatusQueue, // routing key = queue name
        false,             // mandatory
        false,             // immediate
        pub,
    ); err != nil {
        log.Printf("rabbitmq: publish failed: %v", err)
        return err
    }
    return nil
}

func newStatusPublishing(event q.SeatStatusChangedEvent, now time.Time) (amqp.Publishing, error) {
    if event.ChangedAt == "" {
        event.ChangedAt = now.Format(time.RFC3339)
    }
    body, err := json.Marshal(event)
    if err != nil {
        return amqp.Publishing{}, err
    }
    return amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent, // store on disk
        Timestamp:    now,
        Body:         body,
    }, nil
}
