// Command statusfeed publishes one seat-status change to the
// performance.status.changed queue.  Box office integrations and operators
// use it to push availability labels into the search snapshot:
//
//	statusfeed -performance 171201001001010900 -status ○
//	statusfeed -performance 171201001001010900 -clear
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/performance-search/internal/config"
	"github.com/iliyamo/performance-search/internal/queue"
	queue_publisher "github.com/iliyamo/performance-search/internal/service"
)

func main() {
	performance := flag.String("performance", "", "performance id")
	status := flag.String("status", "", "seat status label")
	remove := flag.Bool("clear", false, "remove the performance from the snapshot")
	flag.Parse()

	if *performance == "" || (*status == "" && !*remove) {
		flag.Usage()
		log.Fatal("statusfeed: -performance and one of -status or -clear are required")
	}
	if *remove {
		*status = ""
	}
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ev := queue.SeatStatusChangedEvent{PerformanceID: *performance, Status: *status}
	if err := queue_publisher.PublishSeatStatusChanged(ctx, config.AMQPURL(), ev); err != nil {
		log.Fatalf("statusfeed: %v", err)
	}
	log.Printf("published status %q for %s", *status, *performance)
}
