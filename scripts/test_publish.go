//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type VenueSearchEvent struct {
	ID         uuid.UUID `json:"id"`
	VenueID    int64     `json:"venue_id"`
	Activity   string    `json:"activity"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

const stream = "stream:venue:search-appear"

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	venueID := flag.Int64("venue", 1, "Venue ID for the test event")
	activity := flag.String("activity", "trivia", "Activity for the test event")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие
	event := VenueSearchEvent{
		ID:         uuid.New(),
		VenueID:    *venueID,
		Activity:   *activity,
		Kind:       "search-appear",
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: %s\n", stream)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Event ID: %s\n", event.ID)
	fmt.Printf("   Venue ID: %d, Activity: %s\n", event.VenueID, event.Activity)

	// Ожидание обработки воркером: событие исчезает из pending после ACK
	fmt.Printf("\n⏳ Waiting for the analytics worker to process the event...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout: event was not acknowledged (is cmd/worker running?)")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, stream).Result()
			if err != nil {
				continue
			}
			for _, g := range groups {
				if g.LastDeliveredID >= result && g.Pending == 0 {
					fmt.Printf("\n✅ Event consumed and acknowledged by group %q\n", g.Name)
					return
				}
			}
		}
	}
}
