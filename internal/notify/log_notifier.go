package notify

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// LogDispatcher is the dev stand-in for both channels.
type LogDispatcher struct{}

func NewLogDispatcher() *LogDispatcher { return &LogDispatcher{} }

func (n *LogDispatcher) SendSMS(ctx context.Context, msg SMSMessage) error {
	if err := simulateProvider(ctx); err != nil {
		return err
	}

	log.Printf("notification.sms to=%s body=%q", msg.To, msg.Body)
	return nil
}

func (n *LogDispatcher) SendEmail(ctx context.Context, msg EmailMessage) error {
	if err := simulateProvider(ctx); err != nil {
		return err
	}

	log.Printf("notification.email to=%s subject=%q bytes=%d", msg.To, msg.Subject, len(msg.HTML))
	return nil
}

func simulateProvider(ctx context.Context) error {
	// Optional: simulate slow provider
	if msStr := os.Getenv("NOTIFIER_SLEEP_MS"); msStr != "" {
		ms, _ := strconv.Atoi(msStr)
		if ms > 0 {
			select {
			case <-time.After(time.Duration(ms) * time.Millisecond):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	// Optional: simulate provider outage
	if os.Getenv("NOTIFIER_FAIL") == "1" {
		return fmt.Errorf("provider down (simulated)")
	}

	return nil
}
