package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"aice/feedback"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[FEEDBACK-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartFeedbackScheduler periodically logs feedback aggregates so operators
// can watch accuracy drift without hitting the portal. Returns the running
// cron so the caller can stop it on shutdown.
func StartFeedbackScheduler(loop *feedback.Loop, schedule string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		summary, err := loop.Aggregate()
		if err != nil {
			logScheduler("Error aggregating feedback: " + err.Error())
			return
		}
		log.Printf("[FEEDBACK-SCHEDULER %s] total=%d accuracy=%.2f today=%d",
			time.Now().Format(time.RFC3339), summary.Total, summary.Accuracy, summary.Today)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
