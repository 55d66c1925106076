package jobs

import (
	"context"
	"log"
	"time"

	"frontdesk/constants"

	"github.com/robfig/cron/v3"
)

// TimelineRefresher rebuilds the data snapshot behind the timeline.
type TimelineRefresher interface {
	Refresh(ctx context.Context) error
}

var timelineRefresher TimelineRefresher

// SetTimelineRefresher wires the refresher implementation used by the cron
// job.
func SetTimelineRefresher(r TimelineRefresher) {
	timelineRefresher = r
}

// InitCronJobs registers and starts the scheduled jobs.
func InitCronJobs(c *cron.Cron) error {
	_, err := c.AddFunc(constants.RefreshSpec, func() {
		if timelineRefresher == nil {
			log.Printf("timeline refresher not configured, skipping scheduled refresh")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := timelineRefresher.Refresh(ctx); err != nil {
			log.Printf("scheduled timeline refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
