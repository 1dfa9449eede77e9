package jobs

import (
	"log"
	"time"

	"hms/utils"

	"github.com/robfig/cron/v3"
)

// BookingCompleter checks out every stay whose check-out date has passed.
type BookingCompleter interface {
	AutoCheckOutOverdue(today time.Time) (int, error)
}

var bookingCompleter BookingCompleter

// SetBookingCompleter sets the implementation used by the nightly job.
func SetBookingCompleter(completer BookingCompleter) {
	bookingCompleter = completer
}

// InitCronJobs registers the scheduled jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron) error {
	// Runs at midnight every day.
	_, err := c.AddFunc("0 0 * * *", func() {
		if bookingCompleter == nil {
			utils.LogError("BookingCompleter is not set, skipping auto check-out")
			return
		}

		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		count, err := bookingCompleter.AutoCheckOutOverdue(today)
		if err != nil {
			utils.LogError("Auto check-out failed: %v", err)
			return
		}
		utils.LogInfo("Auto check-out completed, %d bookings checked out", count)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
