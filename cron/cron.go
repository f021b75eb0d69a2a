package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gitmusaddique/FitnessTracker-sub000/storage"
	"github.com/gitmusaddique/FitnessTracker-sub000/utils"
)

// StartReminderJob schedules an hourly pass that emails users about
// confirmed bookings starting within the next 24 hours. Failures are
// logged and never fatal.
func StartReminderJob(store storage.Storage, mailer *utils.Mailer) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("0 * * * *", func() {
		sendBookingReminders(store, mailer)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
	return c
}

func sendBookingReminders(store storage.Storage, mailer *utils.Mailer) {
	now := time.Now()
	bookings, err := store.ListConfirmedBookingsBetween(now, now.Add(24*time.Hour))
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		user, err := store.GetUser(booking.UserID)
		if err != nil {
			log.Printf("Skipping reminder for booking %s: %v", booking.ID, err)
			continue
		}
		trainer, err := store.GetTrainer(booking.TrainerID)
		if err != nil {
			log.Printf("Skipping reminder for booking %s: %v", booking.ID, err)
			continue
		}

		subject := fmt.Sprintf("Reminder: Upcoming Session with %s", trainer.Name)
		body := fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>This is a reminder for your upcoming training session.</p>
			<ul>
				<li><strong>Trainer:</strong> %s</li>
				<li><strong>When:</strong> %s</li>
				<li><strong>Location:</strong> %s</li>
			</ul>
			<p>If you need to cancel, please do so from the app.</p>
		`, user.Name, trainer.Name, booking.Date.Format("2006-01-02 15:04"), trainer.Location)

		if err := mailer.Send(user.Email, subject, body); err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %s to %s", booking.ID, user.Email)
	}
}
