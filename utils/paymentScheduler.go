package utils

import (
	"log"

	paymentService "edumart/services/payment"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializePaymentScheduler sets up the stale-payment expiry scheduler.
// Pending payments older than ttlDays are failed so a late gateway webhook
// cannot settle a purchase the student abandoned.
func InitializePaymentScheduler(engine *paymentService.Engine, ttlDays int) *cron.Cron {
	log.Println("[PAYMENT-SCHEDULER] Initializing stale payment scheduler...")

	c := cron.New()

	// Run daily at 2 AM
	c.AddFunc("0 2 * * *", func() {
		ExpireStalePayments(engine, ttlDays)
	})

	c.Start()
	log.Println("[PAYMENT-SCHEDULER] Stale payment scheduler started - runs daily at 2 AM")
	return c
}

// ExpireStalePayments fails pending payments created before the TTL window,
// measured from the start of today.
func ExpireStalePayments(engine *paymentService.Engine, ttlDays int) {
	cutoff := now.BeginningOfDay().AddDate(0, 0, -ttlDays)

	expired, err := engine.ExpireStalePending(cutoff)
	if err != nil {
		log.Printf("[PAYMENT-SCHEDULER] Failed to expire stale payments: %v", err)
		return
	}
	if expired > 0 {
		log.Printf("[PAYMENT-SCHEDULER] Expired %d stale pending payment(s)", expired)
	}
}
