package service

import "github.com/bhanu75/Event-booking/internal/notify"

// Notifier is the enqueue side of the notification dispatcher. Enqueue must
// not block and must not fail: delivery is fire-and-forget.
type Notifier interface {
	Enqueue(job notify.Job)
}
