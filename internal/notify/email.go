package notify

import "log"

// EmailSink simulates outbound email by writing formatted messages to the log.
type EmailSink struct{}

func NewEmailSink() *EmailSink {
	return &EmailSink{}
}

func (s *EmailSink) Deliver(job Job) error {
	switch job.Kind {
	case KindBookingConfirmation:
		log.Printf("[Email] To: %s <%s> | Booking confirmed: %d ticket(s) for %q on %s",
			job.UserName, job.UserEmail, job.TicketCount, job.EventTitle,
			job.EventDate.Format("2006-01-02 15:04 MST"))
	case KindEventUpdate:
		log.Printf("[Email] Event %q updated | notifying %d customer(s) | changes: %s",
			job.EventTitle, job.AffectedUsers, job.Changes)
	default:
		log.Printf("[Email] unknown job kind %q, ignoring", job.Kind)
	}
	return nil
}
