package dto

import "time"

// Mail job kinds consumed by the async mail worker.
const (
	MailKindBookingConfirmation = "booking_confirmation"
	MailKindBookingCancelled    = "booking_cancelled"
	MailKindPaymentReceipt      = "payment_receipt"
)

type MailJobMessage struct {
	Kind      string    `json:"kind"`
	ToEmail   string    `json:"to_email"`
	TutorName string    `json:"tutor_name,omitempty"`
	StartTime time.Time `json:"start_time,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	OrderId   string    `json:"order_id,omitempty"`
}
