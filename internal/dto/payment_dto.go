package dto

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutResponse struct {
	PaymentId   uuid.UUID `json:"payment_id"`
	OrderId     string    `json:"order_id"`
	SnapToken   string    `json:"snap_token"`
	RedirectURL string    `json:"redirect_url,omitempty"`
}

type PaymentResponse struct {
	Id            uuid.UUID  `json:"id"`
	BookingId     uuid.UUID  `json:"booking_id"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	PlatformFee   float64    `json:"platform_fee"`
	TutorEarnings float64    `json:"tutor_earnings"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	RefundAmount  *float64   `json:"refund_amount,omitempty"`
	RefundReason  *string    `json:"refund_reason,omitempty"`
	RefundedAt    *time.Time `json:"refunded_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type RefundRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// MidtransWebhookRequest mirrors the fields of a Midtrans HTTP
// notification that the webhook handler verifies and acts on.
type MidtransWebhookRequest struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
}
