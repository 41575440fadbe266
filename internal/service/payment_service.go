package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"time"

	"tutorhive-be/internal/config"
	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/entity"
	"tutorhive-be/internal/repository/specification"
	"tutorhive-be/internal/repository/unitofwork"
	"tutorhive-be/pkg/events"
	pktNats "tutorhive-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IPaymentService interface {
	Checkout(ctx context.Context, studentId, bookingId uuid.UUID) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
	Get(ctx context.Context, userId, paymentId uuid.UUID) (*dto.PaymentResponse, error)
	Refund(ctx context.Context, userId, paymentId uuid.UUID, req *dto.RefundRequest) (*dto.PaymentResponse, error)
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	mailPublisher  IPublisherService
	midtransCfg    config.MidtransConfig
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, mailPublisher IPublisherService, midtransCfg config.MidtransConfig) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		mailPublisher:  mailPublisher,
		midtransCfg:    midtransCfg,
	}
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		Id:            p.Id,
		BookingId:     p.BookingId,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        string(p.Status),
		PlatformFee:   p.PlatformFee,
		TutorEarnings: p.TutorEarnings,
		CompletedAt:   p.CompletedAt,
		RefundAmount:  p.RefundAmount,
		RefundReason:  p.RefundReason,
		RefundedAt:    p.RefundedAt,
		CreatedAt:     p.CreatedAt,
	}
}

// Checkout creates a Snap transaction for the booking's pending payment
// and stores the token so the client can resume an unfinished checkout.
func (s *paymentService) Checkout(ctx context.Context, studentId, bookingId uuid.UUID) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	payment, err := uow.PaymentRepository().FindOne(ctx, specification.ByBooking{BookingId: bookingId})
	if err != nil || payment == nil {
		return nil, fmt.Errorf("%w: payment", ErrNotFound)
	}
	if payment.StudentId != studentId {
		return nil, fmt.Errorf("%w: payment belongs to another student", ErrForbidden)
	}
	if payment.Status != entity.PaymentStatusPending {
		return nil, fmt.Errorf("%w: payment is %s", ErrConflict, payment.Status)
	}

	if payment.SnapToken != nil && payment.ProviderOrderId != nil {
		return &dto.CheckoutResponse{
			PaymentId: payment.Id,
			OrderId:   *payment.ProviderOrderId,
			SnapToken: *payment.SnapToken,
		}, nil
	}

	student, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil || student == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	var sClient snap.Client
	env := midtrans.Sandbox
	if s.midtransCfg.Environment == "production" {
		env = midtrans.Production
	}
	sClient.New(s.midtransCfg.ServerKey, env)

	orderId := fmt.Sprintf("BOOKING-%s-%d", payment.BookingId.String()[:8], time.Now().Unix())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: int64(payment.Amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: student.FullName,
			Email: student.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    payment.BookingId.String(),
				Name:  "Tutoring session",
				Price: int64(payment.Amount),
				Qty:   1,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	payment.ProviderOrderId = &orderId
	payment.SnapToken = &snapResp.Token
	payment.UpdatedAt = time.Now()
	if err := uow.PaymentRepository().Update(ctx, payment); err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{
		PaymentId:   payment.Id,
		OrderId:     orderId,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

func (s *paymentService) verifySignature(req *dto.MidtransWebhookRequest) bool {
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + s.midtransCfg.ServerKey
	expected := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	return req.SignatureKey == expected
}

// HandleNotification processes a Midtrans HTTP notification. Settlement
// locks in the fee split and confirms the booking; repeated
// notifications for a settled payment are ignored.
func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	if !s.verifySignature(req) {
		return fmt.Errorf("%w: invalid webhook signature", ErrUnauthorized)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	payment, err := uow.PaymentRepository().FindOne(ctx, specification.ByProviderOrder{OrderId: req.OrderId})
	if err != nil || payment == nil {
		return fmt.Errorf("%w: payment for order %s", ErrNotFound, req.OrderId)
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		if req.TransactionStatus == "capture" && req.FraudStatus != "accept" {
			return nil
		}
		return s.markCompleted(ctx, uow, payment)
	case "deny", "cancel", "expire":
		if payment.Status != entity.PaymentStatusPending {
			return nil
		}
		return uow.PaymentRepository().MarkFailed(ctx, payment.Id)
	default:
		// "pending" and others carry no state change.
		return nil
	}
}

func (s *paymentService) markCompleted(ctx context.Context, uow unitofwork.UnitOfWork, payment *entity.Payment) error {
	if payment.Status == entity.PaymentStatusCompleted || payment.Status == entity.PaymentStatusRefunded {
		return nil
	}

	// The split is derived once from the gross amount and stored.
	platformFee, tutorEarnings := entity.FeeSplit(payment.Amount)
	now := time.Now()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.PaymentRepository().MarkCompleted(ctx, payment.Id, platformFee, tutorEarnings, now); err != nil {
		return err
	}
	if err := uow.BookingRepository().UpdatePaymentStatus(ctx, payment.BookingId, entity.PaymentStatePaid); err != nil {
		return err
	}

	booking, err := uow.BookingRepository().FindOne(ctx, specification.ByID{ID: payment.BookingId})
	if err != nil {
		return err
	}
	if booking != nil && booking.Status == entity.BookingStatusPending {
		if err := uow.BookingRepository().UpdateStatus(ctx, booking.Id, entity.BookingStatusConfirmed); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if s.mailPublisher != nil {
		if student, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payment.StudentId}); err == nil && student != nil {
			orderId := ""
			if payment.ProviderOrderId != nil {
				orderId = *payment.ProviderOrderId
			}
			_ = s.mailPublisher.PublishMailJob(&dto.MailJobMessage{
				Kind:     dto.MailKindPaymentReceipt,
				ToEmail:  student.Email,
				Amount:   payment.Amount,
				Currency: payment.Currency,
				OrderId:  orderId,
			})
		}
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.BaseEvent{
			Type: events.TypePaymentCompleted,
			Data: map[string]interface{}{
				"user_id":     payment.StudentId.String(),
				"entity_type": "payment",
				"entity_id":   payment.Id.String(),
				"amount":      payment.Amount,
				"currency":    payment.Currency,
			},
			OccurredAt: time.Now(),
		})
	}
	return nil
}

func (s *paymentService) Get(ctx context.Context, userId, paymentId uuid.UUID) (*dto.PaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	payment, err := uow.PaymentRepository().FindOne(ctx, specification.ByID{ID: paymentId})
	if err != nil || payment == nil {
		return nil, fmt.Errorf("%w: payment", ErrNotFound)
	}
	if payment.StudentId != userId && payment.TutorId != userId {
		return nil, fmt.Errorf("%w: not a participant of this payment", ErrForbidden)
	}

	resp := toPaymentResponse(payment)
	return &resp, nil
}

// Refund marks a completed payment refunded. The recorded fee split is
// left untouched; earnings reporting is historical, not reversed.
func (s *paymentService) Refund(ctx context.Context, userId, paymentId uuid.UUID, req *dto.RefundRequest) (*dto.PaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	payment, err := uow.PaymentRepository().FindOne(ctx, specification.ByID{ID: paymentId})
	if err != nil || payment == nil {
		return nil, fmt.Errorf("%w: payment", ErrNotFound)
	}
	if payment.StudentId != userId {
		return nil, fmt.Errorf("%w: only the paying student can request a refund", ErrForbidden)
	}
	if payment.Status == entity.PaymentStatusRefunded {
		return nil, fmt.Errorf("%w: payment already refunded", ErrConflict)
	}
	if payment.Status != entity.PaymentStatusCompleted {
		return nil, fmt.Errorf("%w: only completed payments can be refunded", ErrConflict)
	}

	now := time.Now()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PaymentRepository().MarkRefunded(ctx, payment.Id, payment.Amount, req.Reason, now); err != nil {
		return nil, err
	}
	if err := uow.BookingRepository().UpdatePaymentStatus(ctx, payment.BookingId, entity.PaymentStateRefunded); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	payment.Status = entity.PaymentStatusRefunded
	payment.RefundAmount = &payment.Amount
	reason := req.Reason
	payment.RefundReason = &reason
	payment.RefundedAt = &now

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, events.BaseEvent{
			Type: events.TypePaymentRefunded,
			Data: map[string]interface{}{
				"user_id":     payment.StudentId.String(),
				"entity_type": "payment",
				"entity_id":   payment.Id.String(),
				"amount":      payment.Amount,
				"currency":    payment.Currency,
			},
			OccurredAt: time.Now(),
		})
	}

	resp := toPaymentResponse(payment)
	return &resp, nil
}
