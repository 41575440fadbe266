package service

import (
	"context"
	"encoding/json"
	"log"

	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var job dto.MailJobMessage
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		log.Printf("[ERROR] Failed to unmarshal mail job: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	var err error
	switch job.Kind {
	case dto.MailKindBookingConfirmation:
		err = cs.emailService.SendBookingConfirmation(job.ToEmail, job.TutorName, job.StartTime)
	case dto.MailKindBookingCancelled:
		err = cs.emailService.SendBookingCancelled(job.ToEmail, job.TutorName, job.StartTime)
	case dto.MailKindPaymentReceipt:
		err = cs.emailService.SendPaymentReceipt(job.ToEmail, job.Amount, job.Currency, job.OrderId)
	default:
		log.Printf("[WARN] Unknown mail job kind: %s", job.Kind)
		msg.Ack()
		return
	}

	if err != nil {
		log.Printf("[ERROR] Failed to send %s mail to %s: %v", job.Kind, job.ToEmail, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	msg.Ack()
}
