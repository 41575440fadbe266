package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendBookingConfirmation(toEmail, tutorName string, start time.Time) error
	SendBookingCancelled(toEmail, tutorName string, start time.Time) error
	SendPaymentReceipt(toEmail string, amount float64, currency, orderId string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}
	return nil
}

func (s *emailService) SendBookingConfirmation(toEmail, tutorName string, start time.Time) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your session is confirmed!</h2>
			<p>Your session with <b>%s</b> is scheduled for:</p>
			<h3>%s</h3>
			<p>You can message your tutor from your dashboard at any time.</p>
		</div>
	`, tutorName, start.Format("Monday, 2 Jan 2006 15:04 MST"))

	return s.send(toEmail, "Session Confirmed", body)
}

func (s *emailService) SendBookingCancelled(toEmail, tutorName string, start time.Time) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Session cancelled</h2>
			<p>Your session with <b>%s</b> scheduled for %s has been cancelled.</p>
			<p>The time slot has been released. If you already paid, the refund will follow separately.</p>
		</div>
	`, tutorName, start.Format("Monday, 2 Jan 2006 15:04 MST"))

	return s.send(toEmail, "Session Cancelled", body)
}

func (s *emailService) SendPaymentReceipt(toEmail string, amount float64, currency, orderId string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment received</h2>
			<p>We received your payment of <b>%.2f %s</b>.</p>
			<p>Order reference: %s</p>
		</div>
	`, amount, currency, orderId)

	return s.send(toEmail, "Payment Receipt", body)
}
