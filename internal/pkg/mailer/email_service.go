package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendShortlistNotification(toEmail, positionTitle string, finalScore int) error
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

func (s *emailService) SendShortlistNotification(toEmail, positionTitle string, finalScore int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("A candidate was shortlisted for %s", positionTitle))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Candidate Shortlisted</h2>
			<p>A candidate for <b>%s</b> finished the screening pipeline with a composite score of:</p>
			<h1 style="color: #4CAF50;">%d</h1>
			<p>They have been moved to shortlisted. Open your dashboard to review the interview log.</p>
		</div>
	`, positionTitle, finalScore)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send shortlist notification to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Shortlist notification sent to %s\n", toEmail)
	return nil
}
