package models

import (
	"fmt"
	"html"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendContactEmail(inbox string, req ContactRequest) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", inbox)
	m.SetHeader("Reply-To", req.Email)
	m.SetHeader("Subject", fmt.Sprintf("Contact Form: %s", req.Subject))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #111; letter-spacing: 2px; }
        .message-box { background-color: #f9f9f9; padding: 20px; margin: 20px 0; border-radius: 8px; white-space: pre-wrap; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">BISCENIC</div>
        </div>
        <h2 style="color: #333;">New Contact Message</h2>
        <p><strong>From:</strong> %s %s (%s)</p>
        <p><strong>Subject:</strong> %s</p>

        <div class="message-box">%s</div>

        <div class="footer">
            <p>Sent from the Biscenic storefront contact form.</p>
        </div>
    </div>
</body>
</html>
	`, html.EscapeString(req.FirstName), html.EscapeString(req.LastName),
		html.EscapeString(req.Email), html.EscapeString(req.Subject),
		strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>"))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
