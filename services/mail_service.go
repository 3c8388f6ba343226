package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"inventory-app/config"
)

// SendRecoveryCode emails a password recovery code. Returns an error when
// SMTP is not configured; callers treat delivery as best effort.
func SendRecoveryCode(toEmail, code string) error {
	if config.SMTPHost == "" {
		return fmt.Errorf("smtp not configured")
	}

	subject := "Recuperação de Senha - Inventário Patrimonial"
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Recuperação de senha</h3>
				<p>Seu código de recuperação: <strong>%s</strong></p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, code)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPUser)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		return err
	}
	return nil
}
