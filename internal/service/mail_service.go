package service

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/yourusername/trivia-site/internal/config"
	apperrors "github.com/yourusername/trivia-site/internal/pkg/errors"
)

// MailSender отправляет письма контактной формы
type MailSender interface {
	// SendContactMessage шлет уведомление оператору и подтверждение отправителю
	SendContactMessage(name, email, message string) error
}

// NoopMailService используется, когда SMTP-релей не сконфигурирован.
// Отправка всегда завершается ошибкой доставки, которую обработчик
// показывает пользователю обычным flash-сообщением.
type NoopMailService struct{}

func (s *NoopMailService) SendContactMessage(name, email, message string) error {
	log.Printf("[NoopMailService] SMTP не сконфигурирован, письмо от %s <%s> не отправлено", name, email)
	return fmt.Errorf("%w: mail is not configured", apperrors.ErrMailDelivery)
}

// SMTPMailService отправляет письма через внешний SMTP-релей.
// Оба письма (оператору и отправителю) уходят с одними учетными данными.
type SMTPMailService struct {
	host      string
	port      string
	username  string
	password  string
	recipient string
}

// NewSMTPMailService создает почтовый сервис и возвращает ошибку при неполной конфигурации
func NewSMTPMailService(cfg config.MailConfig) (*SMTPMailService, error) {
	if cfg.Host == "" || cfg.Port == "" {
		return nil, fmt.Errorf("mail host and port are required")
	}
	if cfg.Username == "" || cfg.Recipient == "" {
		return nil, fmt.Errorf("mail username and recipient are required")
	}
	return &SMTPMailService{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.Username,
		password:  cfg.Password,
		recipient: cfg.Recipient,
	}, nil
}

// SendContactMessage сначала уведомляет оператора, затем шлет подтверждение
// отправителю. Первая же ошибка прерывает оставшиеся шаги: возможна частичная
// доставка (оператор уведомлен, подтверждение не ушло), отдельно она не
// различается и наружу уходит одной ошибкой ErrMailDelivery.
func (s *SMTPMailService) SendContactMessage(name, email, message string) error {
	notifyBody := fmt.Sprintf(
		"You have a new message from your website contact form:\r\n\r\n"+
			"Name: %s\r\nEmail: %s\r\nMessage: %s\r\n",
		name, email, message,
	)
	if err := s.send([]string{s.recipient}, "New contact form submission from "+name, notifyBody); err != nil {
		log.Printf("[SMTPMailService] Не удалось отправить уведомление оператору: %v", err)
		return fmt.Errorf("%w: %v", apperrors.ErrMailDelivery, err)
	}

	confirmBody := fmt.Sprintf(
		"Hi %s,\r\n\r\n"+
			"Thanks for reaching out! We've received your message and will reply soon.\r\n\r\n"+
			"Your message:\r\n%s\r\n\r\n- The Team\r\n",
		name, message,
	)
	if err := s.send([]string{email}, "Thanks for contacting us!", confirmBody); err != nil {
		log.Printf("[SMTPMailService] Уведомление оператору ушло, но подтверждение отправителю %s не доставлено: %v", email, err)
		return fmt.Errorf("%w: %v", apperrors.ErrMailDelivery, err)
	}

	return nil
}

// send выполняет одну синхронную SMTP-передачу (PLAIN auth, STARTTLS релея)
func (s *SMTPMailService) send(to []string, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		s.username, strings.Join(to, ","), subject, body,
	)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	return smtp.SendMail(s.host+":"+s.port, auth, s.username, to, []byte(msg))
}
