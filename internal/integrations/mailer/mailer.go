package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer отправка писем жизненного цикла бронирования
type Mailer struct {
	settings Settings
	send     sendFunc
	log      Logger
}

// New создает отправщик писем
func New(settings Settings, log Logger) *Mailer {
	return &Mailer{
		settings: settings,
		send:     smtp.SendMail,
		log:      log,
	}
}

// Enabled true, если SMTP настроен
func (m *Mailer) Enabled() bool {
	return m.settings.Host != "" && m.settings.Username != ""
}

// Notify рендерит и отправляет письмо указанного типа
// Письма оператору уходят на OperatorEmail, остальные гостю
func (m *Mailer) Notify(ctx context.Context, kind Kind, r *domain.Reservation) error {
	tpl, ok := templates[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	to := r.Email
	if kind == KindOperatorNew {
		to = m.settings.OperatorEmail
	}
	if to == "" {
		m.log.Warn("Notify: no recipient for %s, reservation id=%d", kind, r.ID)
		return nil
	}

	msg, err := m.render(tpl, to, r)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	if !m.Enabled() {
		m.log.Info("[MOCK EMAIL] kind=%s to=%s subject=%q", kind, msg.To, msg.Subject)
		return nil
	}

	from := m.settings.Username
	addr := m.settings.Host + ":" + strconv.Itoa(m.settings.Port)
	auth := smtp.PlainAuth("", m.settings.Username, m.settings.Password, m.settings.Host)

	if err := m.send(addr, auth, from, []string{msg.To}, m.compose(msg)); err != nil {
		m.log.Error("Notify: failed to send %s to %s: %v", kind, msg.To, err)
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	m.log.Info("Notify: sent %s for reservation id=%d", kind, r.ID)
	return nil
}

// ManageURL ссылка на бронирование с токеном доступа
func (m *Mailer) ManageURL(r *domain.Reservation) string {
	base := strings.TrimRight(m.settings.PublicURL, "/")
	return fmt.Sprintf("%s/admin/reservations/%d?token=%s", base, r.ID, r.Token)
}

func (m *Mailer) render(tpl mailTemplate, to string, r *domain.Reservation) (message, error) {
	data := templateData{
		R:         r,
		ManageURL: m.ManageURL(r),
		AmountDue: strconv.FormatFloat(r.AmountDue(), 'f', 2, 64),
		Deposit:   strconv.FormatFloat(r.DepositAmount, 'f', 2, 64),
	}
	if r.StripePaymentLinkURL != nil {
		data.PaymentURL = *r.StripePaymentLinkURL
	}

	var subject, body bytes.Buffer
	if err := tpl.subject.Execute(&subject, data); err != nil {
		return message{}, fmt.Errorf("%w: subject: %v", ErrRender, err)
	}
	if err := tpl.body.Execute(&body, data); err != nil {
		return message{}, fmt.Errorf("%w: body: %v", ErrRender, err)
	}

	return message{
		To:      to,
		Subject: sanitizeHeader(subject.String()),
		Body:    body.String(),
	}, nil
}

func (m *Mailer) compose(msg message) []byte {
	from := m.settings.Username
	if m.settings.FromName != "" {
		from = fmt.Sprintf("%s <%s>", sanitizeHeader(m.settings.FromName), m.settings.Username)
	}

	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + msg.To + "\r\n")
	sb.WriteString("Subject: " + msg.Subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(sb.String())
}

func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}
