package mailer

import (
	"bytes"
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

type sentMail struct {
	addr string
	from string
	to   []string
	body string
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:            12,
		Token:         "tok-12",
		ArrivalDate:   types.MustParseDate("2026-08-01"),
		DepartureDate: types.MustParseDate("2026-08-08"),
		Nights:        7,
		Guests:        2,
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.com",
		Message:       ptr.Ptr("Late arrival"),
		Total:         1665.32,
		DepositAmount: 500,
		Status:        domain.StatusPending,
	}
}

func newTestMailer(settings Settings) (*Mailer, *[]sentMail, *bytes.Buffer) {
	var logs bytes.Buffer
	m := New(settings, logger.NewWithWriter(&logs, "debug"))

	sent := make([]sentMail, 0)
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, sentMail{addr: addr, from: from, to: to, body: string(msg)})
		return nil
	}
	return m, &sent, &logs
}

func TestNotify_MockModeOnlyLogs(t *testing.T) {
	m, sent, logs := newTestMailer(Settings{})

	require.NoError(t, m.Notify(context.Background(), KindGuestReceived, testReservation()))
	assert.Empty(t, *sent)
	assert.Contains(t, logs.String(), "[MOCK EMAIL]")
	assert.Contains(t, logs.String(), "ada@example.com")
}

func TestNotify_OperatorGetsManageLink(t *testing.T) {
	m, sent, _ := newTestMailer(Settings{
		Host:          "smtp.example.com",
		Port:          587,
		Username:      "noreply@example.com",
		Password:      "pw",
		FromName:      "Villa",
		OperatorEmail: "owner@example.com",
		PublicURL:     "https://villa.example/",
	})

	require.NoError(t, m.Notify(context.Background(), KindOperatorNew, testReservation()))
	require.Len(t, *sent, 1)

	mail := (*sent)[0]
	assert.Equal(t, "smtp.example.com:587", mail.addr)
	assert.Equal(t, []string{"owner@example.com"}, mail.to)
	assert.Contains(t, mail.body, "Subject: New reservation request #12 from Ada Lovelace")
	assert.Contains(t, mail.body, "https://villa.example/admin/reservations/12?token=tok-12")
	assert.Contains(t, mail.body, "Late arrival")
	assert.Contains(t, mail.body, "From: Villa <noreply@example.com>")
}

func TestNotify_GuestMailsNeverCarryToken(t *testing.T) {
	m, sent, _ := newTestMailer(Settings{Host: "smtp", Port: 25, Username: "u", PublicURL: "https://villa.example"})

	r := testReservation()
	r.StripePaymentLinkURL = ptr.Ptr("https://checkout.stripe.com/c/pay/cs_1")
	r.RejectionReason = ptr.Ptr("Dates taken")

	for _, kind := range []Kind{KindGuestReceived, KindApproved, KindRejected, KindPaid} {
		require.NoError(t, m.Notify(context.Background(), kind, r))
	}

	require.Len(t, *sent, 4)
	for _, mail := range *sent {
		assert.Equal(t, []string{"ada@example.com"}, mail.to)
		assert.False(t, strings.Contains(mail.body, "tok-12"))
	}
	assert.Contains(t, (*sent)[1].body, "https://checkout.stripe.com/c/pay/cs_1")
	assert.Contains(t, (*sent)[1].body, "500.00 EUR")
	assert.Contains(t, (*sent)[2].body, "Dates taken")
}

func TestNotify_SendFailure(t *testing.T) {
	m, _, _ := newTestMailer(Settings{Host: "smtp", Port: 25, Username: "u"})
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := m.Notify(context.Background(), KindPaid, testReservation())
	assert.ErrorIs(t, err, ErrSend)
}

func TestNotify_UnknownKind(t *testing.T) {
	m, _, _ := newTestMailer(Settings{})

	err := m.Notify(context.Background(), Kind("nope"), testReservation())
	assert.ErrorIs(t, err, ErrUnknownKind)
}
