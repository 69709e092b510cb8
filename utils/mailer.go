package utils

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"

	"github.com/nirvana726/Woods/models"
)

// Mailer sends transactional notifications for public form submissions.
type Mailer interface {
	SendBookingReceived(ctx context.Context, booking *models.Booking) error
	SendContactReceived(ctx context.Context, contact *models.Contact) error
}

// ResendMailer sends email through the Resend API. When no API key is
// configured NewMailer returns a mock that only logs, so local setups work
// without credentials.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewMailer(apiKey, from string) Mailer {
	if apiKey == "" {
		return mockMailer{}
	}
	return &ResendMailer{client: resend.NewClient(apiKey), from: from}
}

func (m *ResendMailer) SendBookingReceived(ctx context.Context, booking *models.Booking) error {
	html := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>We received your booking inquiry for room <strong>%s</strong> "+
			"from %s to %s (%d guests).</p>"+
			"<p>Your reference code is <strong>%s</strong>. We will confirm your stay shortly.</p>",
		booking.Firstname, booking.RoomID,
		booking.CheckInDate.Format("2006-01-02"), booking.CheckOutDate.Format("2006-01-02"),
		booking.Guests, booking.ReferenceCode,
	)

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{booking.Email},
		Subject: "We received your booking inquiry — Woods Resort",
		Html:    html,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send booking email: %w", err)
	}
	logrus.WithFields(logrus.Fields{"message_id": sent.Id, "to": booking.Email}).Info("booking email sent")
	return nil
}

func (m *ResendMailer) SendContactReceived(ctx context.Context, contact *models.Contact) error {
	html := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Thanks for getting in touch about \"%s\". "+
			"We will get back to you as soon as we can.</p>",
		contact.FirstName, contact.Subject,
	)

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{contact.Email},
		Subject: "We received your message — Woods Resort",
		Html:    html,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	logrus.WithFields(logrus.Fields{"message_id": sent.Id, "to": contact.Email}).Info("contact email sent")
	return nil
}

type mockMailer struct{}

func (mockMailer) SendBookingReceived(_ context.Context, booking *models.Booking) error {
	logrus.Infof("[MOCK EMAIL] booking received to:%s ref:%s", booking.Email, booking.ReferenceCode)
	return nil
}

func (mockMailer) SendContactReceived(_ context.Context, contact *models.Contact) error {
	logrus.Infof("[MOCK EMAIL] contact received to:%s subject:%s", contact.Email, contact.Subject)
	return nil
}
