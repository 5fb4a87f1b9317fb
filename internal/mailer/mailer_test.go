package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	from, to, subject, html string
}

type fakeDeliverer struct {
	sent   []sentEmail
	failTo string
}

func (f *fakeDeliverer) deliver(_ context.Context, from, to, subject, html string) error {
	if to == f.failTo {
		return errors.New("mailbox unavailable")
	}
	f.sent = append(f.sent, sentEmail{from: from, to: to, subject: subject, html: html})
	return nil
}

func newTestMailer(t *testing.T, d *fakeDeliverer, admin string) *Mailer {
	t.Helper()
	m, err := newMailer(d, "noreply@example.com", admin)
	require.NoError(t, err)
	m.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return m
}

func TestMailer_NotifyBidAccepted(t *testing.T) {
	d := &fakeDeliverer{}
	m := newTestMailer(t, d, "admin@example.com")

	require.NoError(t, m.NotifyBidAccepted(context.Background(), "Ada <Lovelace>", "ada@example.com"))
	require.Len(t, d.sent, 2)

	bidder := d.sent[0]
	require.Equal(t, "Moawin Auctions <noreply@example.com>", bidder.from)
	require.Equal(t, "ada@example.com", bidder.to)
	require.Contains(t, bidder.subject, "Bid Placed Successfully")
	require.Contains(t, bidder.html, "Ada &lt;Lovelace&gt;", "names are html escaped")
	require.Contains(t, bidder.html, "2026")

	admin := d.sent[1]
	require.Equal(t, "admin@example.com", admin.to)
	require.Equal(t, "New Bid Placed by Ada <Lovelace>", admin.subject)
	require.Contains(t, admin.html, "New Bid Notification")
}

func TestMailer_BidderFailureSkipsAdmin(t *testing.T) {
	d := &fakeDeliverer{failTo: "ada@example.com"}
	m := newTestMailer(t, d, "admin@example.com")

	err := m.NotifyBidAccepted(context.Background(), "Ada", "ada@example.com")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bidder confirmation")
	require.Empty(t, d.sent)
}

func TestMailer_NoAdminConfigured(t *testing.T) {
	d := &fakeDeliverer{}
	m := newTestMailer(t, d, "")

	require.NoError(t, m.NotifyBidAccepted(context.Background(), "Ada", "ada@example.com"))
	require.Len(t, d.sent, 1)
}

func TestNoop(t *testing.T) {
	require.NoError(t, Noop{}.NotifyBidAccepted(context.Background(), "Ada", "ada@example.com"))
}
