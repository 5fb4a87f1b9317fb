package mailer

import (
	"context"
	"fmt"
	"time"

	"art-auction/utils"

	"github.com/aymerick/raymond"
	"github.com/mailgun/mailgun-go/v4"
)

// Brand is the sender name shown on every auction email
const Brand = "Moawin Auctions"

const (
	templateBidder = "bidder_confirmation"
	templateAdmin  = "admin_notice"
)

// deliverer sends one rendered HTML email
type deliverer interface {
	deliver(ctx context.Context, from, to, subject, html string) error
}

type mailgunDeliverer struct {
	mg *mailgun.MailgunImpl
}

func (d mailgunDeliverer) deliver(ctx context.Context, from, to, subject, html string) error {
	message := d.mg.NewMessage(from, subject, "", to)
	message.SetHtml(html)
	_, _, err := d.mg.Send(ctx, message)
	return err
}

// Mailer sends the bid confirmation to the bidder followed by a notice to the admin
type Mailer struct {
	sender     deliverer
	from       string
	adminEmail string
	templates  map[string]*raymond.Template
	now        func() time.Time
}

// NewMailer returns a Mailgun backed mailer
func NewMailer(domain, apiKey, systemAddress, adminEmail string) (*Mailer, error) {
	return newMailer(mailgunDeliverer{mg: mailgun.NewMailgun(domain, apiKey)}, systemAddress, adminEmail)
}

func newMailer(sender deliverer, systemAddress, adminEmail string) (*Mailer, error) {
	m := &Mailer{
		sender:     sender,
		from:       fmt.Sprintf("%s <%s>", Brand, systemAddress),
		adminEmail: adminEmail,
		templates:  map[string]*raymond.Template{},
		now:        time.Now,
	}

	for name, source := range map[string]string{
		templateBidder: bidderConfirmationTemplate,
		templateAdmin:  adminNoticeTemplate,
	} {
		tpl, err := raymond.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("mailer: failed to parse template %s: %w", name, err)
		}
		m.templates[name] = tpl
	}
	return m, nil
}

// NotifyBidAccepted emails the bidder, then the admin. The admin notice is skipped
// when the bidder email fails.
func (m *Mailer) NotifyBidAccepted(ctx context.Context, bidderName, bidderEmail string) error {
	content := map[string]any{
		"name":  bidderName,
		"brand": Brand,
		"year":  m.now().Year(),
	}

	if err := m.send(ctx, bidderEmail, "Bid Placed Successfully - "+Brand, templateBidder, content); err != nil {
		return fmt.Errorf("mailer: bidder confirmation: %w", err)
	}
	if m.adminEmail == "" {
		return nil
	}
	if err := m.send(ctx, m.adminEmail, "New Bid Placed by "+bidderName, templateAdmin, content); err != nil {
		return fmt.Errorf("mailer: admin notice: %w", err)
	}

	utils.Debug("mailer: bid emails sent", map[string]any{"to": bidderEmail})
	return nil
}

func (m *Mailer) send(ctx context.Context, to, subject, template string, content any) error {
	tpl, ok := m.templates[template]
	if !ok {
		return fmt.Errorf("unknown template %s", template)
	}
	body, err := tpl.Exec(content)
	if err != nil {
		return fmt.Errorf("failed to render template %s: %w", template, err)
	}
	if err := m.sender.deliver(ctx, m.from, to, subject, body); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// Noop logs instead of sending, used when Mailgun is not configured
type Noop struct{}

func (Noop) NotifyBidAccepted(_ context.Context, bidderName, bidderEmail string) error {
	utils.Info("mailer: email disabled, skipping bid notification", map[string]any{
		"bidder": bidderName,
		"to":     bidderEmail,
	})
	return nil
}
