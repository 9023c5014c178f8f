package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"time"
)

// Mailer delivers a rendered receipt. Implementations are expected to be
// slow and unreliable relative to the store; callers must never let a Mailer
// failure propagate into the confirmation result.
type Mailer interface {
	Send(ctx context.Context, receipt Receipt) error
}

// SMTPConfig holds the outbound mail account settings.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
}

// SMTPMailer sends receipts through an authenticated SMTP relay
// (a Gmail account with an app password in the original deployment).
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// istZone renders confirmation timestamps the way the petitioners expect them.
var istZone = time.FixedZone("IST", 5*3600+1800)

var receiptTemplate = template.Must(template.New("receipt").Parse(`<div style="font-family: Helvetica, sans-serif;">
    <p>Dear {{.Name}},</p>
    <p>Your payment {{.Description}} has been successfully confirmed.</p>
    <p><strong>Registration Details:</strong></p>
    <ul>
        <li><strong>Name:</strong> {{.Name}}</li>
        <li><strong>Petitioner Serial No.:</strong> {{.PetitionerNumber}}</li>
        <li><strong>Phase:</strong> {{.PetitionerGroup}}</li>
        <li><strong>Case:</strong> {{.CaseNumber}}</li>
        <li><strong>Department:</strong> {{.Department}}</li>
        <li><strong>Amount:</strong> {{.AmountDisplay}}</li><br>
        <li><strong>Payment ID:</strong> {{.PaymentID}}</li>
    </ul>
    <p><strong>NOTE:</strong> <em>You must take a screenshot of this email receipt and upload it to the google form. Failure
        to do so will result in your payment not being processed.</em></p>
    <p><strong>Google Form: </strong>https://forms.gle/yTp9UqVxYB6ERA4d8</p>
    <p><strong>Confirmed by:</strong> {{.ConfirmedBy}}
        <br><strong>Date:</strong> {{.ConfirmedAt}}
    </p>
    <p>Thank you!
        <br><strong>Core 0 Legal Team</strong>
    </p>
    <p> --- </p>
    <p><em>Please do not reply to this mail as this is a system generated mail.</em></p>
</div>
`))

type receiptView struct {
	Name             string
	PetitionerNumber int
	PetitionerGroup  int
	CaseNumber       string
	Department       string
	AmountDisplay    string
	Description      string
	PaymentID        string
	ConfirmedBy      string
	ConfirmedAt      string
}

// RenderBody produces the HTML receipt body. Exposed for tests.
func RenderBody(receipt Receipt) (string, error) {
	view := receiptView{
		Name:             receipt.Petitioner.Name,
		PetitionerNumber: receipt.Petitioner.PetitionerNumber,
		PetitionerGroup:  receipt.Petitioner.PetitionerGroup,
		CaseNumber:       receipt.CaseNumber,
		Department:       receipt.Petitioner.Department,
		AmountDisplay:    receipt.AmountDisplay,
		Description:      receipt.Description,
		ConfirmedBy:      receipt.ConfirmedBy,
	}
	if receipt.Petitioner.PaymentID != nil {
		view.PaymentID = *receipt.Petitioner.PaymentID
	}
	if receipt.Petitioner.ConfirmedAt != nil {
		view.ConfirmedAt = receipt.Petitioner.ConfirmedAt.In(istZone).Format("02/01/2006, 3:04:05 pm")
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render receipt: %w", err)
	}
	return buf.String(), nil
}

// Send renders and delivers the receipt. The context deadline is not honored
// by net/smtp mid-connection; the worker bounds the overall call instead.
func (m *SMTPMailer) Send(ctx context.Context, receipt Receipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := RenderBody(receipt)
	if err != nil {
		return err
	}

	to := receipt.Petitioner.Email
	subject := fmt.Sprintf("Payment Confirmed - %s", receipt.Petitioner.Name)

	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.User)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(addr, auth, m.cfg.User, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("send receipt to %s: %w", to, err)
	}
	return nil
}
