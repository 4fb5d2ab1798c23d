package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"vashudhara/internal/models"

	"github.com/sirupsen/logrus"
)

// Mailer delivers one email. Implemented by the SendGrid client.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

var emailBody = template.Must(template.New("status").Parse(
	`Hello {{.CustomerName}},

Your order {{.OrderID}} placed on {{.OrderDate}} is now: {{.NewStatus}}.

{{range .Items}}  {{.Name}} x{{.Units}} @ {{printf "%.2f" .Price}}
{{end}}
Shipping: {{printf "%.2f" .Cost.Shipping}}
Tax:      {{printf "%.2f" .Cost.Tax}}
Total:    {{printf "%.2f" .Cost.Total}}

Delivery address:
{{.ShippingAddress}}

Thank you for shopping with us.
`))

// Notifier is the worker-side handler: one Kafka order event in, one email
// out. Malformed events and events without a recipient are non-retryable.
type Notifier struct {
	mailer Mailer
	from   string
	shop   string
}

func NewNotifier(mailer Mailer, from, shop string) *Notifier {
	return &Notifier{mailer: mailer, from: from, shop: shop}
}

func (n *Notifier) HandleMessage(ctx context.Context, payload []byte) error {
	var ev models.Notification
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if strings.TrimSpace(ev.CustomerEmail) == "" {
		return fmt.Errorf("%w: event %s has no recipient", ErrValidation, ev.OrderID)
	}

	var body bytes.Buffer
	if err := emailBody.Execute(&body, ev); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	subject := fmt.Sprintf("%s: order %s is now %s", n.shop, ev.OrderID, ev.NewStatus)
	if err := n.mailer.Send(ctx, n.from, ev.CustomerEmail, subject, body.String()); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": ev.OrderID,
		"status":   ev.NewStatus,
	}).Info("status email sent")
	return nil
}
