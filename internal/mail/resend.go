package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendTransport delivers mail through the Resend API.
type ResendTransport struct {
	client *resend.Client
}

// NewResendTransport builds a transport for the given API key.
func NewResendTransport(apiKey string) *ResendTransport {
	return &ResendTransport{client: resend.NewClient(apiKey)}
}

// Send delivers a single message and returns the provider message id.
func (t *ResendTransport) Send(ctx context.Context, env Envelope) (string, error) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", env.FromName, env.FromAddress),
		To:      []string{env.To},
		Subject: env.Subject,
		Html:    env.HTML,
		Text:    env.Text,
	}

	sent, err := t.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}

// Verify probes the API with a lightweight authenticated call.
func (t *ResendTransport) Verify(ctx context.Context) error {
	_, err := t.client.ApiKeys.ListWithContext(ctx)
	return err
}
