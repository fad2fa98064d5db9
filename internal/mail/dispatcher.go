package mail

import (
	"context"

	"go.uber.org/zap"

	"github.com/gsjs-tp/volunteer-service/internal/config"
)

// Envelope bundles the transport-level fields of an outgoing message.
type Envelope struct {
	FromName    string
	FromAddress string
	To          string
	Subject     string
	HTML        string
	Text        string
}

// Transport abstracts the external mail provider.
type Transport interface {
	Send(ctx context.Context, env Envelope) (messageID string, err error)
	Verify(ctx context.Context) error
}

// SendResult is the structured outcome of a delivery attempt. Transport
// failures are captured here instead of being returned as errors.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message"`
}

// Dispatcher renders welcome messages and hands them to the transport.
type Dispatcher struct {
	transport Transport
	cfg       config.MailConfig
	logger    *zap.Logger
}

// NewDispatcher constructs the dispatcher with explicit configuration.
func NewDispatcher(transport Transport, cfg config.MailConfig, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{transport: transport, cfg: cfg, logger: logger}
}

// SendWelcome renders the welcome template for the volunteer and sends it.
// Failures are logged and folded into the result; the raw transport error
// is never propagated to the caller.
func (d *Dispatcher) SendWelcome(ctx context.Context, v Volunteer, password string) SendResult {
	msg, err := RenderWelcome(v, password, d.cfg.FrontendBaseURL)
	if err != nil {
		d.logger.Error("failed to render welcome email", zap.Error(err), zap.String("to", v.Email))
		return SendResult{
			Success: false,
			Error:   err.Error(),
			Message: "Gagal mengirim email",
		}
	}

	env := Envelope{
		FromName:    d.cfg.FromName,
		FromAddress: d.cfg.FromAddress,
		To:          v.Email,
		Subject:     msg.Subject,
		HTML:        msg.HTML,
		Text:        msg.Text,
	}

	d.logger.Info("sending welcome email", zap.String("to", v.Email))
	messageID, err := d.transport.Send(ctx, env)
	if err != nil {
		d.logger.Error("failed to send welcome email", zap.Error(err), zap.String("to", v.Email))
		return SendResult{
			Success: false,
			Error:   err.Error(),
			Message: "Gagal mengirim email",
		}
	}

	d.logger.Info("welcome email sent", zap.String("message_id", messageID), zap.String("to", v.Email))
	return SendResult{
		Success:   true,
		MessageID: messageID,
		Message:   "Email berhasil dikirim",
	}
}

// VerifyConnection checks mail-server connectivity, logging but not
// returning the underlying error.
func (d *Dispatcher) VerifyConnection(ctx context.Context) bool {
	if err := d.transport.Verify(ctx); err != nil {
		d.logger.Error("mail server connection failed", zap.Error(err))
		return false
	}
	d.logger.Info("mail server connection verified")
	return true
}
