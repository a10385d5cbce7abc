package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"leavedesk/internal/config"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Notifier delivers decision notifications over email and Slack. Either
// channel silently no-ops when it is not configured, so a bare deployment
// works without SMTP or a webhook.
type Notifier struct {
	mailCfg  config.MailConfig
	slackCfg config.SlackConfig
	client   *http.Client
	logger   *zap.Logger
}

func NewNotifier(mailCfg config.MailConfig, slackCfg config.SlackConfig, logger ...*zap.Logger) *Notifier {
	l := zap.L().Named("notify")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify")
	}
	return &Notifier{
		mailCfg:  mailCfg,
		slackCfg: slackCfg,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   l,
	}
}

func (n *Notifier) Email(ctx context.Context, to, subject, html string) error {
	if n.mailCfg.SMTPHost == "" {
		n.logger.Debug("smtp not configured, dropping email", zap.String("to", to))
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(n.mailCfg.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	opts := []mail.Option{mail.WithPort(n.mailCfg.SMTPPort)}
	if n.mailCfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.mailCfg.Username),
			mail.WithPassword(n.mailCfg.Password),
		)
	}

	client, err := mail.NewClient(n.mailCfg.SMTPHost, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func (n *Notifier) Slack(ctx context.Context, text string) error {
	if n.slackCfg.WebhookURL == "" {
		n.logger.Debug("slack webhook not configured, dropping message")
		return nil
	}

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.slackCfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("slack webhook returned %d", resp.StatusCode)
	}
	return nil
}
