package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leavedesk/internal/config"
	"leavedesk/internal/notify"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_Slack(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the text payload", func(t *testing.T) {
		var got map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Write([]byte("ok"))
		}))
		defer srv.Close()

		n := notify.NewNotifier(config.MailConfig{}, config.SlackConfig{WebhookURL: srv.URL})

		err := n.Slack(ctx, "dana@demo.com: Annual Leave APPROVED")

		assert.NoError(t, err)
		assert.Equal(t, "dana@demo.com: Annual Leave APPROVED", got["text"])
	})

	t.Run("no webhook means no-op", func(t *testing.T) {
		n := notify.NewNotifier(config.MailConfig{}, config.SlackConfig{})

		assert.NoError(t, n.Slack(ctx, "ignored"))
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		n := notify.NewNotifier(config.MailConfig{}, config.SlackConfig{WebhookURL: srv.URL})

		assert.Error(t, n.Slack(ctx, "boom"))
	})
}

func TestNotifier_Email(t *testing.T) {
	t.Run("no smtp host means no-op", func(t *testing.T) {
		n := notify.NewNotifier(config.MailConfig{}, config.SlackConfig{})

		assert.NoError(t, n.Email(context.Background(), "dana@demo.com", "subject", "<p>hi</p>"))
	})
}
