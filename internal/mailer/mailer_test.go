package mailer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofolio/gofolio/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(config.Mail{
		Endpoint:   srv.URL,
		ServiceID:  "service_test",
		TemplateID: "template_test",
		PublicKey:  "pk_test",
		ToEmail:    "owner@example.com",
	})
}

func TestSendSuccess(t *testing.T) {
	var gotPath string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	err := c.Send(context.Background(), Message{
		FromName:  "Visitor",
		FromEmail: "v@example.com",
		Subject:   "Hi",
		Body:      "Hello there",
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1.0/email/send", gotPath)
}

func TestSendClassification(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{name: "service missing", status: 400, body: "The service ID not found", expected: ErrServiceNotFound},
		{name: "template missing", status: 400, body: "The template ID not found", expected: ErrTemplateNotFound},
		{name: "bad public key", status: 403, body: "API calls are disabled", expected: ErrAuthFailed},
		{name: "auth failure mentioning template", status: 401, body: "The template owner is not authorized", expected: ErrAuthFailed},
		{name: "anything else", status: 500, body: "boom", expected: ErrSendFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			err := c.Send(context.Background(), Message{FromName: "V"})
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestSendNotConfigured(t *testing.T) {
	c := New(config.Mail{})
	assert.False(t, c.Configured())
	assert.ErrorIs(t, c.Send(context.Background(), Message{}), ErrNotConfigured)
}
