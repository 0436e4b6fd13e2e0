package mail

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrevoMailerSend(t *testing.T) {
	var gotAuth string
	var gotBody brevoSendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("api-key")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"messageId":"<abc@smtp-relay>"}`))
	}))
	defer srv.Close()

	m := &BrevoMailer{
		APIKey:      "key-123",
		APIURL:      srv.URL,
		SenderName:  "Ana & Pietro",
		SenderEmail: "noreply@example.com",
		HTTPClient:  srv.Client(),
	}

	err := m.Send("guest@example.com", "Pagamento confirmado!", "<b>1234</b>")
	require.NoError(t, err)

	assert.Equal(t, "key-123", gotAuth)
	assert.Equal(t, "noreply@example.com", gotBody.Sender.Email)
	require.Len(t, gotBody.To, 1)
	assert.Equal(t, "guest@example.com", gotBody.To[0].Email)
	assert.Equal(t, "Pagamento confirmado!", gotBody.Subject)
	assert.Equal(t, "<b>1234</b>", gotBody.HTMLContent)
}

func TestBrevoMailerSendNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"unauthorized"}`))
	}))
	defer srv.Close()

	m := &BrevoMailer{
		APIKey:      "bad-key",
		APIURL:      srv.URL,
		SenderEmail: "noreply@example.com",
		HTTPClient:  srv.Client(),
	}

	err := m.Send("guest@example.com", "subject", "body")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}

func TestBrevoMailerSendMissingKey(t *testing.T) {
	m := &BrevoMailer{APIURL: defaultBrevoAPIURL, HTTPClient: http.DefaultClient}
	assert.Error(t, m.Send("guest@example.com", "subject", "body"))
}
