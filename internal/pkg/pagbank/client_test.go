package pagbank

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckout(t *testing.T) {
	var gotAuth string
	var gotReq CheckoutRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotReq))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"id": "CHEC_ABC123",
			"charges": [{"id": "CHAR_1", "status": "WAITING"}],
			"links": [
				{"rel": "SELF", "href": "https://sandbox.api.pagseguro.com/checkouts/CHEC_ABC123"},
				{"rel": "PAY", "href": "https://sandbox.pagseguro.com/pay/CHEC_ABC123"}
			]
		}`))
	}))
	defer srv.Close()

	c := &Client{Token: "tok-xyz", CheckoutURL: srv.URL, HTTPClient: srv.Client()}

	resp, err := c.CreateCheckout(context.Background(), CheckoutRequest{
		ReferenceID: "REF-1",
		Customer:    Customer{Name: "Ana", Email: "a@x.com", TaxID: "111"},
		Items: []Item{
			{ReferenceID: "REF-1", Name: "Vaso", Quantity: 1, UnitAmount: 5000},
			{ReferenceID: "REF-1", Name: "Jogo de taças", Quantity: 2, UnitAmount: 2500},
		},
		NotificationURLs: []string{"https://example.com/notificacaopagbank"},
		RedirectURL:      "https://example.com/comentar/1234",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-xyz", gotAuth)
	require.Len(t, gotReq.Items, 2)
	for _, item := range gotReq.Items {
		assert.Equal(t, "REF-1", item.ReferenceID)
	}

	assert.Equal(t, "CHEC_ABC123", resp.ID)
	require.Len(t, resp.Charges, 1)
	assert.Equal(t, "WAITING", resp.Charges[0].Status)

	link, ok := resp.PayLink()
	require.True(t, ok)
	assert.Equal(t, "https://sandbox.pagseguro.com/pay/CHEC_ABC123", link)
}

func TestCreateCheckoutNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error_messages":[{"code":"40002"}]}`))
	}))
	defer srv.Close()

	c := &Client{Token: "bad", CheckoutURL: srv.URL, HTTPClient: srv.Client()}

	_, err := c.CreateCheckout(context.Background(), CheckoutRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}

func TestCreateCheckoutMissingToken(t *testing.T) {
	c := &Client{CheckoutURL: defaultCheckoutURL, HTTPClient: http.DefaultClient}
	_, err := c.CreateCheckout(context.Background(), CheckoutRequest{})
	assert.Error(t, err)
}

func TestPayLinkAbsent(t *testing.T) {
	resp := &CheckoutResponse{Links: []Link{{Rel: "SELF", Href: "https://x"}}}
	_, ok := resp.PayLink()
	assert.False(t, ok)
}
