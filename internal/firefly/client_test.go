package firefly

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hance08/ffly/internal/logger"
	"github.com/hance08/ffly/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{URL: srv.URL, Token: "secret"}, logger.Discard())
	require.NoError(t, err)
	c.now = func() time.Time { return time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC) }
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := io.WriteString(w, body)
	require.NoError(t, err)
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(Config{URL: "https://demo.firefly-iii.org"}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient(Config{Token: "abc"}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient(Config{URL: "ftp://demo", Token: "abc"}, nil)
	assert.Error(t, err)
}

func TestNewClientRateLimit(t *testing.T) {
	c, err := NewClient(Config{URL: "https://demo", Token: "abc"}, nil)
	require.NoError(t, err)
	assert.Nil(t, c.limiter)
	assert.Equal(t, DefaultTimeout, c.http.Timeout)

	c, err = NewClient(Config{URL: "https://demo", Token: "abc", RateLimit: 2, Timeout: time.Second}, nil)
	require.NoError(t, err)
	require.NotNil(t, c.limiter)
	assert.Equal(t, time.Second, c.http.Timeout)
}

func TestBaseURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://firefly.example.com", "https://firefly.example.com/api/v1"},
		{"https://firefly.example.com/", "https://firefly.example.com/api/v1"},
		{"https://firefly.example.com/api/v1", "https://firefly.example.com/api/v1"},
		{"https://firefly.example.com/api/v1/", "https://firefly.example.com/api/v1"},
		{"http://nas.local:8080/firefly", "http://nas.local:8080/firefly/api/v1"},
	}
	for _, tc := range cases {
		u, err := BaseURL(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, u.String(), tc.in)
	}

	_, err := BaseURL("firefly.example.com")
	assert.Error(t, err)
}

func TestListAccountsSendsAuthAndFilters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/accounts", r.URL.Path)
		assert.Equal(t, "asset", r.URL.Query().Get("type"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(traceHeader))

		writeJSON(t, w, http.StatusOK, `{
			"data": [
				{"id": "1", "type": "accounts", "attributes": {"name": "Checking", "type": "asset", "current_balance": "1250.50", "currency_code": "EUR", "currency_symbol": "€", "active": true}},
				{"id": "2", "type": "accounts", "attributes": {"name": "Wallet", "type": "asset", "current_balance": "-3.20", "currency_code": "EUR", "currency_symbol": "€", "active": false}}
			],
			"meta": {"pagination": {"total": 12, "count": 2, "per_page": 10, "current_page": 2, "total_pages": 2}}
		}`)
	})

	page, err := c.ListAccounts(context.Background(), model.AccountAsset, 2)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)

	assert.Equal(t, model.Account{
		ID:             "1",
		Name:           "Checking",
		Type:           model.AccountAsset,
		CurrentBalance: "1250.50",
		CurrencyCode:   "EUR",
		CurrencySymbol: "€",
		Active:         true,
	}, page.Data[0])
	assert.False(t, page.Data[1].Active)
	assert.Equal(t, model.Pagination{Total: 12, Count: 2, PerPage: 10, CurrentPage: 2, TotalPages: 2}, page.Pagination)
	assert.False(t, page.Pagination.HasNext())
}

func TestTokenWithBearerPrefixIsNotDoubled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := NewClient(Config{URL: srv.URL, Token: "Bearer abc"}, logger.Discard())
	require.NoError(t, err)
	require.NoError(t, c.DeleteCategory(context.Background(), "4"))
}

func TestCreateAssetAccountWithOpeningBalance(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Savings", body["name"])
		assert.Equal(t, "asset", body["type"])
		assert.Equal(t, "defaultAsset", body["account_role"])
		assert.Equal(t, "500.00", body["opening_balance"])
		assert.Equal(t, "2026-10-19", body["opening_balance_date"])
		assert.Equal(t, true, body["active"])

		writeJSON(t, w, http.StatusOK, `{"data": {"id": "9", "attributes": {"name": "Savings", "type": "asset", "current_balance": "500.00", "active": true}}}`)
	})

	acc, err := c.CreateAccount(context.Background(), model.AccountInput{
		Name:           "Savings",
		Type:           model.AccountAsset,
		CurrencyCode:   "EUR",
		Active:         true,
		OpeningBalance: "500.00",
	})
	require.NoError(t, err)
	assert.Equal(t, "9", acc.ID)
}

func TestCreateExpenseAccountOmitsRoleAndZeroBalance(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "account_role")
		assert.NotContains(t, body, "opening_balance")
		assert.NotContains(t, body, "opening_balance_date")

		writeJSON(t, w, http.StatusOK, `{"data": {"id": "3", "attributes": {"name": "Groceries", "type": "expense"}}}`)
	})

	_, err := c.CreateAccount(context.Background(), model.AccountInput{
		Name:           "Groceries",
		Type:           model.AccountExpense,
		OpeningBalance: "0.00",
	})
	require.NoError(t, err)
}

func TestUpdateAccountNeverSendsOpeningBalance(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/accounts/7", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "opening_balance")
		assert.Equal(t, false, body["active"])

		writeJSON(t, w, http.StatusOK, `{"data": {"id": "7", "attributes": {"name": "Old Bank", "type": "asset"}}}`)
	})

	_, err := c.UpdateAccount(context.Background(), "7", model.AccountInput{
		Name:           "Old Bank",
		Type:           model.AccountAsset,
		OpeningBalance: "10",
	})
	require.NoError(t, err)
}

func TestListTransactionsQuery(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		q := r.URL.Query()
		switch calls {
		case 1:
			assert.Equal(t, "withdrawal", q.Get("type"))
			assert.Equal(t, "2026-10-01", q.Get("start"))
			assert.Equal(t, "2026-10-31", q.Get("end"))
		case 2:
			assert.False(t, q.Has("start"))
			assert.False(t, q.Has("end"))
			assert.False(t, q.Has("type"))
		}

		writeJSON(t, w, http.StatusOK, `{
			"data": [
				{"id": "40", "type": "transactions", "attributes": {
					"created_at": "2026-10-02T10:00:00+02:00",
					"transactions": [
						{"type": "withdrawal", "date": "2026-10-02T00:00:00+02:00", "amount": "12.500000000000", "description": "Lunch",
						 "currency_code": "EUR", "currency_symbol": "€", "source_id": "1", "source_name": "Checking",
						 "destination_id": "8", "destination_name": "Cafe", "category_id": "3", "category_name": "Food"}
					]
				}}
			],
			"meta": {"pagination": {"total": 1, "count": 1, "per_page": 50, "current_page": 1, "total_pages": 1}}
		}`)
	})

	page, err := c.ListTransactions(context.Background(), TransactionFilter{Type: model.KindWithdrawal, Start: "2026-10-01", End: "2026-10-31"})
	require.NoError(t, err)
	require.Len(t, page.Groups, 1)
	group := page.Groups[0]
	assert.Equal(t, "40", group.ID)
	require.Len(t, group.Attributes.Transactions, 1)
	assert.Equal(t, "12.500000000000", group.Attributes.Transactions[0].Amount)
	assert.Equal(t, "Food", group.Attributes.Transactions[0].CategoryName)

	_, err = c.ListTransactions(context.Background(), TransactionFilter{Start: "2026-10-01"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCreateTransactionWrapsSingleLeg(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/transactions", r.URL.Path)

		var body struct {
			Transactions []map[string]any `json:"transactions"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Transactions, 1)
		leg := body.Transactions[0]
		assert.Equal(t, "deposit", leg["type"])
		assert.Equal(t, "Employer", leg["source_name"])
		assert.Equal(t, "1", leg["destination_id"])
		assert.NotContains(t, leg, "source_id")
		assert.NotContains(t, leg, "destination_name")
		assert.NotContains(t, leg, "category_id")

		writeJSON(t, w, http.StatusOK, `{"data": {"id": "41", "attributes": {"transactions": [{"type": "deposit", "amount": "100"}]}}}`)
	})

	group, err := c.CreateTransaction(context.Background(), model.TransactionPayload{
		Type:          model.KindDeposit,
		Date:          "2026-10-19",
		Amount:        "100",
		Description:   "Salary",
		SourceName:    "Employer",
		DestinationID: "1",
	})
	require.NoError(t, err)
	assert.Equal(t, "41", group.ID)
}

func TestErrorResponsesRelayServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, `{"message": "The code has already been taken.", "errors": {"code": ["taken"]}}`)
	})

	_, err := c.CreateCurrency(context.Background(), model.CurrencyInput{Code: "EUR", Name: "Euro", Symbol: "€", DecimalPlaces: 2, Enabled: true})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)

	msg, ok := ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "The code has already been taken.", msg)
}

func TestUnauthorizedIsAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.ListCategories(context.Background(), 1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "Unauthorized")

	_, ok := ServerMessage(err)
	assert.False(t, ok)
}

func TestCurrencyToggleEndpoints(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{"data": {"id": "2", "attributes": {"code": "GBP"}}}`)
	})

	require.NoError(t, c.EnableCurrency(context.Background(), "GBP"))
	require.NoError(t, c.DisableCurrency(context.Background(), "GBP"))
	assert.Equal(t, []string{"/api/v1/currencies/GBP/enable", "/api/v1/currencies/GBP/disable"}, paths)
}

func TestDecodeFailureIsReported(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `<html>maintenance</html>`)
	})

	_, err := c.ListCurrencies(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
