package firefly

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hance08/ffly/internal/model"
	"github.com/shopspring/decimal"
)

const assetAccountRole = "defaultAsset"

// ListAccounts returns one page of accounts. An empty accType lists every
// kind.
func (c *Client) ListAccounts(ctx context.Context, accType model.AccountType, page int) (model.Page[model.Account], error) {
	q := pageQuery(page)
	if accType != "" {
		q.Set("type", string(accType))
	}

	var resp listResponse[accountAttributes]
	if err := c.get(ctx, "accounts", q, &resp); err != nil {
		return model.Page[model.Account]{}, err
	}

	accounts := make([]model.Account, 0, len(resp.Data))
	for _, r := range resp.Data {
		accounts = append(accounts, toAccount(r))
	}
	return model.Page[model.Account]{Data: accounts, Pagination: resp.Meta.Pagination}, nil
}

func (c *Client) GetAccount(ctx context.Context, id string) (model.Account, error) {
	var resp singleResponse[accountAttributes]
	if err := c.get(ctx, "accounts/"+url.PathEscape(id), nil, &resp); err != nil {
		return model.Account{}, err
	}
	return toAccount(resp.Data), nil
}

// CreateAccount creates an account. Asset accounts get the default asset
// role, and a non-zero opening balance is booked today.
func (c *Client) CreateAccount(ctx context.Context, in model.AccountInput) (model.Account, error) {
	req := newAccountRequest(in)
	if in.Type == model.AccountAsset {
		req.AccountRole = assetAccountRole
	}
	if in.OpeningBalance != "" {
		balance, err := decimal.NewFromString(in.OpeningBalance)
		if err == nil && !balance.IsZero() {
			req.OpeningBalance = in.OpeningBalance
			req.OpeningBalanceDate = c.now().Format(model.DateLayout)
		}
	}

	var resp singleResponse[accountAttributes]
	if err := c.do(ctx, http.MethodPost, "accounts", nil, req, &resp); err != nil {
		return model.Account{}, err
	}
	return toAccount(resp.Data), nil
}

func (c *Client) UpdateAccount(ctx context.Context, id string, in model.AccountInput) (model.Account, error) {
	var resp singleResponse[accountAttributes]
	if err := c.do(ctx, http.MethodPut, "accounts/"+url.PathEscape(id), nil, newAccountRequest(in), &resp); err != nil {
		return model.Account{}, err
	}
	return toAccount(resp.Data), nil
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "accounts/"+url.PathEscape(id), nil, nil, nil)
}

func newAccountRequest(in model.AccountInput) accountRequest {
	return accountRequest{
		Name:         in.Name,
		Type:         string(in.Type),
		CurrencyCode: in.CurrencyCode,
		Active:       in.Active,
	}
}

func toAccount(r resource[accountAttributes]) model.Account {
	return model.Account{
		ID:             r.ID,
		Name:           r.Attributes.Name,
		Type:           model.AccountType(r.Attributes.Type),
		CurrentBalance: r.Attributes.CurrentBalance,
		CurrencyCode:   r.Attributes.CurrencyCode,
		CurrencySymbol: r.Attributes.CurrencySymbol,
		Active:         r.Attributes.Active,
	}
}
