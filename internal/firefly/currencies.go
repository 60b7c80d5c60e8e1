package firefly

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hance08/ffly/internal/model"
)

func (c *Client) ListCurrencies(ctx context.Context, page int) (model.Page[model.Currency], error) {
	var resp listResponse[currencyAttributes]
	if err := c.get(ctx, "currencies", pageQuery(page), &resp); err != nil {
		return model.Page[model.Currency]{}, err
	}

	currencies := make([]model.Currency, 0, len(resp.Data))
	for _, r := range resp.Data {
		currencies = append(currencies, toCurrency(r))
	}
	return model.Page[model.Currency]{Data: currencies, Pagination: resp.Meta.Pagination}, nil
}

func (c *Client) CreateCurrency(ctx context.Context, in model.CurrencyInput) (model.Currency, error) {
	var resp singleResponse[currencyAttributes]
	if err := c.do(ctx, http.MethodPost, "currencies", nil, newCurrencyRequest(in), &resp); err != nil {
		return model.Currency{}, err
	}
	return toCurrency(resp.Data), nil
}

// UpdateCurrency updates the currency identified by code; in.Code may rename
// it.
func (c *Client) UpdateCurrency(ctx context.Context, code string, in model.CurrencyInput) (model.Currency, error) {
	var resp singleResponse[currencyAttributes]
	if err := c.do(ctx, http.MethodPut, currencyPath(code), nil, newCurrencyRequest(in), &resp); err != nil {
		return model.Currency{}, err
	}
	return toCurrency(resp.Data), nil
}

func (c *Client) DeleteCurrency(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodDelete, currencyPath(code), nil, nil, nil)
}

func (c *Client) EnableCurrency(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodPost, currencyPath(code)+"/enable", nil, nil, nil)
}

func (c *Client) DisableCurrency(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodPost, currencyPath(code)+"/disable", nil, nil, nil)
}

func currencyPath(code string) string {
	return "currencies/" + url.PathEscape(code)
}

func newCurrencyRequest(in model.CurrencyInput) currencyRequest {
	return currencyRequest{
		Code:          in.Code,
		Name:          in.Name,
		Symbol:        in.Symbol,
		DecimalPlaces: in.DecimalPlaces,
		Enabled:       in.Enabled,
	}
}

func toCurrency(r resource[currencyAttributes]) model.Currency {
	return model.Currency{
		Code:          r.Attributes.Code,
		Name:          r.Attributes.Name,
		Symbol:        r.Attributes.Symbol,
		DecimalPlaces: r.Attributes.DecimalPlaces,
		Enabled:       r.Attributes.Enabled,
		Default:       r.Attributes.Default,
	}
}
