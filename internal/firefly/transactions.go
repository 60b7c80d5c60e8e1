package firefly

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hance08/ffly/internal/model"
)

// TransactionFilter narrows a transaction listing. Start and End are
// YYYY-MM-DD and are only sent as a pair.
type TransactionFilter struct {
	Page  int
	Type  model.TransactionKind
	Start string
	End   string
}

func (c *Client) ListTransactions(ctx context.Context, f TransactionFilter) (GroupPage, error) {
	q := pageQuery(f.Page)
	if f.Type != "" {
		q.Set("type", string(f.Type))
	}
	if f.Start != "" && f.End != "" {
		q.Set("start", f.Start)
		q.Set("end", f.End)
	}

	var resp listResponse[TransactionGroupAttributes]
	if err := c.get(ctx, "transactions", q, &resp); err != nil {
		return GroupPage{}, err
	}

	groups := make([]TransactionGroup, 0, len(resp.Data))
	for _, r := range resp.Data {
		groups = append(groups, TransactionGroup{ID: r.ID, Attributes: r.Attributes})
	}
	return GroupPage{Groups: groups, Pagination: resp.Meta.Pagination}, nil
}

func (c *Client) GetTransaction(ctx context.Context, id string) (TransactionGroup, error) {
	var resp singleResponse[TransactionGroupAttributes]
	if err := c.get(ctx, transactionPath(id), nil, &resp); err != nil {
		return TransactionGroup{}, err
	}
	return TransactionGroup{ID: resp.Data.ID, Attributes: resp.Data.Attributes}, nil
}

// CreateTransaction submits payload as a single-leg group.
func (c *Client) CreateTransaction(ctx context.Context, payload model.TransactionPayload) (TransactionGroup, error) {
	var resp singleResponse[TransactionGroupAttributes]
	req := transactionGroupRequest{Transactions: []model.TransactionPayload{payload}}
	if err := c.do(ctx, http.MethodPost, "transactions", nil, req, &resp); err != nil {
		return TransactionGroup{}, err
	}
	return TransactionGroup{ID: resp.Data.ID, Attributes: resp.Data.Attributes}, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id string, payload model.TransactionPayload) (TransactionGroup, error) {
	var resp singleResponse[TransactionGroupAttributes]
	req := transactionGroupRequest{Transactions: []model.TransactionPayload{payload}}
	if err := c.do(ctx, http.MethodPut, transactionPath(id), nil, req, &resp); err != nil {
		return TransactionGroup{}, err
	}
	return TransactionGroup{ID: resp.Data.ID, Attributes: resp.Data.Attributes}, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, transactionPath(id), nil, nil, nil)
}

func transactionPath(id string) string {
	return "transactions/" + url.PathEscape(id)
}
