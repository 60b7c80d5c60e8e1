package firefly

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hance08/ffly/internal/model"
)

func (c *Client) ListCategories(ctx context.Context, page int) (model.Page[model.Category], error) {
	var resp listResponse[categoryAttributes]
	if err := c.get(ctx, "categories", pageQuery(page), &resp); err != nil {
		return model.Page[model.Category]{}, err
	}

	categories := make([]model.Category, 0, len(resp.Data))
	for _, r := range resp.Data {
		categories = append(categories, toCategory(r))
	}
	return model.Page[model.Category]{Data: categories, Pagination: resp.Meta.Pagination}, nil
}

func (c *Client) CreateCategory(ctx context.Context, name, notes string) (model.Category, error) {
	var resp singleResponse[categoryAttributes]
	req := categoryRequest{Name: name, Notes: notes}
	if err := c.do(ctx, http.MethodPost, "categories", nil, req, &resp); err != nil {
		return model.Category{}, err
	}
	return toCategory(resp.Data), nil
}

func (c *Client) UpdateCategory(ctx context.Context, id, name, notes string) (model.Category, error) {
	var resp singleResponse[categoryAttributes]
	req := categoryRequest{Name: name, Notes: notes}
	if err := c.do(ctx, http.MethodPut, "categories/"+url.PathEscape(id), nil, req, &resp); err != nil {
		return model.Category{}, err
	}
	return toCategory(resp.Data), nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "categories/"+url.PathEscape(id), nil, nil, nil)
}

func toCategory(r resource[categoryAttributes]) model.Category {
	return model.Category{
		ID:    r.ID,
		Name:  r.Attributes.Name,
		Notes: r.Attributes.Notes,
	}
}
