package service

import (
	"context"
	"fmt"

	"github.com/hance08/ffly/internal/model"
)

type CategoryService struct {
	api CategoryAPI
}

func NewCategoryService(api CategoryAPI) *CategoryService {
	return &CategoryService{api: api}
}

func (cs *CategoryService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := collectPages(ctx, cs.api.ListCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// CreateCategory stores the icon's identifier in the category notes.
func (cs *CategoryService) CreateCategory(ctx context.Context, name string, icon model.Icon) (model.Category, error) {
	c, err := cs.api.CreateCategory(ctx, name, icon.Name())
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return c, nil
}

func (cs *CategoryService) UpdateCategory(ctx context.Context, id, name string, icon model.Icon) (model.Category, error) {
	c, err := cs.api.UpdateCategory(ctx, id, name, icon.Name())
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to update category %s: %w", id, err)
	}
	return c, nil
}

func (cs *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := cs.api.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return nil
}
