package category

import (
	"context"
	"fmt"

	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/service"
	"github.com/hance08/ffly/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewCategoryCmd(sess *app.Session) *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Create, edit, delete and list spending categories",
	}

	categoryCmd.AddCommand(NewListCmd(sess))
	categoryCmd.AddCommand(NewCreateCmd(sess))
	categoryCmd.AddCommand(NewEditCmd(sess))
	categoryCmd.AddCommand(NewDeleteCmd(sess))

	return categoryCmd
}

func NewListCmd(sess *app.Session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := sess.Service()
			if err != nil {
				return err
			}
			return refreshList(cmd.Context(), svc)
		},
	}
}

func refreshList(ctx context.Context, svc *service.Service) error {
	categories, err := svc.Category.GetAllCategories(ctx)
	if err != nil {
		return err
	}
	return views.RenderCategoryList(categories)
}

// findCategory resolves a category by id or exact name.
func findCategory(ctx context.Context, svc *service.Service, id string) (model.Category, error) {
	categories, err := svc.Category.GetAllCategories(ctx)
	if err != nil {
		return model.Category{}, err
	}
	for _, c := range categories {
		if c.ID == id || c.Name == id {
			return c, nil
		}
	}
	return model.Category{}, fmt.Errorf("category %s not found", id)
}
