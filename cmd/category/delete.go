package category

import (
	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/errhandler"
	"github.com/hance08/ffly/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewDeleteCmd(sess *app.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category-id|name>",
		Short: "Delete a category",
		Long:  `Delete a category. Transactions keep existing without a category.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := sess.Service()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			c, err := findCategory(ctx, svc, args[0])
			if err != nil {
				return err
			}

			ok, err := ui.Confirm("Delete category " + c.Icon().Glyph() + " " + c.Name + "?")
			if err != nil {
				return err
			}
			if !ok {
				pterm.Info.Println("Deletion cancelled")
				return nil
			}

			if err := svc.Category.DeleteCategory(ctx, c.ID); err != nil {
				sess.Logger.Error("delete category failed", "id", c.ID, "error", err)
				errhandler.Fail("delete category")
				return nil
			}

			pterm.Success.Printf("Category %s deleted successfully\n", c.Name)
			return refreshList(ctx, svc)
		},
	}
}
