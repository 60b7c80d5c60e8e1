package category

import (
	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/errhandler"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/ui/prompts"
	"github.com/hance08/ffly/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type categoryFlags struct {
	Name string
	Icon string
}

type createRunner struct {
	sess  *app.Session
	flags *categoryFlags
	cmd   *cobra.Command
}

func NewCreateCmd(sess *app.Session) *cobra.Command {
	flags := &categoryFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		Long: `Create a spending category with an icon.

Examples:
	# Interactive mode
	ffly category create

	# Quick mode with flags
	ffly category create --name Groceries --icon ShoppingCart`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				sess:  sess,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	addCategoryFlags(cmd, flags)
	return cmd
}

func addCategoryFlags(cmd *cobra.Command, flags *categoryFlags) {
	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Category name")
	cmd.Flags().StringVarP(&flags.Icon, "icon", "i", "", "Icon identifier, e.g. ShoppingCart (unknown names fall back to HelpCircle)")
}

func (r *createRunner) Run() error {
	svc, err := r.sess.Service()
	if err != nil {
		return err
	}
	ctx := r.cmd.Context()

	name, icon := r.flags.Name, model.ParseIcon(r.flags.Icon)
	if r.cmd.Flags().Changed("name") {
		if err := validation.ValidateName(name); err != nil {
			return err
		}
	} else if err := prompts.PromptCategoryForm(&name, &icon); err != nil {
		return err
	}

	c, err := svc.Category.CreateCategory(ctx, name, icon)
	if err != nil {
		r.sess.Logger.Error("create category failed", "error", err)
		errhandler.Fail("create category")
		return nil
	}

	pterm.Success.Printf("Category %s %s created successfully\n", c.Icon().Glyph(), c.Name)
	return refreshList(ctx, svc)
}
