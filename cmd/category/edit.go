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

type editRunner struct {
	sess  *app.Session
	flags *categoryFlags
	cmd   *cobra.Command
}

func NewEditCmd(sess *app.Session) *cobra.Command {
	flags := &categoryFlags{}

	cmd := &cobra.Command{
		Use:   "edit <category-id|name>",
		Short: "Rename a category or change its icon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &editRunner{
				sess:  sess,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args[0])
		},
	}

	addCategoryFlags(cmd, flags)
	return cmd
}

func (r *editRunner) Run(ref string) error {
	svc, err := r.sess.Service()
	if err != nil {
		return err
	}
	ctx := r.cmd.Context()

	current, err := findCategory(ctx, svc, ref)
	if err != nil {
		return err
	}

	name, icon := current.Name, current.Icon()
	if r.cmd.Flags().Changed("name") || r.cmd.Flags().Changed("icon") {
		if r.cmd.Flags().Changed("name") {
			name = r.flags.Name
		}
		if r.cmd.Flags().Changed("icon") {
			icon = model.ParseIcon(r.flags.Icon)
		}
		if err := validation.ValidateName(name); err != nil {
			return err
		}
	} else if err := prompts.PromptCategoryForm(&name, &icon); err != nil {
		return err
	}

	if _, err := svc.Category.UpdateCategory(ctx, current.ID, name, icon); err != nil {
		r.sess.Logger.Error("update category failed", "id", current.ID, "error", err)
		errhandler.Fail("update category")
		return nil
	}

	pterm.Success.Printf("Category #%s updated successfully\n", current.ID)
	return refreshList(ctx, svc)
}
