package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/validation"
)

func PromptCategoryForm(name *string, icon *model.Icon) error {
	icons := IconOptions()

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Category Name:").
			Value(name).
			Validate(validation.ValidateName),
		huh.NewSelect[model.Icon]().
			Title("Icon:").
			Options(icons...).
			Value(icon).
			Height(selectHeight(len(icons))),
	)).Run()
}
