package views

import (
	"github.com/hance08/ffly/internal/model"
	"github.com/pterm/pterm"
)

func RenderCategoryList(categories []model.Category) error {
	if len(categories) == 0 {
		pterm.Warning.Println("No categories found")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Icon", "Name"}}
	for _, c := range categories {
		tableData = append(tableData, []string{c.ID, c.Icon().Glyph(), c.Name})
	}

	pterm.DefaultSection.Printf("Category List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d categories\n", len(categories))
	return nil
}
