package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/canvascms/canvas-go/pkg/canvas"
)

// NewCategoriesCommand creates the categories command group.
func NewCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cats"},
		Short:   "Browse categories",
		Long:    "List the categories of the current project",
	}

	cmd.AddCommand(newCategoriesListCommand())

	return cmd
}

func newCategoriesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  "List all categories of the current project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			categories, err := client.Categories().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			return outputCategories(categories)
		},
	}
}

func outputCategories(categories []canvas.Category) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(categories)
	case OutputFormatYAML:
		return StandardYAMLRenderer(categories)
	default:
		return outputCategoriesTable(categories)
	}
}

func outputCategoriesTable(categories []canvas.Category) error {
	if len(categories) == 0 {
		_, _ = os.Stdout.WriteString("No categories found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Slug")

	for _, category := range categories {
		_ = table.Append(category.Name, category.Slug)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
