package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/canvascms/canvas-go/pkg/canvas"
)

// NewMenusCommand creates the menus command group.
func NewMenusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "menus",
		Aliases: []string{"menu"},
		Short:   "Browse menus",
		Long:    "Inspect the navigation menus of the current project",
	}

	cmd.AddCommand(newMenusGetCommand())

	return cmd
}

func newMenusGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MENU_ID",
		Short: "Get a menu",
		Long:  "Fetch a navigation menu by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			menu, err := client.Menus().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get menu: %w", err)
			}

			return outputMenu(menu)
		},
	}
}

func outputMenu(menu *canvas.Menu) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(menu)
	case OutputFormatYAML:
		return StandardYAMLRenderer(menu)
	default:
		return outputMenuTable(menu)
	}
}

func outputMenuTable(menu *canvas.Menu) error {
	_, _ = fmt.Fprintf(os.Stdout, "Menu: %s (%s)\n", menu.Name, menu.ID)

	if len(menu.Items) == 0 {
		_, _ = os.Stdout.WriteString("No menu items\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Title", "URL", "Icon")

	appendMenuItems(table, menu.Items, 0)

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// appendMenuItems walks the menu tree depth-first, indenting titles by
// nesting level.
func appendMenuItems(table *tablewriter.Table, items []canvas.MenuItem, depth int) {
	indent := strings.Repeat("  ", depth)

	for _, item := range items {
		icon := item.Icon
		if icon == "" {
			icon = NotAvailable
		}

		_ = table.Append(indent+item.Title, item.URL, icon)

		appendMenuItems(table, item.Children, depth+1)
	}
}
