package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/canvascms/canvas-go/internal/constants"
	"github.com/canvascms/canvas-go/pkg/canvas"
)

// NewLayoutsCommand creates the layouts command group.
func NewLayoutsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "layouts",
		Aliases: []string{"layout"},
		Short:   "Browse layouts",
		Long:    "Inspect the layouts of the current project",
	}

	cmd.AddCommand(newLayoutsGetCommand())

	return cmd
}

func newLayoutsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LAYOUT_ID [LAYOUT_ID...]",
		Short: "Get layouts",
		Long:  "Fetch one or more layouts by ID; multiple IDs go out as a single request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			layouts, err := fetchLayouts(client, args)
			if err != nil {
				return err
			}

			return outputLayouts(layouts)
		},
	}
}

func fetchLayouts(client canvas.Client, ids []string) ([]canvas.Layout, error) {
	ctx := context.Background()

	if len(ids) == 0 {
		return nil, constants.ErrNoLayoutIDs
	}

	if len(ids) == 1 {
		layout, err := client.Layouts().Get(ctx, ids[0])
		if err != nil {
			return nil, fmt.Errorf("failed to get layout: %w", err)
		}

		return []canvas.Layout{*layout}, nil
	}

	layouts, err := client.Layouts().GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get layouts: %w", err)
	}

	return layouts, nil
}

func outputLayouts(layouts []canvas.Layout) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(layouts)
	case OutputFormatYAML:
		return StandardYAMLRenderer(layouts)
	default:
		return outputLayoutsTable(layouts)
	}
}

func outputLayoutsTable(layouts []canvas.Layout) error {
	for _, layout := range layouts {
		_, _ = fmt.Fprintf(os.Stdout, "Layout: %s (%s)\n", layout.Name, layout.ID)

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("UID", "Type", "Label", "Value")

		for _, item := range layout.Items {
			_ = table.Append(item.UID, string(item.Type), item.Label, item.Value.String())
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
