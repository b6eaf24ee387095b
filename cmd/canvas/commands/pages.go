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

// NewPagesCommand creates the pages command group.
func NewPagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pages",
		Aliases: []string{"page"},
		Short:   "Browse pages",
		Long:    "List and inspect the pages of the current project",
	}

	cmd.AddCommand(newPagesListCommand())
	cmd.AddCommand(newPagesGetCommand())

	return cmd
}

// PagesListOptions holds the options for listing pages.
type PagesListOptions struct {
	Category string
	Start    int
	Offset   int
}

func newPagesListCommand() *cobra.Command {
	var opts PagesListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pages",
		Long:  "List pages of the current project, optionally filtered by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			list, err := client.Pages().List(context.Background(), buildPageListOptions(cmd, opts))
			if err != nil {
				return fmt.Errorf("failed to list pages: %w", err)
			}

			return outputPages(list)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "filter by category slug")
	cmd.Flags().IntVar(&opts.Start, "start", 0, "listing window start")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "listing window size")

	return cmd
}

// buildPageListOptions translates flags into list options. Only flags the
// user actually set are forwarded, so an explicit --start 0 still reaches
// the query while an unset one is omitted.
func buildPageListOptions(cmd *cobra.Command, opts PagesListOptions) *canvas.PageListOptions {
	listOpts := &canvas.PageListOptions{}

	if cmd.Flags().Changed("category") {
		listOpts.Filters = &canvas.PageFilters{
			Category: canvas.CategoryFilter{Slug: opts.Category},
		}
	}

	if cmd.Flags().Changed("start") {
		listOpts.Start = canvas.Int(opts.Start)
	}

	if cmd.Flags().Changed("offset") {
		listOpts.Offset = canvas.Int(opts.Offset)
	}

	return listOpts
}

func newPagesGetCommand() *cobra.Command {
	var pageVersion int

	cmd := &cobra.Command{
		Use:   "get SLUG",
		Short: "Get a page",
		Long:  "Fetch the full representation of a single page by slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			getOpts := &canvas.PageGetOptions{}
			if cmd.Flags().Changed("page-version") {
				getOpts.Version = canvas.Int(pageVersion)
			}

			page, err := client.Pages().GetBySlug(context.Background(), args[0], getOpts)
			if err != nil {
				return fmt.Errorf("failed to get page: %w", err)
			}

			return outputPageDetail(page)
		},
	}

	cmd.Flags().IntVar(&pageVersion, "page-version", 0, "fetch a specific page version")

	return cmd
}

func outputPages(list *canvas.PageList) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(list)
	case OutputFormatYAML:
		return StandardYAMLRenderer(list)
	default:
		return outputPagesTable(list)
	}
}

func outputPagesTable(list *canvas.PageList) error {
	if len(list.Items) == 0 {
		_, _ = os.Stdout.WriteString("No pages found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Title", "Slug", "Categories", "Updated")

	for _, page := range list.Items {
		_ = table.Append(page.Title, page.Slug, categorySlugs(page.Categories),
			page.UpdatedAt.Format(timeFormat))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Showing %d of %d pages\n", len(list.Items), list.Total)

	return nil
}

func outputPageDetail(page *canvas.PageDetail) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(page)
	case OutputFormatYAML:
		return StandardYAMLRenderer(page)
	default:
		return outputPageDetailTable(page)
	}
}

func outputPageDetailTable(page *canvas.PageDetail) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Title", page.Title)
	_ = table.Append("Subtitle", page.Subtitle)
	_ = table.Append("Slug", page.Slug)
	_ = table.Append("Categories", categorySlugs(page.Categories))
	_ = table.Append("Meta Title", page.Meta.Title)
	_ = table.Append("Meta Description", page.Meta.Description)
	_ = table.Append("Blocks", fmt.Sprintf("%d", len(page.Content)))
	_ = table.Append("Created", page.CreatedAt.Format(timeFormat))
	_ = table.Append("Updated", page.UpdatedAt.Format(timeFormat))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
