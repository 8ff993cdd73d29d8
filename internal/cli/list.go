package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/genpozi/poziverse/internal/app"
	"github.com/genpozi/poziverse/internal/catalog"
	"github.com/genpozi/poziverse/internal/filter"
	"github.com/genpozi/poziverse/internal/workspace"
)

// Output formats accepted by --format.
const (
	formatTable    = "table"
	formatMarkdown = "markdown"
	formatCSV      = "csv"
)

func newListCmd(opts *app.Options) *cobra.Command {
	var (
		query    string
		category string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "list <domain>",
		Short: "Print one catalog domain",
		Long: `Print one catalog domain as a table.

Domains: ` + strings.Join(catalog.Domains(), ", ") + `

--category narrows on the domain's grouping field: project status, launchpad
category, user role, resource type, file source status, or folder item type.
--query keeps rows whose searchable text contains the value, ignoring case.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: catalog.Domains(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.ResolveConfig(*opts)
			if err != nil {
				return err
			}
			cat, _, err := app.LoadCatalog(cfg.CatalogPath, cfg.Hide)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			header, rows, err := domainRows(cat, args[0], filter.Query{Category: category, Text: query})
			if err != nil {
				return err
			}
			return renderRows(cmd.OutOrStdout(), header, rows, format)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive text search")
	cmd.Flags().StringVarP(&category, "category", "c", "", "exact category value (\"all\" disables)")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, markdown, or csv")

	return cmd
}

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the workspace navigation targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			header := table.Row{"Key", "Target", "Label"}
			var rows []table.Row
			for i, t := range workspace.Targets() {
				rows = append(rows, table.Row{i + 1, t.String(), t.Label()})
			}
			return renderRows(cmd.OutOrStdout(), header, rows, formatTable)
		},
	}
}

// domainRows filters one domain and converts it to table rows.
func domainRows(cat *catalog.Catalog, domain string, q filter.Query) (table.Row, []table.Row, error) {
	switch strings.ToLower(strings.TrimSpace(domain)) {
	case catalog.DomainProjects:
		items := filter.Apply(cat.Projects, q,
			func(p catalog.Project) string { return p.Status },
			func(p catalog.Project) string { return p.Title },
			func(p catalog.Project) string { return p.Subtitle },
			func(p catalog.Project) string { return p.Description },
			filter.AnyOf(func(p catalog.Project) []string { return p.TechStack }),
		)
		rows := make([]table.Row, 0, len(items))
		for _, p := range items {
			rows = append(rows, table.Row{p.ID, p.Title, p.Status, fmt.Sprintf("%d%%", p.Progress), strings.Join(p.TechStack, ", ")})
		}
		return table.Row{"ID", "Title", "Status", "Progress", "Stack"}, rows, nil

	case catalog.DomainLaunchpad:
		items := filter.Apply(cat.Launchpad, q,
			func(i catalog.LaunchpadItem) string { return i.Category },
			func(i catalog.LaunchpadItem) string { return i.Name },
			func(i catalog.LaunchpadItem) string { return i.Description },
			filter.AnyOf(func(i catalog.LaunchpadItem) []string { return i.Tags }),
		)
		rows := make([]table.Row, 0, len(items))
		for _, i := range items {
			rows = append(rows, table.Row{i.ID, i.Name, i.Category, i.Status, i.URL})
		}
		return table.Row{"ID", "Name", "Category", "Status", "URL"}, rows, nil

	case catalog.DomainUsers:
		items := filter.Apply(cat.Users, q,
			func(u catalog.User) string { return u.Role },
			func(u catalog.User) string { return u.Name },
			func(u catalog.User) string { return u.Email },
			func(u catalog.User) string { return u.Department },
			filter.AnyOf(func(u catalog.User) []string { return u.Skills }),
		)
		rows := make([]table.Row, 0, len(items))
		for _, u := range items {
			rows = append(rows, table.Row{u.ID, u.Name, u.Role, u.Status, u.Email, u.Department})
		}
		return table.Row{"ID", "Name", "Role", "Status", "Email", "Department"}, rows, nil

	case catalog.DomainResources:
		items := filter.Apply(cat.Resources, q,
			func(r catalog.Resource) string { return r.Type },
			func(r catalog.Resource) string { return r.Title },
			func(r catalog.Resource) string { return r.Subtitle },
			func(r catalog.Resource) string { return r.Description },
			filter.AnyOf(func(r catalog.Resource) []string { return r.Tags }),
		)
		rows := make([]table.Row, 0, len(items))
		for _, r := range items {
			rows = append(rows, table.Row{r.ID, r.Title, r.Type, strings.Join(r.Tags, ", ")})
		}
		return table.Row{"ID", "Title", "Type", "Tags"}, rows, nil

	case catalog.DomainFiles:
		items := filter.Apply(cat.FileSources, q,
			func(f catalog.FileSource) string { return f.Status },
			func(f catalog.FileSource) string { return f.Name },
			func(f catalog.FileSource) string { return f.Provider },
			func(f catalog.FileSource) string { return f.Path },
		)
		rows := make([]table.Row, 0, len(items))
		for _, f := range items {
			rows = append(rows, table.Row{f.ID, f.Name, f.Provider, f.Status, f.Path, fmt.Sprintf("%.0f%%", f.Capacity.Percent())})
		}
		return table.Row{"ID", "Name", "Provider", "Status", "Path", "Used"}, rows, nil

	case catalog.DomainFolders:
		items := filter.Apply(cat.Folders, q,
			func(w catalog.WorkspaceItem) string { return w.Type },
			func(w catalog.WorkspaceItem) string { return w.Title },
		)
		rows := make([]table.Row, 0, len(items))
		for _, w := range items {
			rows = append(rows, table.Row{w.ID, w.Title, w.Type, w.Color.String()})
		}
		return table.Row{"ID", "Title", "Type", "Color"}, rows, nil
	}

	return nil, nil, fmt.Errorf("unknown domain %q (want %s)", domain, strings.Join(catalog.Domains(), ", "))
}

// renderRows writes rows in the requested format.
func renderRows(w io.Writer, header table.Row, rows []table.Row, format string) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)

	switch strings.ToLower(format) {
	case formatTable, "":
		if len(rows) == 0 {
			_, _ = fmt.Fprintln(w, "(0 rows)")
			return nil
		}
		t.Render()
		_, _ = fmt.Fprintf(w, "(%d rows)\n", len(rows))
	case formatMarkdown, "md":
		t.RenderMarkdown()
	case formatCSV:
		t.RenderCSV()
	default:
		return fmt.Errorf("unknown format %q (want table, markdown, or csv)", format)
	}
	return nil
}
