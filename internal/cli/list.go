package cli

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoview/internal/fetch"
	"github.com/idilsaglam/todoview/internal/model"
	"github.com/idilsaglam/todoview/internal/ui"
)

const titleWidth = 48

func newListCmd(a *app) *cobra.Command {
	var (
		filter string
		group  bool
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the todo collection",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := model.ParseFilter(filter)
			if err != nil {
				return usageError{err}
			}

			var all, visible []model.Item
			err = fetch.Collection(cmd.Context(), a.svc, fetch.Sinks{
				Todos:    func(items []model.Item) { all = items },
				Filtered: func(items []model.Item) { visible = f.Apply(items) },
			})
			if err != nil {
				return err
			}

			var lines []string
			if group {
				lines = groupLines(all, visible)
			} else {
				lines = flatLines(all, visible, f)
			}
			ui.WritePanel(a.opt.Stdout, lines)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "Show all, open or completed todos.")
	cmd.Flags().BoolVarP(&group, "group", "g", a.opt.Group, "Group output by pending/done.")
	return cmd
}

func header(all []model.Item) []string {
	t := ui.Current()
	done := 0
	for _, it := range all {
		if it.Completed {
			done++
		}
	}
	return []string{
		ui.C(t.Title, fmt.Sprintf("Todos (%d open, %d completed)", len(all)-done, done)),
		ui.ProgressBar(done, len(all), 24),
		"",
	}
}

// rows aligns items with uitable, then styles each finished line so escape
// codes don't skew the column widths.
func rows(items []model.Item) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, "(none)")}
	}
	t := ui.Current()
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = titleWidth
	for _, it := range items {
		tbl.AddRow(fmt.Sprintf("#%d", it.ID), t.Box(it.Completed), ui.Truncate(it.Title, titleWidth))
	}
	lines := strings.Split(tbl.String(), "\n")
	for i, it := range items {
		if i >= len(lines) {
			break
		}
		if it.Completed {
			lines[i] = ui.C(t.Success, lines[i])
		}
	}
	return lines
}

func flatLines(all, visible []model.Item, f model.Filter) []string {
	lines := header(all)
	lines = append(lines, filterLine(f), "")
	lines = append(lines, rows(visible)...)
	lines = append(lines, "", ui.C(ui.Current().Muted, "Tip: `todoview show <id>` prints one todo"))
	return lines
}

func groupLines(all, visible []model.Item) []string {
	t := ui.Current()
	open := model.FilterOpen.Apply(visible)
	done := model.FilterCompleted.Apply(visible)

	lines := header(all)
	lines = append(lines, ui.C(t.Pending, "Pending"))
	lines = append(lines, rows(open)...)
	lines = append(lines, "", ui.C(t.Success, "Done"))
	lines = append(lines, rows(done)...)
	return lines
}

func filterLine(active model.Filter) string {
	t := ui.Current()
	parts := make([]string, 0, len(model.Filters))
	for _, f := range model.Filters {
		if f == active {
			parts = append(parts, ui.C(t.Accent, "["+f.Label()+"]"))
		} else {
			parts = append(parts, ui.C(t.Muted, f.Label()))
		}
	}
	return "Filter: " + strings.Join(parts, "  ")
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unexpected argument: %s", args[0])
	}
	return nil
}
