package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoview/internal/model"
	"github.com/idilsaglam/todoview/internal/service"
	"github.com/idilsaglam/todoview/internal/ui"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one todo",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usagef("show: want exactly one id, got %d args", len(args))
			}
			if _, err := parseID(args[0]); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID(args[0])
			it, err := a.svc.Todo(cmd.Context(), id)
			if err != nil {
				return err
			}
			if it == nil {
				return service.ErrNotFound
			}
			ui.WritePanel(a.opt.Stdout, detailLines(*it))
			return nil
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, usagef("invalid id %q", s)
	}
	return id, nil
}

func detailLines(it model.Item) []string {
	t := ui.Current()
	status := ui.C(t.Pending, it.Status())
	if it.Completed {
		status = ui.C(t.Success, it.Status())
	}
	return []string{
		ui.C(t.Title, "Todo Details"),
		"",
		fmt.Sprintf("ID:      %d", it.ID),
		fmt.Sprintf("Title:   %s", it.Title),
		fmt.Sprintf("User ID: %d", it.UserID),
		"Status:  " + status,
	}
}
