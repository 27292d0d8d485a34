package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoview/internal/fetch"
	"github.com/idilsaglam/todoview/internal/model"
	"github.com/idilsaglam/todoview/internal/store/jsonstore"
	"github.com/idilsaglam/todoview/internal/ui"
)

func newExportCmd(a *app) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Save the collection as a JSON file readable with --file",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usagef("export: want exactly one path, got %d args", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := model.ParseFilter(filter)
			if err != nil {
				return usageError{err}
			}
			var visible []model.Item
			err = fetch.Collection(cmd.Context(), a.svc, fetch.Sinks{
				Filtered: func(items []model.Item) { visible = f.Apply(items) },
			})
			if err != nil {
				return err
			}
			if err := jsonstore.New(args[0]).Save(visible); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			ui.OK(a.opt.Stdout, fmt.Sprintf("exported %d todos to %s", len(visible), args[0]))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "Export all, open or completed todos.")
	return cmd
}
