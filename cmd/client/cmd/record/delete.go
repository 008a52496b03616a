package record

import (
	"fmt"

	"github.com/spf13/cobra"

	"nceerrors/cmd/client/cmd/prompt"
	"nceerrors/cmd/client/cmd/types"
	"nceerrors/cmd/client/cmd/view"
)

var (
	deleteYes  bool
	deletePage int
)

var DeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Удалить запись",
	Long: `Удаляет запись после подтверждения и показывает страницу, на которой
оказался бы пользователь: если страница опустела, показывается предыдущая.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := types.FromCommand(cmd)
		if err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		// без терминала отказ от подтверждения выглядел бы как успех
		if !deleteYes && !env.Term.Interactive() {
			return prompt.ErrNotInteractive
		}

		ctx := cmd.Context()
		ctrl := env.App.Controller

		// страница и total нужны до удаления
		if err := ctrl.LoadPage(ctx, deletePage); err != nil {
			view.Page(env.Out, ctrl.State())
			return err
		}

		env.Term.AssumeYes = deleteYes
		deleted, err := ctrl.Delete(ctx, id)
		if !deleted && err == nil {
			fmt.Fprintln(env.Out, "Deletion cancelled")
			return nil
		}

		view.Page(env.Out, ctrl.State())
		return err
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "не спрашивать подтверждение")
	DeleteCmd.Flags().IntVarP(&deletePage, "page", "p", 1, "страница, на которой находится запись")
}
