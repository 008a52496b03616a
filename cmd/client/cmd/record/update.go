package record

import (
	"github.com/spf13/cobra"

	"nceerrors/cmd/client/cmd/types"
	"nceerrors/cmd/client/cmd/view"
)

var (
	updateFields fieldFlags
	updatePage   int
)

var UpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Изменить запись",
	Long: `Загружает запись в режим редактирования, заменяет поля, заданные
флагами, и сохраняет запись целиком.`,
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

		ctx := cmd.Context()
		if err := env.App.Controller.LoadPage(ctx, updatePage); err != nil {
			view.Page(env.Out, env.App.Controller.State())
			return err
		}

		if err := env.App.EditByID(ctx, id); err != nil {
			view.Banner(env.Out, env.App.Controller.State().ErrMsg)
			return err
		}

		if err := updateFields.apply(cmd, env.App.Form, true); err != nil {
			return err
		}

		return submit(cmd, env)
	},
}

func init() {
	updateFields.register(UpdateCmd)
	UpdateCmd.Flags().IntVarP(&updatePage, "page", "p", 1, "страница, которую показать после сохранения")
}
