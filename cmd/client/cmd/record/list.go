// cmd/client/cmd/record/list.go
package record

import (
	"github.com/spf13/cobra"

	"nceerrors/cmd/client/cmd/types"
	"nceerrors/cmd/client/cmd/view"
)

var listPage int

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Страница записей",
	Long: `Показывает одну страницу записей об ошибках.

Размер страницы задается PAGE_LIMIT. Номер страницы вне диапазона
приводится сервером к ближайшему допустимому.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := types.FromCommand(cmd)
		if err != nil {
			return err
		}

		err = env.App.Controller.LoadPage(cmd.Context(), listPage)
		view.Page(env.Out, env.App.Controller.State())
		return err
	},
}

func init() {
	ListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "номер страницы")
}
