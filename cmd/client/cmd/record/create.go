// cmd/client/cmd/record/create.go
package record

import (
	"github.com/spf13/cobra"

	"nceerrors/cmd/client/cmd/types"
)

var createFields fieldFlags

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать запись",
	Long: `Создание новой записи об ошибке.

Все пять полей обязательны:
  --description  описание ошибки
  --category     категория
  --type         тип обзора клиента
  --date         дата (YYYY-MM-DD, DD-MM-YYYY или DD/MM/YYYY)
  --count        количество`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := types.FromCommand(cmd)
		if err != nil {
			return err
		}

		if err := createFields.apply(cmd, env.App.Form, false); err != nil {
			return err
		}

		return submit(cmd, env)
	},
}

func init() {
	createFields.register(CreateCmd)
}
