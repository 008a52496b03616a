package record

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"nceerrors/cmd/client/cmd/types"
	"nceerrors/cmd/client/cmd/view"
	"nceerrors/internal/app/client"
)

// fieldFlags флаги, общие для create и update
type fieldFlags struct {
	description string
	category    string
	overview    string
	date        string
	count       string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.description, "description", "", "описание ошибки")
	cmd.Flags().StringVar(&f.category, "category", "", "категория")
	cmd.Flags().StringVar(&f.overview, "type", "", "тип обзора клиента")
	cmd.Flags().StringVar(&f.date, "date", "", "дата ошибки (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.count, "count", "", "количество ошибок")
}

// apply переносит в форму флаги; onlyChanged - только явно заданные
func (f *fieldFlags) apply(cmd *cobra.Command, form *client.Form, onlyChanged bool) error {
	pairs := []struct {
		flag, field, value string
	}{
		{"description", client.FieldDescription, f.description},
		{"category", client.FieldCategory, f.category},
		{"type", client.FieldCustomerOverviewType, f.overview},
		{"date", client.FieldDate, f.date},
		{"count", client.FieldCount, f.count},
	}

	for _, p := range pairs {
		if onlyChanged && !cmd.Flags().Changed(p.flag) {
			continue
		}
		if err := form.SetField(p.field, p.value); err != nil {
			return err
		}
	}
	return nil
}

// submit проверяет обязательные поля и отправляет форму
func submit(cmd *cobra.Command, env *types.Env) error {
	form := env.App.Form

	if missing := form.Missing(); len(missing) > 0 {
		view.Missing(env.Out, missing)
		return fmt.Errorf("не заполнены обязательные поля")
	}

	err := form.Submit(cmd.Context())
	view.Page(env.Out, env.App.Controller.State())
	return err
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("некорректный ID записи: %q", arg)
	}
	return id, nil
}
