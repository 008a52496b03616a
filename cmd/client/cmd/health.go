package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nceerrors/cmd/client/cmd/types"
	"nceerrors/cmd/client/cmd/view"
	"nceerrors/internal/app/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Проверить доступность сервиса",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := types.FromCommand(cmd)
		if err != nil {
			return err
		}

		h, err := env.App.HealthCheck(cmd.Context())
		if err != nil {
			view.Banner(env.Out, "Service unavailable: "+client.Reason(err))
			return err
		}

		if !h.OK {
			return fmt.Errorf("сервис %q сообщил о проблеме", h.Service)
		}

		color.New(color.FgGreen).Fprintf(env.Out, "✓ %s is up (%s)\n", h.Service, env.App.Config().APIBase)
		return nil
	},
}
