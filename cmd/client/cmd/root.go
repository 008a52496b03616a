// cmd/client/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nceerrors/cmd/client/cmd/browse"
	"nceerrors/cmd/client/cmd/prompt"
	"nceerrors/cmd/client/cmd/record"
	"nceerrors/cmd/client/cmd/types"
	"nceerrors/internal/app/client"
	"nceerrors/internal/app/client/config"
	"nceerrors/internal/utils/logger"
)

var (
	cfgFile   string
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "nceerrors",
	Short: "NCE Error Management - клиент для записей об ошибках",
	Long: `nceerrors — консольный клиент сервиса NCE Error Management.

Показывает записи об ошибках постранично, создает, редактирует и
удаляет их через REST API сервиса.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	v := viper.GetViper()
	if serverURL != "" {
		v.Set("API_BASE", serverURL)
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log := logger.WithLevel(cfg.Env, level, os.Stderr)

	term := prompt.New(os.Stdin, os.Stdout)

	app, err := client.New(cfg, log, term)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	log.Debug("client configured", "api_base", cfg.APIBase, "page_limit", cfg.PageLimit)

	cmd.SetContext(types.WithEnv(cmd.Context(), &types.Env{
		App:  app,
		Term: term,
		Out:  os.Stdout,
	}))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (по умолчанию ~/.nceerrors/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервиса, например http://127.0.0.1:5000")

	rootCmd.AddCommand(
		record.ListCmd,
		record.CreateCmd,
		record.UpdateCmd,
		record.DeleteCmd,
		browse.BrowseCmd,
		healthCmd,
	)
}
