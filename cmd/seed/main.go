package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"nceerrors/internal/app/server/config"
	"nceerrors/internal/domain/errorrecord"
	"nceerrors/internal/infrastructure/importer"
	"nceerrors/internal/infrastructure/storage"
	"nceerrors/internal/utils/logger"
)

var (
	file  string
	sheet string
	fake  int
	seed  int64
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Загрузить записи об ошибках в хранилище",
	Long: `Загружает записи из листа Excel (--file, --sheet) или генерирует
тестовые записи (--fake N). Хранилище берется из конфигурации сервера
(STORAGE_DRIVER, DATABASE_URL, SQLITE_PATH).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if (file == "") == (fake <= 0) {
		return fmt.Errorf("укажите либо --file, либо --fake N")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rows, dropped, err := loadRows(log)
	if err != nil {
		return err
	}

	st, err := storage.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	service := errorrecord.NewService(st.Records(), nil, log)
	res, err := service.Import(ctx, rows)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d records, skipped %d, dropped while reading %d\n", res.Imported, res.Skipped, dropped)
	return nil
}

func loadRows(log *slog.Logger) ([]errorrecord.Input, int, error) {
	if fake > 0 {
		log.Info("generating fake records", slog.Int("count", fake), slog.Int64("seed", seed))
		return importer.Fake(fake, seed, time.Now()), 0, nil
	}

	log.Info("reading workbook", slog.String("file", file), slog.String("sheet", sheet))
	res, err := importer.ParseFile(file, sheet)
	if err != nil {
		return nil, 0, err
	}
	if res.Dropped > 0 {
		log.Warn("rows with missing values dropped", slog.Int("dropped", res.Dropped))
	}
	return res.Rows, res.Dropped, nil
}

func init() {
	rootCmd.Flags().StringVarP(&file, "file", "f", "", "файл .xlsx")
	rootCmd.Flags().StringVar(&sheet, "sheet", importer.DefaultSheet, "имя листа")
	rootCmd.Flags().IntVar(&fake, "fake", 0, "сгенерировать N тестовых записей")
	rootCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "seed генератора для --fake")
}
