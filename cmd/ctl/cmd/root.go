package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"characterdex/internal/config"
	"characterdex/internal/utils/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

var (
	cfgFile string
	dbPath  string
	cfg     *config.Config
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "characterdex-ctl",
	Short: "Администрирование каталога персонажей",
	Long: `characterdex-ctl обслуживает базу каталога: переносит MySQL-дамп
в SQLite, применяет миграции схемы и заводит учетную запись администратора.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if dbPath != "" {
		cfg.DB.Path = dbPath
	}

	// Служебные логи CLI идут в stderr, чтобы не смешиваться с выводом команд.
	log = logger.New(cfg.Env,
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithFile(cfg.Logger.File),
		logger.WithLevel(cfg.Logger.LogLevel),
	)
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}
	return config.Load()
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "путь к файлу SQLite (по умолчанию DATABASE_PATH)")

	rootCmd.AddCommand(importCmd, provisionCmd, migrateCmd)
}
