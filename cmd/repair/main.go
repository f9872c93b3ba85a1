package main

import (
	"context"
	"fmt"
	"os"

	"naprawa-udostepnien/internal/config"
	"naprawa-udostepnien/internal/database"
	"naprawa-udostepnien/internal/repair"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configDir string

func main() {
	root := &cobra.Command{
		Use:           "repair",
		Short:         "Krok aktualizacji: usuwa nadmiarowe udostępnienia linkowe",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config", "", "katalog z plikiem settings.yml")

	root.AddCommand(runCmd(), countCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Wykonuje pełny przebieg naprawy",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()

			store, cfg, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			step := repair.NewExposingLinks(
				repair.NewVersionGate(store),
				store,
				store,
				repair.NewNotificationDispatcher(store, nil),
				cfg.Repair.AdminGroup,
			)

			return runStep(ctx, step, logger)
		},
	}
}

func runStep(ctx context.Context, step repair.Step, logger *zap.Logger) error {
	logger.Info("Uruchamianie kroku naprawy", zap.String("step", step.Name()))
	return step.Run(ctx, repair.NewLogOutput(logger))
}

func countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Zlicza dotknięte udostępnienia bez żadnych zmian",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			total, err := store.CountExposingLinkShares(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
}

func openStore(ctx context.Context) (*database.Store, *config.Config, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("nie można wczytać konfiguracji: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DB.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("nie można połączyć się z bazą danych: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("nie można pingować bazy danych: %w", err)
	}

	return database.NewStore(pool), cfg, nil
}
