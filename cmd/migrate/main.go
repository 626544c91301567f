package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/adsmaster-api/infrastructure/database/postgres"
	"github.com/vfg2006/adsmaster-api/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Gerencia as migrações do banco de dados do adsmaster",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Aplica todas as migrações pendentes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dsn, err := loadDSN()
				if err != nil {
					return err
				}
				return postgres.MigrateUp(dsn)
			},
		},
		&cobra.Command{
			Use:   "down [passos]",
			Short: "Desfaz as últimas N migrações (padrão 1)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps, err := parseSteps(args)
				if err != nil {
					return err
				}

				dsn, err := loadDSN()
				if err != nil {
					return err
				}

				if err := postgres.MigrateDown(dsn, steps); err != nil {
					return err
				}
				logrus.Infof("%d migração(ões) desfeita(s)", steps)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Mostra a versão atual das migrações",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				dsn, err := loadDSN()
				if err != nil {
					return err
				}

				status, err := postgres.GetMigrationStatus(dsn)
				if err != nil {
					return err
				}

				if !status.Applied {
					fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma migração aplicada")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Versão: %d (dirty: %t)\n", status.Version, status.Dirty)
				return nil
			},
		},
	)

	return root
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(args[0])
	if err != nil || steps <= 0 {
		return 0, fmt.Errorf("quantidade de passos inválida: %q", args[0])
	}
	return steps, nil
}

func loadDSN() (string, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return "", err
	}
	return cfg.Database.DSN, nil
}
