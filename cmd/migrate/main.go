// File: cmd/migrate/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"lightbnb/internal/database"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// 以下變數於測試時覆寫
var (
	runMigrations = database.RunMigrations
	rollbackAll   = database.RollbackAll
	exitFunc      = os.Exit
)

func newRootCmd() *cobra.Command {
	var dbURL string

	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the LightBnB schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dbURL, "database-url", "", "Postgres URL (預設讀取 DATABASE_URL)")

	resolveURL := func() (string, error) {
		if dbURL != "" {
			return dbURL, nil
		}
		if v := os.Getenv("DATABASE_URL"); v != "" {
			return v, nil
		}
		return "", errors.New("DATABASE_URL 未設定，請使用 --database-url 或環境變數")
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				url, err := resolveURL()
				if err != nil {
					return err
				}
				if err := runMigrations(url); err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				url, err := resolveURL()
				if err != nil {
					return err
				}
				if err := rollbackAll(url); err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations rolled back")
				return nil
			},
		},
	)
	return rootCmd
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	_ = godotenv.Load()
	if code := execute(os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		exitFunc(code)
	}
}
