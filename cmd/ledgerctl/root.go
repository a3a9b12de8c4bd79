package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/print-shop/ledger/config"
	"github.com/print-shop/ledger/internal/infra/db"
	"github.com/print-shop/ledger/internal/infra/dependency"
)

// cli carries the state shared by every subcommand.
type cli struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Administer the print-shop ledger",
		Long: `ledgerctl runs schema migrations and produces ledger reports directly
against the ledger database, using the same configuration keys as the API.

Flags override environment variables, which override built-in defaults.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.initConfig,
	}

	flags := cmd.PersistentFlags()
	flags.String("database-driver", "", "database driver (postgres, sqlite)")
	flags.String("database-url", "", "database connection URL or sqlite DSN")
	flags.String("redis-url", "", "redis URL for the shared write lock (in-process lock when empty)")
	flags.String("timezone", "", "IANA timezone that defines calendar months")
	flags.Int("top-expenses", 0, "default number of top expenses in summaries")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	// Flag name -> configuration key. Keys map to the API environment
	// variables by upper-casing and replacing dots with underscores.
	bindings := map[string]string{
		"database-driver": "database.driver",
		"database-url":    "database.url",
		"redis-url":       "redis.url",
		"timezone":        "ledger.timezone",
		"top-expenses":    "report.top.expenses",
		"log-level":       "log.level",
	}
	for flag, key := range bindings {
		_ = c.v.BindPFlag(key, flags.Lookup(flag))
	}

	cmd.AddCommand(c.migrateCmd())
	cmd.AddCommand(c.summaryCmd())
	cmd.AddCommand(c.exportCmd())
	cmd.AddCommand(c.periodsCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func (c *cli) initConfig(cmd *cobra.Command, _ []string) error {
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()

	// Defaults come from the API configuration.
	defaults := config.Load()
	c.v.SetDefault("database.driver", defaults.Database.Driver)
	c.v.SetDefault("database.url", defaults.Database.URL)
	c.v.SetDefault("redis.url", defaults.Redis.URL)
	c.v.SetDefault("ledger.timezone", defaults.Ledger.Timezone)
	c.v.SetDefault("report.top.expenses", defaults.Report.TopExpenses)

	return setupLogging(cmd.ErrOrStderr(), c.v.GetString("log.level"))
}

// config resolves the effective configuration.
func (c *cli) config() *config.Config {
	cfg := config.Load()
	cfg.Database.Driver = c.v.GetString("database.driver")
	cfg.Database.URL = c.v.GetString("database.url")
	cfg.Redis.URL = c.v.GetString("redis.url")
	cfg.Ledger.Timezone = c.v.GetString("ledger.timezone")
	cfg.Report.TopExpenses = c.v.GetInt("report.top.expenses")
	return cfg
}

// open connects to the database and wires the ledger use cases.
// The returned closer releases both.
func (c *cli) open(ctx context.Context) (*dependency.Injector, func(), error) {
	cfg := c.config()

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.Default()
	injector, err := dependency.NewInjector(ctx, cfg, database.DB(), logger)
	if err != nil {
		_ = database.Close()
		return nil, nil, err
	}

	return injector, func() {
		_ = injector.Close()
		_ = database.Close()
	}, nil
}

func setupLogging(w io.Writer, level string) error {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	if w == nil {
		w = os.Stderr
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel})))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ledgerctl %s\n", version)
		},
	}
}
