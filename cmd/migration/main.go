package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/urfave/cli/v2"

	"github.com/riskibarqy/pool-league/internal/app"
	"github.com/riskibarqy/pool-league/internal/config"
	"github.com/riskibarqy/pool-league/internal/infrastructure/repository/sqlite"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	cliApp := &cli.App{
		Name:  "migration",
		Usage: "manage the league and fantasy SQLite schemas",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "store",
				Value: string(sqlite.StoreLeague),
				Usage: "schema to operate on: league or fantasy",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "database file; defaults to LEAGUE_DB_PATH or FANTASY_DB_PATH",
			},
			&cli.DurationFlag{
				Name:  "busy-timeout",
				Value: 5 * time.Second,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply every pending migration",
				Action: withMigrator(func(_ *cli.Context, m *migrate.Migrate) error {
					if err := ignoreNoChange(m.Up()); err != nil {
						return err
					}
					log.Printf("migrations applied")
					return nil
				}),
			},
			{
				Name:      "down",
				Usage:     "roll back N migrations",
				ArgsUsage: "[steps]",
				Action: withMigrator(func(c *cli.Context, m *migrate.Migrate) error {
					steps, err := parseSteps(c.Args().First())
					if err != nil {
						return err
					}
					if err := ignoreNoChange(m.Steps(-steps)); err != nil {
						return err
					}
					log.Printf("rolled back %d migration(s)", steps)
					return nil
				}),
			},
			{
				Name:  "version",
				Usage: "print the current schema version",
				Action: withMigrator(func(_ *cli.Context, m *migrate.Migrate) error {
					version, dirty, err := m.Version()
					if errors.Is(err, migrate.ErrNilVersion) {
						fmt.Println("version: none")
						fmt.Println("dirty: false")
						return nil
					}
					if err != nil {
						return fmt.Errorf("read version: %w", err)
					}
					fmt.Printf("version: %d\n", version)
					fmt.Printf("dirty: %t\n", dirty)
					return nil
				}),
			},
			{
				Name:      "force",
				Usage:     "set the schema version without running migrations",
				ArgsUsage: "<version>",
				Action: withMigrator(func(c *cli.Context, m *migrate.Migrate) error {
					if c.Args().Len() < 1 {
						return fmt.Errorf("force requires a version argument")
					}
					version, err := parseVersion(c.Args().First())
					if err != nil {
						return err
					}
					if err := m.Force(version); err != nil {
						return fmt.Errorf("force version %d: %w", version, err)
					}
					log.Printf("forced version to %d", version)
					return nil
				}),
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func withMigrator(fn func(*cli.Context, *migrate.Migrate) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		store, err := parseStore(c.String("store"))
		if err != nil {
			return err
		}
		path := resolveDBPath(store, c.String("db"))
		if path == "" {
			return fmt.Errorf("no database path for store %s", store)
		}

		db, err := sql.Open("sqlite", app.SQLiteDSN(path, c.Duration("busy-timeout")))
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}

		m, err := sqlite.NewMigrator(db, store)
		if err != nil {
			_ = db.Close()
			return err
		}
		defer closeMigrator(m)

		log.Printf("store=%s db=%s", store, path)
		return fn(c, m)
	}
}

func parseStore(raw string) (sqlite.Store, error) {
	switch store := sqlite.Store(strings.ToLower(strings.TrimSpace(raw))); store {
	case sqlite.StoreLeague, sqlite.StoreFantasy:
		return store, nil
	default:
		return "", fmt.Errorf("invalid store %q: valid values are %s, %s", raw, sqlite.StoreLeague, sqlite.StoreFantasy)
	}
}

func resolveDBPath(store sqlite.Store, flagValue string) string {
	if path := strings.TrimSpace(flagValue); path != "" {
		return path
	}

	key, fallback := "LEAGUE_DB_PATH", "data/league.db"
	if store == sqlite.StoreFantasy {
		key, fallback = "FANTASY_DB_PATH", "data/fantasy.db"
	}
	if path := strings.TrimSpace(os.Getenv(key)); path != "" {
		return path
	}
	return fallback
}

func parseSteps(raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", raw, err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < -1 {
		return 0, fmt.Errorf("version must be >= -1")
	}
	return value, nil
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Printf("no migration changes")
		return nil
	}
	return err
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Printf("close migration source: %v", srcErr)
	}
	if dbErr != nil {
		log.Printf("close migration db: %v", dbErr)
	}
}
