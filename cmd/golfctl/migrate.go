package main

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v2"

	"github.com/pkordes/golf-trips/migrations"
)

var databaseURLFlag = &cli.StringFlag{
	Name:     "database-url",
	Usage:    "Postgres connection string",
	EnvVars:  []string{"DATABASE_URL"},
	Required: true,
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply, roll back or inspect database migrations",
		Flags: []cli.Flag{databaseURLFlag},
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply every pending migration",
				Action: withProvider(func(c *cli.Context, p *goose.Provider) error {
					results, err := p.Up(c.Context)
					if err != nil {
						return err
					}
					if len(results) == 0 {
						fmt.Fprintln(c.App.Writer, "no pending migrations")
					}
					for _, r := range results {
						fmt.Fprintf(c.App.Writer, "applied %05d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
					}
					return nil
				}),
			},
			{
				Name:  "down",
				Usage: "roll back the most recent migration",
				Action: withProvider(func(c *cli.Context, p *goose.Provider) error {
					r, err := p.Down(c.Context)
					if errors.Is(err, goose.ErrNoNextVersion) {
						fmt.Fprintln(c.App.Writer, "nothing to roll back")
						return nil
					}
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "rolled back %05d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration)
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "list migrations and whether each is applied",
				Action: withProvider(func(c *cli.Context, p *goose.Provider) error {
					statuses, err := p.Status(c.Context)
					if err != nil {
						return err
					}
					for _, s := range statuses {
						applied := "-"
						if !s.AppliedAt.IsZero() {
							applied = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
						}
						fmt.Fprintf(c.App.Writer, "%05d %-8s %-19s %s\n", s.Source.Version, s.State, applied, s.Source.Path)
					}
					return nil
				}),
			},
		},
	}
}

// withProvider opens the database named by --database-url, builds the goose
// provider and closes the connection when fn returns.
func withProvider(fn func(c *cli.Context, p *goose.Provider) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		db, err := sql.Open("pgx", c.String(databaseURLFlag.Name))
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		p, err := migrations.NewProvider(db)
		if err != nil {
			return err
		}
		return fn(c, p)
	}
}
