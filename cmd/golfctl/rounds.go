package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/pkordes/golf-trips/internal/domain"
	"github.com/pkordes/golf-trips/internal/kv"
	"github.com/pkordes/golf-trips/internal/roundstore"
)

var (
	sqlitePathFlag = &cli.StringFlag{
		Name:    "sqlite",
		Usage:   "SQLite round store file",
		EnvVars: []string{"SQLITE_PATH"},
		Value:   "rounds.db",
	}
	ownerFlag = &cli.StringFlag{
		Name:     "owner",
		Usage:    "owner key, player:<id> or trip:<uuid>",
		Required: true,
	}
)

// roundsCommand manages collections in a SQLite round store, the backend a
// server started with ROUND_STORE=sqlite uses.
func roundsCommand() *cli.Command {
	return &cli.Command{
		Name:  "rounds",
		Usage: "inspect or edit round collections in a SQLite round store",
		Flags: []cli.Flag{sqlitePathFlag, ownerFlag},
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "print the owner's rounds and handicap index",
				Action: withRoundStore(func(c *cli.Context, s *roundstore.Store, owner domain.OwnerKey) error {
					rounds, err := s.GetAll(c.Context, owner)
					if err != nil {
						return err
					}
					printRounds(c.App.Writer, rounds)
					return nil
				}),
			},
			{
				Name:  "add",
				Usage: "append one round",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "score", Usage: "adjusted gross score", Required: true},
					&cli.Float64Flag{Name: "rating", Usage: "course rating", Required: true},
					&cli.IntFlag{Name: "slope", Usage: "slope rating", Required: true},
					&cli.StringFlag{Name: "date", Usage: "date played, YYYY-MM-DD", Required: true},
				},
				Action: withRoundStore(func(c *cli.Context, s *roundstore.Store, owner domain.OwnerKey) error {
					r := domain.Round{
						AdjustedGrossScore: c.Float64("score"),
						CourseRating:       c.Float64("rating"),
						SlopeRating:        c.Int("slope"),
						Date:               c.String("date"),
					}
					if err := r.Validate(); err != nil {
						return err
					}
					if err := s.Save(c.Context, owner, r); err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "saved round for %s\n", owner)
					return nil
				}),
			},
			{
				Name:  "import",
				Usage: "append every round from a JSON array file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: `rounds file; "-" reads stdin`, Value: "-"},
				},
				Action: withRoundStore(func(c *cli.Context, s *roundstore.Store, owner domain.OwnerKey) error {
					rounds, err := readRounds(c, c.String("file"))
					if err != nil {
						return err
					}
					for _, r := range rounds {
						if err := s.Save(c.Context, owner, r); err != nil {
							return err
						}
					}
					fmt.Fprintf(c.App.Writer, "imported %d rounds for %s\n", len(rounds), owner)
					return nil
				}),
			},
			{
				Name:  "clear",
				Usage: "delete the owner's whole collection",
				Action: withRoundStore(func(c *cli.Context, s *roundstore.Store, owner domain.OwnerKey) error {
					if err := s.Clear(c.Context, owner); err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "cleared rounds for %s\n", owner)
					return nil
				}),
			},
		},
	}
}

// withRoundStore parses --owner, opens the SQLite file and closes it when fn
// returns. Unreadable collections are reported on the app's error writer.
func withRoundStore(fn func(c *cli.Context, s *roundstore.Store, owner domain.OwnerKey) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		owner, err := domain.ParseOwnerKey(c.String(ownerFlag.Name))
		if err != nil {
			return err
		}
		backend, err := kv.OpenSQLite(c.Context, c.String(sqlitePathFlag.Name))
		if err != nil {
			return err
		}
		defer backend.Close()

		logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: slog.LevelWarn}))
		return fn(c, roundstore.New(backend, logger), owner)
	}
}
