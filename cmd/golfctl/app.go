package main

import (
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "golfctl",
		Usage: "golf trips maintenance tool",
		Commands: []*cli.Command{
			migrateCommand(),
			handicapCommand(),
			roundsCommand(),
		},
	}
}
