package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/pkordes/golf-trips/internal/domain"
	"github.com/pkordes/golf-trips/internal/handicap"
)

func handicapCommand() *cli.Command {
	return &cli.Command{
		Name:  "handicap",
		Usage: "compute a handicap index from a JSON array of rounds",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   `rounds file; "-" reads stdin`,
				Value:   "-",
			},
		},
		Action: func(c *cli.Context) error {
			rounds, err := readRounds(c, c.String("file"))
			if err != nil {
				return err
			}
			printRounds(c.App.Writer, rounds)
			return nil
		},
	}
}

// readRounds decodes and validates a rounds file. The first invalid round
// fails the whole file, naming its position.
func readRounds(c *cli.Context, path string) ([]domain.Round, error) {
	var r io.Reader = c.App.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var rounds []domain.Round
	if err := json.NewDecoder(r).Decode(&rounds); err != nil {
		return nil, fmt.Errorf("decode rounds: %w", err)
	}
	for i, rd := range rounds {
		if err := rd.Validate(); err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
	}
	return rounds, nil
}

// printRounds writes one line per round with its differential, flagging the
// rounds that count toward the index, then the index itself.
func printRounds(w io.Writer, rounds []domain.Round) {
	counted := countedSet(rounds)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDATE\tAGS\tCR\tSLOPE\tDIFF\tCOUNTED")
	for i, r := range rounds {
		mark := ""
		if counted[i] {
			mark = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%g\t%.1f\t%d\t%.1f\t%s\n",
			i+1, r.Date, r.AdjustedGrossScore, r.CourseRating, r.SlopeRating,
			handicap.RoundTenth(handicap.Differential(r)), mark)
	}
	_ = tw.Flush()

	idx, ok := handicap.Index(rounds)
	if !ok {
		fmt.Fprintln(w, "Handicap Index: unavailable (no rounds)")
		return
	}
	fmt.Fprintf(w, "Handicap Index: %.1f (best %d of %d)\n", idx, handicap.Counted(len(rounds)), len(rounds))
}

// countedSet marks the positions of the rounds Index averages: the lowest
// differentials, ties resolved by input order.
func countedSet(rounds []domain.Round) map[int]bool {
	order := make([]int, len(rounds))
	for i := range order {
		order[i] = i
	}
	diffs := make([]float64, len(rounds))
	for i, r := range rounds {
		diffs[i] = handicap.Differential(r)
	}
	sort.SliceStable(order, func(a, b int) bool { return diffs[order[a]] < diffs[order[b]] })

	set := make(map[int]bool, handicap.Counted(len(rounds)))
	for _, i := range order[:handicap.Counted(len(rounds))] {
		set[i] = true
	}
	return set
}
