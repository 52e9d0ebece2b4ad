package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ichiban/horn"
	"github.com/ichiban/horn/term"
)

func newQueryCmd(f *flags) *cobra.Command {
	var (
		goal  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "query -e GOAL [files...]",
		Short: "Print the answers to a query, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			i, err := New(cfg, args)
			if err != nil {
				return err
			}

			sols, err := i.QueryContext(cmd.Context(), goal)
			if err != nil {
				return err
			}
			defer func() {
				_ = sols.Close()
			}()

			return printAll(cmd.OutOrStdout(), sols, limit)
		},
	}
	cmd.Flags().StringVarP(&goal, "eval", "e", "", "the query to run, ending with a period")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many answers, or 0 for all of them")
	_ = cmd.MarkFlagRequired("eval")
	return cmd
}

func printAll(w io.Writer, sols *horn.Solutions, limit int) error {
	c := 0
	for (limit <= 0 || c < limit) && sols.Next() {
		c++
		sol := sols.Current()
		a, ok := answer(&sol)
		if !ok {
			a = fmt.Sprint(true)
		}
		if _, err := fmt.Fprintf(w, "%s.\n", a); err != nil {
			return err
		}
	}
	if err := sols.Err(); err != nil {
		return err
	}
	if c == 0 {
		if _, err := fmt.Fprintf(w, "%t.\n", false); err != nil {
			return err
		}
	}
	return nil
}

// answer formats sol omitting the variables left unbound.
// It returns false if every variable is left unbound.
func answer(sol *horn.Solution) (string, bool) {
	ls := make([]string, 0, len(sol.Bindings))
	for _, b := range sol.Bindings {
		if v, ok := b.Value.(term.Variable); ok && string(v) == b.Name {
			continue
		}
		ls = append(ls, fmt.Sprintf("%s = %s", b.Name, b.Value))
	}
	if len(ls) == 0 {
		return "", false
	}
	return strings.Join(ls, ", "), true
}
