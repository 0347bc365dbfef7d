package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/altinukshini/fieldops/internal/filter"
	"github.com/altinukshini/fieldops/internal/page"
)

func newStatsCmd(c *cli) *cobra.Command {
	var search string
	var choices map[string]string

	cmd := &cobra.Command{
		Use:   "stats <page>",
		Short: "Print a page's summary statistics",
		Long: `Print the summary statistics of one page (clients, jobs, quotes,
services or map), optionally after applying a search and filters.

Exits non-zero when a numeric field cannot be parsed.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: page.Names,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, _, err := c.loadDataset()
			if err != nil {
				return err
			}
			p, ok := page.Find(page.Build(ds, c.logger), args[0])
			if !ok {
				return fmt.Errorf("unknown page %q (want one of %s)", args[0], strings.Join(page.Names, ", "))
			}

			st := p.State().WithSearch(search)
			for field, value := range choices {
				if st, err = withFilter(st, field, value); err != nil {
					return fmt.Errorf("page %s: %w", args[0], err)
				}
			}
			p.SetFilter(st)

			writeStats(cmd.OutOrStdout(), p)
			return p.Summary().Err
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Free-text search")
	cmd.Flags().StringToStringVar(&choices, "filter", nil, "Filter as field=value, e.g. status=active; multi-select filters take a comma-separated list")
	return cmd
}

// withFilter sets field to value on st. A multi-select field takes a
// comma-separated list of options, or "all".
func withFilter(st filter.State, field, value string) (filter.State, error) {
	if _, ok := st.Choice(field); ok {
		return st.WithChoice(field, value), nil
	}
	if st.Multi == nil || st.Multi.Field != field {
		return st, fmt.Errorf("no %q filter", field)
	}
	if strings.EqualFold(value, filter.All) {
		return st.SetMulti(st.Multi.Options...), nil
	}
	var values []string
	for _, v := range strings.Split(value, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if !slices.Contains(st.Multi.Options, v) {
			return st, fmt.Errorf("unknown %s %q (want one of %s)", field, v, strings.Join(st.Multi.Options, ", "))
		}
		values = append(values, v)
	}
	return st.SetMulti(values...), nil
}

func writeStats(w io.Writer, p page.Controller) {
	def := p.Definition()
	sum := p.Summary()

	fmt.Fprintln(w, def.Title)
	for _, m := range sum.Totals.Metrics() {
		fmt.Fprintf(w, "  %-18s %s\n", m.Label+":", m.String())
	}
	for _, m := range sum.Stats.Metrics() {
		fmt.Fprintf(w, "  %-18s %s\n", m.Label+":", m.String())
	}

	if sum.Counts != nil {
		fmt.Fprintln(w, "By "+def.CountField)
		fmt.Fprintf(w, "  %-18s %d\n", filter.All+":", sum.Counts[filter.All])
		for _, o := range def.CountOptions {
			fmt.Fprintf(w, "  %-18s %d\n", o+":", sum.Counts[o])
		}
	}

	if len(sum.Top) > 0 {
		fmt.Fprintln(w, "Top "+def.TopField)
		for i, r := range sum.Top {
			v, _ := r.Field(def.TopField)
			fmt.Fprintf(w, "  %d. %s (%s)\n", i+1, recordName(r.SearchFields()), v)
		}
	}
}

func recordName(fields []string) string {
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
