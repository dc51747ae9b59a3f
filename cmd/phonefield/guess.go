package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vortex-fintech/go-phone/phone"
)

type guessResult struct {
	Input    string `json:"input"`
	Value    string `json:"value"`
	Country  string `json:"country,omitempty"`
	Name     string `json:"name,omitempty"`
	DialCode string `json:"dial_code,omitempty"`
}

func newGuessCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "guess VALUE...",
		Short: "Format each value and print the country it matches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, in := range args {
				r := guessResult{Input: in, Value: a.engine.Next("", in, phone.Insertion)}
				if c, ok := a.engine.Guess(r.Value); ok {
					r.Country, r.Name, r.DialCode = c.ISO2, c.Name, c.DialCode
				}
				if err := enc.Encode(r); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newCountriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List the country table in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ISO2\tDIAL\tFORMAT\tNAME")
			for _, c := range a.engine.Table().Countries() {
				fmt.Fprintf(tw, "%s\t+%s\t%s\t%s\n", c.ISO2, c.DialCode, c.Format, c.Name)
			}
			return tw.Flush()
		},
	}
}
