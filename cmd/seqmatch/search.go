package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coregx/seqmatch"
	"github.com/coregx/seqmatch/match"
)

func newSearchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search PATTERN [FILE...]",
		Short: "Find a pattern in sequences",
		Long: `Find every occurrence of a PROSITE-style pattern in the sequences read
from the given files, or from standard input.

Output columns: sequence, start, end, length, mismatches.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := seqmatch.DefaultConfig()
			config.MaxRecursionDepth = v.GetInt("max-recursion-depth")
			config.EnableRegex = !v.GetBool("no-regex")
			config.NonOverlappingRegex = v.GetBool("non-overlapping")

			p, err := seqmatch.CompileWithConfig(args[0], v.GetBool("protein"), v.GetInt("mismatches"), config)
			if err != nil {
				return err
			}
			recs, err := readInputs(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}

			var l match.List
			for _, r := range recs {
				if err := p.SearchTo(&l, r.name, r.seq, v.GetInt("begin")); err != nil {
					return fmt.Errorf("%s: %w", r.name, err)
				}
			}
			out := cmd.OutOrStdout()
			for _, m := range l.Items() {
				fmt.Fprintf(out, "%s\t%d\t%d\t%d\t%d\n", m.Name, m.Start, m.Last(), m.Length, m.Mismatches)
			}
			return nil
		},
	}
	addPatternFlags(cmd)
	cmd.Flags().Int("max-recursion-depth", seqmatch.DefaultConfig().MaxRecursionDepth, "recursion ceiling of the backtracking engine")
	cmd.Flags().Bool("no-regex", false, "search range patterns with the backtracker instead of the regex engine")
	cmd.Flags().Bool("non-overlapping", false, "report only non-overlapping hits for range patterns")
	return cmd
}
