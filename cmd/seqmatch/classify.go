package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coregx/seqmatch"
)

func newClassifyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify PATTERN",
		Short: "Show the canonical form of a pattern and the algorithm chosen for it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := seqmatch.Compile(args[0], v.GetBool("protein"), v.GetInt("mismatches"))
			if err != nil {
				return err
			}
			start, end := p.Anchors()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pattern:    %s\n", p)
			fmt.Fprintf(out, "algorithm:  %s\n", p.Kind())
			fmt.Fprintf(out, "length:     %d\n", p.RealLength())
			fmt.Fprintf(out, "mismatches: %d\n", p.Mismatches())
			fmt.Fprintf(out, "anchors:    start=%t end=%t\n", start, end)
			return nil
		},
	}
	addPatternFlags(cmd)
	return cmd
}

// addPatternFlags registers the flags shared by classify and search.
func addPatternFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("protein", "p", false, "treat the pattern and sequences as protein")
	cmd.Flags().IntP("mismatches", "m", 0, "number of substitutions allowed")
}
