package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coregx/seqmatch/log"
	"github.com/coregx/seqmatch/restrict"
)

func newRestrictCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restrict [FILE...]",
		Short: "Find restriction enzyme sites and cut positions",
		Long: `Find the sites of the enzymes in an enzyme table on both strands of the
sequences read from the given files, or from standard input.

Enzyme table lines hold: name pattern len ncuts blunt c1 c2 c3 c4.

Output columns: sequence, enzyme, start, strand, cut1, cut2, cut3, cut4,
isoschizomers. A fragment length line follows each sequence with --fragments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enzymes, err := loadEnzymes(v.GetString("enzymes"), v.GetStringSlice("only"))
			if err != nil {
				return err
			}

			opts := restrict.DefaultOptions()
			opts.Circular = v.GetBool("circular")
			opts.AmbiguityAllowed = !v.GetBool("no-ambiguity")
			opts.MinCuts = v.GetInt("min-cuts")
			opts.MaxCuts = v.GetInt("max-cuts")
			opts.AllowBlunt = !v.GetBool("no-blunt")
			opts.AllowSticky = !v.GetBool("no-sticky")
			opts.AllIsoschizomers = v.GetBool("all-isoschizomers")
			opts.SortByName = v.GetBool("sort-by-name")
			opts.Begin = v.GetInt("begin")
			opts.Concurrency = v.GetInt("jobs")

			scanner, err := restrict.NewScanner(enzymes, opts)
			if err != nil {
				return err
			}
			recs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range recs {
				hits, err := scanner.Scan(cmd.Context(), r.name, r.seq)
				if err != nil {
					return fmt.Errorf("%s: %w", r.name, err)
				}
				for _, h := range hits {
					strand := "+"
					if !h.Forward {
						strand = "-"
					}
					cut3, cut4 := ".", "."
					if h.NCuts == 4 {
						cut3, cut4 = fmt.Sprint(h.Cut3), fmt.Sprint(h.Cut4)
					}
					iso := "."
					if len(h.Isoschizomers) > 0 {
						iso = strings.Join(h.Isoschizomers, ",")
					}
					fmt.Fprintf(out, "%s\t%s\t%d\t%s\t%d\t%d\t%s\t%s\t%s\n",
						r.name, h.Code, h.Start, strand, h.Cut1, h.Cut2, cut3, cut4, iso)
				}
				if v.GetBool("fragments") {
					frags := restrict.Fragments(hits, len(r.seq), opts.Circular, opts.Begin)
					fmt.Fprintf(out, "%s\tfragments\t%s\n", r.name, strings.Trim(fmt.Sprint(frags), "[]"))
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringP("enzymes", "e", "", "enzyme table file (required)")
	f.StringSlice("only", nil, "restrict the scan to these enzyme names")
	f.BoolP("circular", "c", false, "treat sequences as circular")
	f.Bool("no-ambiguity", false, "skip enzymes whose sites contain ambiguity codes")
	f.Int("min-cuts", 1, "minimum number of sites an enzyme must have")
	f.Int("max-cuts", restrict.DefaultOptions().MaxCuts, "maximum number of sites an enzyme may have")
	f.Bool("no-blunt", false, "skip enzymes leaving blunt ends")
	f.Bool("no-sticky", false, "skip enzymes leaving sticky ends")
	f.Bool("all-isoschizomers", false, "report isoschizomers separately")
	f.Bool("sort-by-name", false, "order hits by enzyme name")
	f.Bool("fragments", false, "print fragment lengths")
	f.IntP("jobs", "j", 0, "enzymes scanned in parallel (0 = one per CPU)")
	return cmd
}

// loadEnzymes reads the enzyme table, keeping only the named enzymes when
// only is not empty. Unparsable lines are logged and skipped.
func loadEnzymes(path string, only []string) ([]restrict.Enzyme, error) {
	if path == "" {
		return nil, errors.New("an enzyme table is required (--enzymes)")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	enzymes, err := restrict.ReadTable(f)
	if err != nil {
		var te *restrict.TableError
		if !errors.As(err, &te) {
			return nil, err
		}
		log.Warnf("seqmatch: %s: %v", path, err)
	}
	if len(only) == 0 {
		return enzymes, nil
	}
	want := make(map[string]bool, len(only))
	for _, name := range only {
		want[strings.ToLower(name)] = true
	}
	var out []restrict.Enzyme
	for _, e := range enzymes {
		if want[strings.ToLower(e.Name)] {
			out = append(out, e)
		}
	}
	return out, nil
}
