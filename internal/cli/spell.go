package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ustar/pkg/dbg"
	errs "github.com/matzehuels/ustar/pkg/errors"
)

// spellCommand creates the spell command, which stitches a walk such as
// "3+,5-,7+" into a contig and prints it with its abundances.
func (c *CLI) spellCommand() *cobra.Command {
	var strict, unchecked bool

	cmd := &cobra.Command{
		Use:   "spell <file> <walk>",
		Short: "Spell a walk into a contig and its k-mer counts",
		Long: `Spell follows a walk of oriented unitigs, written as comma-separated ids
with a strand sign (3+,5-,7+), and prints the contig and one abundance per k-mer.

The walk must follow arcs of the graph. --strict also requires the arc to enter
each unitig on the walk's strand; --unchecked skips the check entirely.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := dbg.ParsePath(args[1])
			if err != nil {
				return err
			}
			if len(path) == 0 {
				return errs.New(errs.ErrCodeInvalidInput, "walk is empty")
			}

			runner, err := c.newRunner(true)
			if err != nil {
				return err
			}
			defer runner.Close()
			g, err := runner.Load(cmd.Context(), c.pipelineOptions(args[0]))
			if err != nil {
				return err
			}

			if !unchecked {
				check := g.CheckPath
				if strict {
					check = g.CheckPathStrict
				}
				ok, err := check(path)
				if err != nil {
					return err
				}
				if !ok {
					return errs.New(errs.ErrCodeConsistency, "walk %s does not follow the arcs of the graph", path)
				}
			}

			contig, err := g.Spell(path)
			if err != nil {
				return err
			}
			counts, err := g.Counts(path)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, contig)
			fmt.Fprintln(w, formatCounts(counts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "also require each arc to enter the next unitig on the walk's strand")
	cmd.Flags().BoolVar(&unchecked, "unchecked", false, "spell without checking that the walk follows arcs")
	cmd.MarkFlagsMutuallyExclusive("strict", "unchecked")
	return cmd
}

func formatCounts(counts []uint32) string {
	var b strings.Builder
	for i, n := range counts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(uint64(n), 10))
	}
	return b.String()
}
