package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ustar/pkg/pipeline"
)

// coverCommand creates the cover command.
func (c *CLI) coverCommand() *cobra.Command {
	var (
		output, counts   string
		policy           string
		noCache, refresh bool
	)

	cmd := &cobra.Command{
		Use:   "cover <file>",
		Short: "Compute a path cover and write simplitigs with their counts",
		Long: `Cover walks the graph with a seeding and extension policy, visiting every
unitig exactly once, and spells each walk into a simplitig. The simplitigs
are written as FASTA and their abundances as one line of counts per record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions(args[0])
			opts.Policy = policy
			opts.Refresh = refresh

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(loggerFromContext(cmd.Context()))
			result, err := runner.Cover(cmd.Context(), opts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Covered graph with %d paths", result.Paths))

			p := printer{cmd.ErrOrStderr()}
			if output == "" {
				if _, err := cmd.OutOrStdout().Write(result.Fasta); err != nil {
					return err
				}
			} else if err := os.WriteFile(output, result.Fasta, 0o644); err != nil {
				return fmt.Errorf("write simplitigs: %w", err)
			}
			if counts != "" {
				if err := os.WriteFile(counts, result.Counts, 0o644); err != nil {
					return fmt.Errorf("write counts: %w", err)
				}
			}

			p.success("%d simplitigs, %d k-mers (policy %s)", result.Paths, result.Kmers, result.Policy)
			if output != "" {
				p.file(output)
			}
			if counts != "" {
				p.file(counts)
			}
			p.cacheStatus(result.Cached)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "simplitig FASTA file (default stdout)")
	cmd.Flags().StringVarP(&counts, "counts", "c", "", "counts file, one line per simplitig")
	cmd.Flags().StringVar(&policy, "policy", pipeline.DefaultPolicy, "seeding and extension policy")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if a cached result exists")
	return cmd
}
