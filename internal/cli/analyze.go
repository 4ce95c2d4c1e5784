package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/ustar/pkg/errors"
	"github.com/matzehuels/ustar/pkg/pipeline"
)

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var noCache, refresh bool

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Print aggregate statistics of a unitig file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions(args[0])
			opts.Refresh = refresh
			report, err := c.analyze(cmd, opts, noCache)
			if err != nil {
				return err
			}
			printReport(printer{cmd.OutOrStdout()}, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if a cached result exists")
	return cmd
}

// verifyCommand creates the verify command. It fails when an overlap check
// or the round trip fails.
func (c *CLI) verifyCommand() *cobra.Command {
	var noCache, refresh, roundTrip bool

	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that every arc joins matching k-1 overlaps",
		Long: `Verify loads a unitig file and checks, for every arc, that the k-1 bases
implied on both sides are identical. With --round-trip it also writes the graph
back in the standard format and compares it token by token with the input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions(args[0])
			opts.RoundTrip = roundTrip
			opts.Refresh = refresh
			report, err := c.analyze(cmd, opts, noCache)
			if err != nil {
				return err
			}
			return printVerification(printer{cmd.OutOrStdout()}, report)
		},
	}

	cmd.Flags().BoolVar(&roundTrip, "round-trip", false, "also check that the canonical output reproduces the input")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if a cached result exists")
	return cmd
}

func (c *CLI) analyze(cmd *cobra.Command, opts pipeline.Options, noCache bool) (*pipeline.Report, error) {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return nil, err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(cmd.Context()))
	report, err := runner.Analyze(cmd.Context(), opts)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Analyzed %d unitigs", report.Stats.Nodes))
	return report, nil
}

func printReport(p printer, r *pipeline.Report) {
	p.title(r.Path)
	p.number("k", r.KmerSize)
	p.number("unitigs", r.Stats.Nodes)
	p.number("k-mers", r.Stats.Kmers)
	p.number("arcs", r.Stats.Arcs)
	p.keyValue("isolated", fmt.Sprintf("%d (%.1f%%)", r.Stats.Isolated, 100*r.Stats.IsolatedRatio()))
	p.keyValue("avg length", fmt.Sprintf("%.2f", r.Stats.AvgUnitigLength))
	p.keyValue("avg abundance", fmt.Sprintf("%.2f", r.Stats.AvgAbundance))
	p.keyValue("arc density", fmt.Sprintf("%.4f", r.Stats.Density()))
	p.cacheStatus(r.Cached)
}

func printVerification(p printer, r *pipeline.Report) error {
	if r.Overlaps.OK() {
		p.success("%d arcs checked, all overlaps match", r.Overlaps.Checked)
	} else {
		p.failure("%d of %d arcs have mismatched overlaps", r.Overlaps.Failed, r.Overlaps.Checked)
		p.detail("first: %s", r.Overlaps.First)
	}

	if r.RoundTripChecked {
		if r.RoundTrip == nil {
			p.success("round trip reproduces the input")
		} else {
			p.failure("round trip differs from the input")
			p.detail("%s", StyleWarning.Render(r.RoundTrip.String()))
		}
	}
	p.cacheStatus(r.Cached)

	if !r.OK() {
		return errs.New(errs.ErrCodeConsistency, "%s failed verification", r.Path)
	}
	return nil
}
