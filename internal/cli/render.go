package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ustar/pkg/pipeline"
	"github.com/matzehuels/ustar/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; derived from the input when empty
	format   string // output format: "svg", "png", "pdf" or "dot"
	detailed bool   // label nodes with length and median abundance
	maxNodes int    // draw at most this many nodes
	noCache  bool
	refresh  bool
}

// renderCommand creates the render command for drawing a unitig graph.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format:   pipeline.FormatSVG,
		maxNodes: nodelink.DefaultMaxNodes,
	}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Draw the graph as a node-link diagram",
		Long: `Render draws unitigs as boxes and arcs as edges labelled with their strands.
Edges leaving the reverse strand are dashed. Large graphs are truncated to
--max-nodes nodes. PNG and PDF output need rsvg-convert on the PATH.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <input>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png, pdf, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show length and median abundance on nodes")
	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", opts.maxNodes, "maximum number of nodes to draw")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached result exists")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, ro renderOpts) error {
	opts := c.pipelineOptions(input)
	opts.Detailed = ro.detailed
	opts.MaxNodes = ro.maxNodes
	opts.Refresh = ro.refresh

	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(cmd.Context()))
	data, cached, err := runner.RenderWithCacheInfo(cmd.Context(), opts, ro.format)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", strings.ToUpper(ro.format)))

	out := ro.output
	if out == "" {
		out = outputPath(input, ro.format)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	p := printer{cmd.OutOrStdout()}
	p.success("Rendered %s", input)
	p.file(out)
	p.cacheStatus(cached)
	return nil
}

// outputPath replaces the extension of input with format.
func outputPath(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}
