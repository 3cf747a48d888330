package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/trajinfer/builder"
	"github.com/katalvlaran/trajinfer/dataset"
	"github.com/katalvlaran/trajinfer/metrics"
	"github.com/katalvlaran/trajinfer/prim_kruskal"
	"github.com/katalvlaran/trajinfer/trajectory"
)

// sessionFlags are shared by every command that builds a graph.
type sessionFlags struct {
	pcx      string
	wtilde   string
	clusters int
	header   bool
	method   string
	thres    float64
	noLoop   bool
	spanning string
	out      string

	logLevel    string
	logFormat   string
	metricsFile string
}

func newRootCmd() *cobra.Command {
	f := &sessionFlags{}

	rootCmd := &cobra.Command{
		Use:   "trajinfer",
		Short: "Infer cell trajectories from soft cluster memberships",
		Long: `trajinfer aggregates per-cell soft memberships over cluster pairs into a
weighted transition graph, then roots it at a cluster to obtain a milestone
network, projected memberships and a pseudotime per cell.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&f.pcx, "pcx", "", "pc_x matrix (cells × K(K+1)/2), .csv/.tsv/.json")
	rootCmd.PersistentFlags().StringVar(&f.wtilde, "wtilde", "", "w_tilde matrix (cells × K), .csv/.tsv/.json")
	rootCmd.PersistentFlags().IntVar(&f.clusters, "clusters", 0, "number of clusters K")
	rootCmd.PersistentFlags().BoolVar(&f.header, "header", false, "skip the first row of CSV inputs")
	rootCmd.PersistentFlags().StringVar(&f.method, "method", builder.DefaultMethod,
		"aggregation method: "+strings.Join(builder.Methods(), "|"))
	rootCmd.PersistentFlags().Float64Var(&f.thres, "thres", builder.DefaultThreshold, "evidence threshold for the mean methods")
	rootCmd.PersistentFlags().BoolVar(&f.noLoop, "no-loop", false, "prune the graph to its maximum spanning forest")
	rootCmd.PersistentFlags().StringVar(&f.spanning, "spanning", prim_kruskal.MethodKruskal, "spanning forest algorithm: kruskal|prim")
	rootCmd.PersistentFlags().StringVarP(&f.out, "out", "o", "", "write output to this file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "warn", "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&f.logFormat, "log-format", "text", "log format: text|json")
	rootCmd.PersistentFlags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")

	graphCmd := &cobra.Command{
		Use:   "graph",
		Short: "Build and print the transition graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, f)
		},
	}

	inferCmd := &cobra.Command{
		Use:   "infer",
		Short: "Infer the trajectory rooted at one cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfer(cmd, f)
		},
	}
	inferCmd.Flags().Int("root", 0, "root cluster")
	inferCmd.Flags().Float64("cutoff", trajectory.DefaultCutoff, "drop edges with weight <= cutoff")
	inferCmd.Flags().String("format", "json", "output format: json|csv")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "trajinfer %s\n", version)
		},
	}

	rootCmd.AddCommand(graphCmd, inferCmd, versionCmd)

	return rootCmd
}

// newLogger builds the slog handler selected by --log-level and --log-format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unsupported --log-format %q (supported: text, json)", format)
	}
}

// openSession loads the inputs and builds a session. The returned registry
// is nil unless --metrics-file is set.
func openSession(cmd *cobra.Command, f *sessionFlags) (*trajectory.Session, *prometheus.Registry, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), f.logLevel, f.logFormat)
	if err != nil {
		return nil, nil, err
	}
	if f.pcx == "" || f.wtilde == "" {
		return nil, nil, fmt.Errorf("--pcx and --wtilde are required")
	}

	var readOpts []dataset.ReadOption
	if f.header {
		readOpts = append(readOpts, dataset.WithHeader())
	}
	pcX, err := dataset.LoadMatrix(f.pcx, readOpts...)
	if err != nil {
		return nil, nil, err
	}
	wTilde, err := dataset.LoadMatrix(f.wtilde, readOpts...)
	if err != nil {
		return nil, nil, err
	}
	k := f.clusters
	if k == 0 {
		_, k = wTilde.Dims()
	}

	var (
		reg       *prometheus.Registry
		collector *metrics.Collector
	)
	if f.metricsFile != "" {
		reg = prometheus.NewRegistry()
		if collector, err = metrics.NewCollector(reg); err != nil {
			return nil, nil, err
		}
	}

	s, err := trajectory.NewSessionContext(cmd.Context(), k, pcX, wTilde,
		trajectory.WithMethod(f.method),
		trajectory.WithThreshold(f.thres),
		trajectory.WithNoLoop(f.noLoop),
		trajectory.WithSpanningMethod(f.spanning),
		trajectory.WithLogger(logger),
		trajectory.WithMetrics(collector))
	if err != nil {
		return nil, nil, err
	}

	return s, reg, nil
}

// output returns the destination selected by --out and a closer for it.
func output(cmd *cobra.Command, f *sessionFlags) (io.Writer, func() error, error) {
	if f.out == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	file, err := os.Create(f.out)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", f.out, err)
	}

	return file, file.Close, nil
}

// flushMetrics writes reg to --metrics-file, if any.
func flushMetrics(f *sessionFlags, reg *prometheus.Registry) error {
	if reg == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}

	return nil
}
