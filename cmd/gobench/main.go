// Command gobench runs the benchmarks registered (via discovery.Register)
// by whatever package is linked into this binary, optionally
// re-parameterized by declarative suite files, and reports the results
// through one or more Reporters. Structured the way the teacher's
// cmd/harness/main.go wires a cobra.Command onto its harness package.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/gobench-dev/gobench"
	"github.com/gobench-dev/gobench/discovery"
	"github.com/gobench-dev/gobench/reporters"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := &cobra.Command{
		Use:   "gobench",
		Short: "Adaptive microbenchmark harness",
	}

	var (
		filter                string
		minTime               float64
		repetitions           int
		reportAggregatesOnly  bool
		displayAggregatesOnly bool
		colorFlag             string
		format                string
		metricsAddr           string
	)

	addCommonFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&filter, "filter", "", "only run/list benchmarks whose display name matches this regexp")
		cmd.Flags().Float64Var(&minTime, "min-time", 0, "minimum per-trial duration in seconds (0 keeps the default)")
		cmd.Flags().IntVar(&repetitions, "repetitions", 0, "repetition count (0 keeps the default)")
		cmd.Flags().BoolVar(&reportAggregatesOnly, "report-aggregates-only", false, "suppress non-aggregate rows in every reporter")
		cmd.Flags().BoolVar(&displayAggregatesOnly, "display-aggregates-only", false, "suppress non-aggregate rows in the console reporter only")
		cmd.Flags().StringVar(&colorFlag, "color", "auto", "console color: auto, always, never")
		cmd.Flags().StringVar(&format, "format", "none", "optional second reporter format, written alongside the console display: console, json, csv, none")
		cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address instead of exiting after the run")
	}

	runCmd := &cobra.Command{
		Use:   "run [suite-files...]",
		Short: "Run registered benchmarks, optionally reparameterized by suite files",
		RunE: func(cmd *cobra.Command, fileArgs []string) error {
			instances, err := collectInstances(fileArgs, filter)
			if err != nil {
				return err
			}

			cfg := gobench.DefaultConfig()
			if minTime > 0 {
				cfg.MinTime = minTime
			}
			if repetitions > 0 {
				cfg.Repetitions = repetitions
			}
			cfg.ReportAggregatesOnly = reportAggregatesOnly
			cfg.DisplayAggregatesOnly = displayAggregatesOnly

			console := reporters.NewConsole(os.Stdout, os.Stderr)
			switch colorFlag {
			case "always":
				console.Color = true
			case "never":
				console.Color = false
			}

			fileReporter, err := buildFileReporter(format)
			if err != nil {
				return err
			}

			orch := gobench.NewOrchestrator(console, fileReporter)
			orch.Config = cfg
			orch.ExecutableName = "gobench"

			var registry *prometheus.Registry
			if metricsAddr != "" {
				registry = prometheus.NewRegistry()
				metrics := reporters.NewMetrics(registry)
				orch.File = chainReporters(orch.File, metrics)
			}

			ok := orch.Run(instances)

			if metricsAddr != "" {
				serveMetrics(metricsAddr, registry)
			}

			if !ok {
				return fmt.Errorf("gobench: reporter rejected the run context")
			}
			return nil
		},
	}
	addCommonFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list [suite-files...]",
		Short: "List the benchmarks that would run, without running them",
		RunE: func(cmd *cobra.Command, fileArgs []string) error {
			instances, err := collectInstances(fileArgs, filter)
			if err != nil {
				return err
			}
			for i := range instances {
				fmt.Fprintln(os.Stdout, instances[i].DisplayName())
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&filter, "filter", "", "only list benchmarks whose display name matches this regexp")

	root.AddCommand(runCmd, listCmd)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// collectInstances gathers the in-process registered benchmarks, narrowed
// by any declarative suite files (each of which may only reparameterize
// an already-registered name), then applies the --filter regexp.
func collectInstances(suiteFiles []string, filter string) ([]gobench.Instance, error) {
	bodies := make(map[string]gobench.BenchmarkFunc)
	for _, inst := range discovery.All() {
		bodies[inst.Name] = inst.Body
	}

	var instances []gobench.Instance
	if len(suiteFiles) == 0 {
		instances = discovery.All()
	} else {
		for _, path := range suiteFiles {
			parsed, err := discovery.ParseSuiteFile(path, bodies)
			if err != nil {
				return nil, fmt.Errorf("gobench: %s: %w", path, err)
			}
			instances = append(instances, parsed...)
		}
	}

	return discovery.Filter(instances, filter)
}

func buildFileReporter(format string) (gobench.Reporter, error) {
	switch format {
	case "console":
		return reporters.NewConsole(os.Stdout, os.Stderr), nil
	case "json":
		return reporters.NewJSON(os.Stdout), nil
	case "csv":
		return reporters.NewCSV(os.Stdout), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("gobench: unknown --format %q", format)
	}
}

// chainReporters composes two Reporters that both want to observe every
// Run, such as a file-format reporter and the Prometheus exporter.
type multiReporter struct {
	a, b gobench.Reporter
}

func chainReporters(a, b gobench.Reporter) gobench.Reporter {
	if a == nil {
		return b
	}
	return &multiReporter{a: a, b: b}
}

func (m *multiReporter) ReportContext(ctx gobench.ReportContext) bool {
	okA := m.a.ReportContext(ctx)
	okB := m.b.ReportContext(ctx)
	return okA && okB
}

func (m *multiReporter) ReportRuns(runs []gobench.Run) {
	m.a.ReportRuns(runs)
	m.b.ReportRuns(runs)
}

func (m *multiReporter) Finalize() {
	m.a.Finalize()
	m.b.Finalize()
}

// serveMetrics blocks forever serving the Prometheus registry, for the
// case where a caller wants to scrape a single long-lived run's gauges
// after the fact rather than exiting immediately.
func serveMetrics(addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	fmt.Fprintf(os.Stderr, "gobench: serving metrics on %s/metrics\n", addr)
	_ = http.ListenAndServe(addr, mux)
}
