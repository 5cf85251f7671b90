package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/san-kum/dynarr/dynarray"
	"github.com/san-kum/dynarr/internal/config"
	"github.com/san-kum/dynarr/internal/export"
	"github.com/san-kum/dynarr/internal/script"
	"github.com/san-kum/dynarr/internal/storage"
	"github.com/san-kum/dynarr/internal/tui"
	"github.com/san-kum/dynarr/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	capacity   int
	configFile string
	noSave     bool
	plotWidth  int
	plotHeight int
	benchMax   int
	outFile    string
)

// main registers the dynarr commands and executes the root command. With no
// subcommand it opens the interactive REPL.
func main() {
	rootCmd := &cobra.Command{
		Use:   "dynarr",
		Short: "dynamic array lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive(capacity)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".dynarr", "data directory")
	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", 0, "initial capacity (0 keeps the preset or config value)")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a preset or --config script against a fresh array",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScript,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show the steps of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot count and capacity of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", config.DefaultPlotWidth, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", config.DefaultPlotHeight, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).Export(args[0], os.Stdout)
		},
	}

	svgCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export count and capacity of a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <run_id>.svg)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure append cost and reallocation behaviour",
		Args:  cobra.NoArgs,
		RunE:  benchAppend,
	}
	benchCmd.Flags().IntVar(&benchMax, "max", 1_000_000, "largest append count")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCAPACITY\tOPS")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\n", name, cfg.Capacity, len(cfg.Ops))
			}
			return w.Flush()
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "interactive array session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive(capacity)
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, showCmd, plotCmd, exportCmd, svgCmd, benchCmd, presetsCmd, replCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRunConfig(args []string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case len(args) == 1:
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	default:
		return nil, errors.New("need a preset name or --config")
	}

	if capacity != 0 {
		cfg.Capacity = capacity
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(args)
	if err != nil {
		return err
	}

	trace, err := script.Run(cfg.Name, cfg.Capacity, cfg.Ops)
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(trace))
	fmt.Println()

	finalCap := trace.InitialCapacity
	if n := len(trace.Steps); n > 0 {
		finalCap = trace.Steps[n-1].Capacity
	}
	fmt.Println(viz.RenderSlots(trace.Final, finalCap, 10))
	fmt.Println()

	if err := printSteps(trace.Steps); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(viz.PlotTrace(trace.Steps, cfg.Plot.Width, cfg.Plot.Height, "count / capacity per step"))

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(trace)
	if err != nil {
		return err
	}
	fmt.Printf("\nsaved run %s\n", runID)
	return nil
}

func printSteps(steps []script.Step) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tOP\tRESULT\tCOUNT\tCAP")
	for i, s := range steps {
		result := s.Result
		if s.Err != "" {
			result = "error: " + s.Err
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", i, s.Op, result, s.Count, s.Capacity)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tOPS\tERRORS\tCOUNT\tCAP")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d→%d\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ops,
			run.Errors,
			run.FinalCount,
			run.InitialCapacity,
			run.FinalCapacity,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run %s (%s), capacity %d → %d\n\n", meta.ID, meta.Name, meta.InitialCapacity, meta.FinalCapacity)
	if err := printSteps(steps); err != nil {
		return err
	}
	fmt.Printf("\nfinal %s\n", viz.SlotLine(meta.Final, meta.FinalCapacity))
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		fmt.Println("no steps recorded")
		return nil
	}

	fmt.Println(viz.PlotTrace(steps, plotWidth, plotHeight, meta.Name+": count / capacity per step"))
	fmt.Println()
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	steps, err := storage.New(dataDir).LoadSteps(args[0])
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("run %s has no steps", args[0])
	}

	path := outFile
	if path == "" {
		path = args[0] + ".svg"
	}
	if err := os.WriteFile(path, []byte(export.StepsToSVG(steps, 800, 300)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

type copyCounter struct {
	growths int
	copies  int
}

func (c *copyCounter) OnGrow(from, to int) {
	c.growths++
	c.copies += from
}

func benchAppend(cmd *cobra.Command, args []string) error {
	if benchMax < 1 {
		return fmt.Errorf("max must be positive, got %d", benchMax)
	}

	var sizes []int
	for n := 1000; n < benchMax; n *= 10 {
		sizes = append(sizes, n)
	}
	sizes = append(sizes, benchMax)

	fmt.Printf("benchmarking append from capacity %d\n\n", dynarray.DefaultCapacity)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tTIME\tNS/ADD\tGROWTHS\tCOPIES/ADD\tCAP")

	for _, n := range sizes {
		arr := dynarray.New[int]()
		counter := &copyCounter{}
		arr.SetObserver(counter)

		start := time.Now()
		for i := 0; i < n; i++ {
			if err := arr.Add(i); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%v\t%.1f\t%d\t%.2f\t%d\n",
			n, elapsed,
			float64(elapsed.Nanoseconds())/float64(n),
			counter.growths,
			float64(counter.copies)/float64(n),
			arr.Cap())
	}

	return w.Flush()
}
