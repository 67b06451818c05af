// Package main provides the CLI entrypoint for growthchart.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hungknow/community-nutriition-interface/internal/chart"
	"github.com/hungknow/community-nutriition-interface/internal/config"
	"github.com/hungknow/community-nutriition-interface/internal/growth"
	"github.com/hungknow/community-nutriition-interface/internal/report"
	"github.com/hungknow/community-nutriition-interface/internal/store"
	"github.com/hungknow/community-nutriition-interface/internal/tui"
	"github.com/hungknow/community-nutriition-interface/internal/who"
)

const (
	defaultChartHeight   = 12
	defaultHistoryWindow = 3
	dateLayout           = "2006-01-02"
)

var (
	evalName   string
	evalSex    string
	evalDOB    string
	evalKind   string
	evalValue  float64
	evalLength float64
	evalDate   string
	evalSave   bool

	chartSex    string
	chartKind   string
	chartDOB    string
	chartDate   string
	chartValue  float64
	chartLength float64
	chartWidth  int
	chartHeight int
	chartColor  bool

	historyName   string
	historyKind   string
	historySince  string
	historyLast   int
	historyWindow int

	childName string
	childSex  string
	childDOB  string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "growthchart",
		Short:         "WHO child growth standard evaluation",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTUICmd,
	}

	rootCmd.AddCommand(newEvaluateCmd())
	rootCmd.AddCommand(newChartCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newChildrenCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	reg, err := who.Registry()
	if err != nil {
		return fmt.Errorf("failed to load reference tables: %w", err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	height := defaultChartHeight
	applyIntConfig(cmd, "", &height, fileCfg.Chart.Height)
	window := defaultHistoryWindow
	applyIntConfig(cmd, "", &window, fileCfg.History.Window)
	color := false
	applyBoolConfig(cmd, "", &color, fileCfg.Chart.Color)

	model := tui.NewModel(reg, st, tui.Options{
		ChartHeight:   height,
		HistoryWindow: window,
		ForceColor:    color,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate one measurement",
		Args:  cobra.NoArgs,
		RunE:  runEvaluateCmd,
	}
	cmd.Flags().StringVar(&evalName, "name", "", "child name (enables saving)")
	cmd.Flags().StringVar(&evalSex, "sex", "", "sex: female or male")
	cmd.Flags().StringVar(&evalDOB, "dob", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&evalKind, "kind", "weight", "weight, height, or weight-for-length")
	cmd.Flags().Float64Var(&evalValue, "value", 0, "measured value (kg or cm)")
	cmd.Flags().Float64Var(&evalLength, "length", 0, "measured length in cm (weight-for-length only)")
	cmd.Flags().StringVar(&evalDate, "date", "", "evaluation date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&evalSave, "save", false, "record the measurement for --name")
	return cmd
}

func runEvaluateCmd(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("value") {
		return fmt.Errorf("--value is required")
	}
	req, err := buildRequest(evalSex, evalDOB, evalKind, evalValue, evalLength, evalDate)
	if err != nil {
		return err
	}
	reg, err := who.Registry()
	if err != nil {
		return fmt.Errorf("failed to load reference tables: %w", err)
	}
	row, _, err := reg.Resolve(req)
	if err != nil {
		return err
	}
	status := growth.Classify(row, req.Value)

	ev := report.Evaluation{Request: req, Row: row, Status: status}
	if err := report.RenderEvaluation(cmd.OutOrStdout(), ev, nil); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if !evalSave {
		return nil
	}
	if evalName == "" {
		return fmt.Errorf("--save requires --name")
	}
	return saveMeasurement(evalName, req, status)
}

func saveMeasurement(name string, req growth.Request, status growth.Status) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	child, err := st.GetChildByName(ctx, name)
	if err != nil {
		id, err := st.AddChild(ctx, store.Child{Name: name, Sex: req.Sex, DateOfBirth: req.DateOfBirth})
		if err != nil {
			return fmt.Errorf("failed to add child: %w", err)
		}
		child = store.Child{ID: id, Name: name, Sex: req.Sex, DateOfBirth: req.DateOfBirth}
	}
	at := req.At
	if at.IsZero() {
		at = time.Now()
	}
	if _, err := st.InsertMeasurement(ctx, store.Measurement{
		ChildID:    child.ID,
		Kind:       req.Kind,
		Value:      req.Value,
		LengthCm:   req.Length,
		MeasuredAt: at,
		Status:     status,
	}); err != nil {
		return fmt.Errorf("failed to record measurement: %w", err)
	}
	logErrf("Recorded %s for %s.\n", req.Kind, name)
	return nil
}

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render percentile band chart",
		Args:  cobra.NoArgs,
		RunE:  runChartCmd,
	}
	cmd.Flags().StringVar(&chartSex, "sex", "", "sex: female or male")
	cmd.Flags().StringVar(&chartKind, "kind", "weight", "weight, height, or weight-for-length")
	cmd.Flags().StringVar(&chartDOB, "dob", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&chartDate, "date", "", "evaluation date (YYYY-MM-DD, default today)")
	cmd.Flags().Float64Var(&chartValue, "value", 0, "measured value to mark on the chart")
	cmd.Flags().Float64Var(&chartLength, "length", 0, "measured length in cm (weight-for-length only)")
	cmd.Flags().IntVar(&chartWidth, "width", 0, "chart width in columns (default: terminal width)")
	cmd.Flags().IntVar(&chartHeight, "height", defaultChartHeight, "chart height in rows")
	cmd.Flags().BoolVar(&chartColor, "color", false, "force ANSI colors")
	return cmd
}

func runChartCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "width", &chartWidth, fileCfg.Chart.Width)
	applyIntConfig(cmd, "height", &chartHeight, fileCfg.Chart.Height)
	applyBoolConfig(cmd, "color", &chartColor, fileCfg.Chart.Color)

	req, err := buildRequest(chartSex, chartDOB, chartKind, chartValue, chartLength, chartDate)
	if err != nil {
		return err
	}
	reg, err := who.Registry()
	if err != nil {
		return fmt.Errorf("failed to load reference tables: %w", err)
	}
	row, ds, err := reg.Resolve(req)
	if err != nil {
		return err
	}

	var marker *chart.Point
	if cmd.Flags().Changed("value") {
		// Marker coordinates come off the same resolved row as evaluation.
		marker = &chart.Point{X: row.X, Y: req.Value}
	}
	opts := chart.Options{
		Title:      fmt.Sprintf("%s bands (%s)", req.Kind, req.Sex),
		Width:      chartWidth,
		Height:     chartHeight,
		ForceColor: chartColor,
		YUnit:      req.Kind.Unit(),
		XUnit:      ds.Axis.String(),
	}
	if err := chart.Render(cmd.OutOrStdout(), ds, marker, opts); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded measurements for a child",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyName, "name", "", "child name")
	cmd.Flags().StringVar(&historyKind, "kind", "", "filter by kind")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N measurements")
	cmd.Flags().IntVar(&historyWindow, "window", defaultHistoryWindow, "moving average window")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyName == "" {
		return fmt.Errorf("--name is required")
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "last", &historyLast, fileCfg.History.Last)
	applyIntConfig(cmd, "window", &historyWindow, fileCfg.History.Window)

	filter := store.HistoryFilter{Last: historyLast}
	if historyKind != "" {
		kind, err := growth.ParseKind(historyKind)
		if err != nil {
			return err
		}
		filter.Kind = &kind
	}
	if historySince != "" {
		since, err := time.ParseInLocation(dateLayout, historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		filter.Since = &since
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	child, err := st.GetChildByName(ctx, historyName)
	if err != nil {
		return fmt.Errorf("no recorded child named %q", historyName)
	}
	measurements, err := st.ListMeasurements(ctx, child.ID, filter)
	if err != nil {
		return fmt.Errorf("failed to list measurements: %w", err)
	}
	if err := report.RenderHistory(cmd.OutOrStdout(), child, measurements, historyWindow, nil); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newChildrenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "children",
		Short: "Manage child profiles",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a child profile",
		Args:  cobra.NoArgs,
		RunE:  runChildrenAddCmd,
	}
	addCmd.Flags().StringVar(&childName, "name", "", "child name")
	addCmd.Flags().StringVar(&childSex, "sex", "", "sex: female or male")
	addCmd.Flags().StringVar(&childDOB, "dob", "", "date of birth (YYYY-MM-DD)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List child profiles",
		Args:  cobra.NoArgs,
		RunE:  runChildrenListCmd,
	}

	cmd.AddCommand(addCmd)
	cmd.AddCommand(listCmd)
	return cmd
}

func runChildrenAddCmd(_ *cobra.Command, _ []string) error {
	if childName == "" {
		return fmt.Errorf("--name is required")
	}
	sex, err := growth.ParseSex(childSex)
	if err != nil {
		return err
	}
	dob, err := time.ParseInLocation(dateLayout, childDOB, time.Local)
	if err != nil {
		return fmt.Errorf("invalid --dob value: %w", err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if _, err := st.AddChild(context.Background(), store.Child{
		Name:        childName,
		Sex:         sex,
		DateOfBirth: dob,
	}); err != nil {
		return fmt.Errorf("failed to add child: %w", err)
	}
	logErrf("Added %s.\n", childName)
	return nil
}

func runChildrenListCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	children, err := st.ListChildren(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list children: %w", err)
	}
	if len(children) == 0 {
		logErrln("No children recorded.")
		return nil
	}
	for _, child := range children {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
			child.Name, child.Sex, child.DateOfBirth.Format(dateLayout)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func buildRequest(sexStr, dobStr, kindStr string, value, length float64, dateStr string) (growth.Request, error) {
	sex, err := growth.ParseSex(sexStr)
	if err != nil {
		return growth.Request{}, err
	}
	kind, err := growth.ParseKind(kindStr)
	if err != nil {
		return growth.Request{}, err
	}
	if dobStr == "" {
		return growth.Request{}, fmt.Errorf("--dob is required")
	}
	dob, err := time.ParseInLocation(dateLayout, dobStr, time.Local)
	if err != nil {
		return growth.Request{}, fmt.Errorf("invalid --dob value: %w", err)
	}
	req := growth.Request{Kind: kind, Sex: sex, DateOfBirth: dob, Value: value, Length: length}
	if kind == growth.WeightForLength && length <= 0 {
		return growth.Request{}, fmt.Errorf("--length is required for weight-for-length")
	}
	if dateStr != "" {
		at, err := time.ParseInLocation(dateLayout, dateStr, time.Local)
		if err != nil {
			return growth.Request{}, fmt.Errorf("invalid --date value: %w", err)
		}
		req.At = at
	}
	return req, nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if name != "" && cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if name != "" && cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# growthchart configuration
# Uncomment a value to enable it. CLI flags override config values.

[chart]
# width = 0            # Chart width in columns (0 = terminal width)
# height = %d          # Chart height in rows
# color = false        # Force ANSI colors

[history]
# last = 0             # Limit history to last N measurements (0 = all)
# window = %d          # Moving average window for the trend line
`,
		defaultChartHeight,
		defaultHistoryWindow,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
