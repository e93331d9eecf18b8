package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/mathsys/internal/config"
	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/input"
	"github.com/san-kum/mathsys/internal/linalg"
	"github.com/san-kum/mathsys/internal/logger"
	"github.com/san-kum/mathsys/internal/mapexpr"
	"github.com/san-kum/mathsys/internal/maps"
	"github.com/san-kum/mathsys/internal/sets"
	"github.com/san-kum/mathsys/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

type app struct {
	cfg        *config.Config
	configFile string
	logLevel   string

	// map
	dim        int
	preset     string
	apply      string
	inputVec   string
	stateLo    string
	stateHi    string
	inputLo    string
	inputHi    string
	iterations int
	coord      int

	// input
	constant bool
	count    int
	scale    float64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "mathsys",
		Short:         "taxonomy of linear and affine systems and maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd.ErrOrStderr()); err != nil {
				return err
			}
			logger.CommandExecution(cmd.Name(), args)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	mapCmd := &cobra.Command{
		Use:   "map [expr]",
		Short: "compile a map expression and describe the variant",
		Example: `  mathsys map "x -> [1 0; 0 0]*x + [2, 0]" --apply 3,4
  mathsys map "x -> x" --dim 5
  mathsys map --preset actuated --apply 0,0 --input 1 --iterate 20`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runMap,
	}
	mapCmd.Flags().IntVar(&a.dim, "dim", 0, "state dimension when the expression does not fix it")
	mapCmd.Flags().StringVar(&a.preset, "preset", "", "use a named expression")
	mapCmd.Flags().StringVar(&a.apply, "apply", "", "evaluate at this state, e.g. 1,2")
	mapCmd.Flags().StringVar(&a.inputVec, "input", "", "input vector for control maps")
	mapCmd.Flags().StringVar(&a.stateLo, "state-lower", "", "lower corner of the state box")
	mapCmd.Flags().StringVar(&a.stateHi, "state-upper", "", "upper corner of the state box")
	mapCmd.Flags().StringVar(&a.inputLo, "input-lower", "", "lower corner of the input box")
	mapCmd.Flags().StringVar(&a.inputHi, "input-upper", "", "upper corner of the input box")
	mapCmd.Flags().IntVar(&a.iterations, "iterate", 0, "iterate the map from --apply and plot the orbit")
	mapCmd.Flags().IntVar(&a.coord, "coord", 1, "coordinate to plot (1-based)")

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "list every system and map variant with its traits",
		Args:  cobra.NoArgs,
		RunE:  a.runKinds,
	}

	inputCmd := &cobra.Command{
		Use:   "input [values]",
		Short: "iterate an input sequence",
		Example: `  mathsys input 1,3,2,5 -n 10
  mathsys input 2 --constant -n 5`,
		Args: cobra.ExactArgs(1),
		RunE: a.runInput,
	}
	inputCmd.Flags().BoolVar(&a.constant, "constant", false, "repeat a single value")
	inputCmd.Flags().IntVarP(&a.count, "count", "n", 10, "number of values to take")
	inputCmd.Flags().Float64Var(&a.scale, "scale", 1, "multiply every value")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named expressions",
		Args:  cobra.NoArgs,
		RunE:  a.runPresets,
	}

	rootCmd.AddCommand(mapCmd, kindsCmd, inputCmd, presetsCmd)
	return rootCmd
}

func (a *app) loadConfig(logOut io.Writer) error {
	a.cfg = config.DefaultConfig()
	if a.configFile != "" {
		cfg, err := config.Load(a.configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		a.cfg = cfg
	}
	level := a.logLevel
	if level == "" && os.Getenv(logger.EnvLevel) == "" {
		level = a.cfg.LogLevel
	}
	logger.Configure(level, logOut)
	return nil
}

func (a *app) runMap(cmd *cobra.Command, args []string) error {
	expr, dim, err := a.expression(cmd, args)
	if err != nil {
		return err
	}

	var opts []mapexpr.Option
	if dim > 0 {
		opts = append(opts, mapexpr.WithDim(dim))
	}
	X, err := box(a.stateLo, a.stateHi)
	if err != nil {
		return fmt.Errorf("state box: %w", err)
	}
	if X != nil {
		opts = append(opts, mapexpr.WithStateSet(X))
	}
	U, err := box(a.inputLo, a.inputHi)
	if err != nil {
		return fmt.Errorf("input box: %w", err)
	}
	if U != nil {
		opts = append(opts, mapexpr.WithInputSet(U))
	}

	m, err := mapexpr.Compile(expr, opts...)
	if err != nil {
		return fmt.Errorf("compile %q: %w", expr, err)
	}
	logger.Debug("compiled", "expr", expr, "kind", m.Kind())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Describe(m, a.cfg.Precision))

	if a.apply == "" {
		if a.iterations > 0 {
			return errors.New("--iterate needs a starting state in --apply")
		}
		return nil
	}

	x, err := linalg.ParseVector(a.apply)
	if err != nil {
		return err
	}
	var u []mat.Vector
	if a.inputVec != "" {
		v, err := linalg.ParseVector(a.inputVec)
		if err != nil {
			return err
		}
		u = append(u, v)
	}

	if a.iterations > 0 {
		return a.plotOrbit(out, m, x, u)
	}

	y, err := maps.Apply(m, x, u...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\napply: %s\n", viz.FormatVector(y, a.cfg.Precision))
	return nil
}

// expression resolves the positional expression or --preset.
func (a *app) expression(cmd *cobra.Command, args []string) (string, int, error) {
	switch {
	case len(args) == 1 && a.preset != "":
		return "", 0, errors.New("give either an expression or --preset, not both")
	case len(args) == 1:
		return args[0], a.dim, nil
	case a.preset != "":
		p, ok := a.cfg.Preset(a.preset)
		if !ok {
			return "", 0, fmt.Errorf("unknown preset: %s (available: %v)", a.preset, config.ListPresets())
		}
		dim := p.Dim
		if cmd.Flags().Changed("dim") {
			dim = a.dim
		}
		return p.Expr, dim, nil
	default:
		return "", 0, errors.New("missing expression")
	}
}

// plotOrbit iterates m from x under a constant input and plots one coordinate.
func (a *app) plotOrbit(out io.Writer, m maps.Map, x *mat.VecDense, u []mat.Vector) error {
	if m.OutputDim() != m.StateDim() {
		return fmt.Errorf("%w: cannot iterate a map from %d to %d dimensions", dynamo.ErrShapeMismatch, m.StateDim(), m.OutputDim())
	}
	if a.coord < 1 || a.coord > m.StateDim() {
		return fmt.Errorf("coordinate %d outside [1, %d]", a.coord, m.StateDim())
	}

	steps := input.NewConstant(u)
	X, constrained := m.StateSet()
	values := []float64{x.AtVec(a.coord - 1)}
	for uk := range steps.Next(a.iterations) {
		next, err := maps.Apply(m, x, uk...)
		if err != nil {
			return err
		}
		if constrained && !X.Contains(next) {
			logger.Warn("orbit left the state set", "step", len(values))
		}
		x = next
		values = append(values, x.AtVec(a.coord-1))
	}

	logger.Info("iterated map", "kind", m.Kind(), "steps", a.iterations, "final", viz.FormatVector(x, a.cfg.Precision))

	caption := fmt.Sprintf("x%d over %d steps", a.coord, a.iterations)
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.PlotSequence(values, a.cfg.Plot.Height, a.cfg.Plot.Width, caption))
	return nil
}

func box(lo, hi string) (*sets.Hyperrectangle, error) {
	if lo == "" && hi == "" {
		return nil, nil
	}
	if lo == "" || hi == "" {
		return nil, errors.New("both corners are required")
	}
	l, err := linalg.ParseVector(lo)
	if err != nil {
		return nil, err
	}
	h, err := linalg.ParseVector(hi)
	if err != nil {
		return nil, err
	}
	return sets.NewHyperrectangle(l.RawVector().Data, h.RawVector().Data)
}

func (a *app) runKinds(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tTIME\tCLASS\tCONSTRAINED\tLINEAR\tAFFINE")

	for _, k := range dynamo.Kinds() {
		time := k.Time.String()
		if time == "" {
			time = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\t%t\n",
			k,
			time,
			k.Class,
			k.Constrained,
			dynamo.IsLinear(k),
			dynamo.IsAffine(k),
		)
	}

	return w.Flush()
}

func (a *app) runInput(cmd *cobra.Command, args []string) error {
	values, err := parseFloats(args[0])
	if err != nil {
		return err
	}

	var in input.Input[float64]
	if a.constant {
		if len(values) != 1 {
			return fmt.Errorf("--constant takes one value, got %d", len(values))
		}
		in = input.NewConstant(values[0])
	} else {
		in = input.NewVarying(values)
	}
	if a.scale != 1 {
		k := a.scale
		in = input.Map(in, func(v float64) float64 { return k * v })
	}

	seq := input.Collect(in, a.count)
	out := cmd.OutOrStdout()

	length := "unbounded"
	if in.Len() != input.Unbounded {
		length = strconv.Itoa(in.Len())
	}
	fmt.Fprintf(out, "length: %s\n", length)

	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.FormatFloat(v, 'g', a.cfg.Precision, 64)
	}
	fmt.Fprintf(out, "values: %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(out, "        %s\n", viz.Sparkline(seq, len(seq)))

	if len(seq) > 1 && !a.constant {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.PlotSequence(seq, a.cfg.Plot.Height, a.cfg.Plot.Width, "input"))
	}
	return nil
}

func parseFloats(s string) ([]float64, error) {
	v, err := linalg.ParseVector(s)
	if err != nil {
		return nil, err
	}
	return v.RawVector().Data, nil
}

func (a *app) runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEXPR\tDIM\tSOURCE")

	for _, name := range config.ListPresets() {
		if _, shadowed := a.cfg.Presets[name]; shadowed {
			continue
		}
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, p.Expr, dimString(p.Dim), "built-in")
	}
	user := make([]string, 0, len(a.cfg.Presets))
	for name := range a.cfg.Presets {
		user = append(user, name)
	}
	slices.Sort(user)
	for _, name := range user {
		p := a.cfg.Presets[name]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, p.Expr, dimString(p.Dim), "config")
	}

	return w.Flush()
}

func dimString(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}
