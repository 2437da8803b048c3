package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	floating "github.com/grindlemire/go-floating"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// fallbackViewport is used by --viewport auto when stdout isn't a terminal.
var fallbackViewport = floating.Size{Width: 80, Height: 24}

type placeFlags struct {
	anchor    string
	size      string
	viewport  string
	placement string
	offset    float64
	padding   float64
	strategy  string
	noFlip    bool
	noShift   bool
	asJSON    bool
}

// placeOutput is the JSON form of a computed position.
type placeOutput struct {
	Requested string     `json:"requested"`
	Placement string     `json:"placement"`
	Flipped   bool       `json:"flipped"`
	Strategy  string     `json:"strategy"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Left      string     `json:"left"`
	Top       string     `json:"top"`
	Hidden    bool       `json:"hidden"`
	Viewport  [2]float64 `json:"viewport"`
}

func newPlaceCmd() *cobra.Command {
	var f placeFlags

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute the position of a floating box",
		Long: `Compute where a floating box of --size lands next to the --anchor box.

Boxes are given as comma-separated numbers: --anchor left,top,width,height and
--size width,height. A zero-size anchor works as a virtual point, e.g. a caret.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.anchor, "anchor", "", "anchor box as left,top,width,height (required)")
	cmd.Flags().StringVar(&f.size, "size", "", "floating box size as width,height (required)")
	cmd.Flags().StringVar(&f.viewport, "viewport", "1920,1080", "viewport size as width,height, or auto for the terminal size")
	// defaults shown in --help; unset flags fall back to the config file
	def := DefaultConfig()
	cmd.Flags().StringVar(&f.placement, "placement", def.Placement, "preferred placement, e.g. bottom-start")
	cmd.Flags().Float64Var(&f.offset, "offset", def.Offset, "gap between anchor and floating box")
	cmd.Flags().Float64Var(&f.padding, "padding", def.Padding, "minimum gap from the viewport edge")
	cmd.Flags().StringVar(&f.strategy, "strategy", def.Strategy, "positioning strategy: fixed or absolute")
	cmd.Flags().BoolVar(&f.noFlip, "no-flip", false, "never flip to the opposite side")
	cmd.Flags().BoolVar(&f.noShift, "no-shift", false, "never shift back into the viewport")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print JSON instead of a table")
	_ = cmd.MarkFlagRequired("anchor")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func runPlace(cmd *cobra.Command, f placeFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := f.apply(cmd, configFromContext(ctx))
	if err != nil {
		return err
	}

	anchorVals, err := parseNumbers(f.anchor, 4)
	if err != nil {
		return fmt.Errorf("--anchor: %w", err)
	}
	sizeVals, err := parseNumbers(f.size, 2)
	if err != nil {
		return fmt.Errorf("--size: %w", err)
	}
	viewport, err := parseViewport(f.viewport)
	if err != nil {
		return fmt.Errorf("--viewport: %w", err)
	}

	anchorRect := floating.NewRect(anchorVals[0], anchorVals[1], anchorVals[2], anchorVals[3])
	panelSize := floating.Size{Width: sizeVals[0], Height: sizeVals[1]}
	logger.Debug("placing", "anchor", anchorRect, "size", panelSize, "viewport", viewport)

	res := computePlacement(cfg, anchorRect, panelSize, viewport)
	out := placeOutput{
		Requested: string(floating.ParsePlacement(cfg.Placement)),
		Placement: string(res.Placement),
		Flipped:   res.Flipped,
		Strategy:  string(res.Strategy),
		X:         res.Style.X,
		Y:         res.Style.Y,
		Left:      res.Style.Left(),
		Top:       res.Style.Top(),
		Hidden:    res.Hidden(),
		Viewport:  [2]float64{viewport.Width, viewport.Height},
	}
	if out.Flipped {
		logger.Info("flipped to fit", "from", out.Requested, "to", out.Placement)
	}

	if f.asJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	return writeTable(cmd.OutOrStdout(), out)
}

// apply layers explicitly set flags over the config.
func (f placeFlags) apply(cmd *cobra.Command, cfg Config) (Config, error) {
	flags := cmd.Flags()
	if flags.Changed("placement") {
		cfg.Placement = f.placement
	}
	if flags.Changed("offset") {
		cfg.Offset = f.offset
	}
	if flags.Changed("padding") {
		cfg.Padding = f.padding
	}
	if flags.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if f.noFlip {
		cfg.Flip = false
	}
	if f.noShift {
		cfg.Shift = false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// computePlacement runs a single pass of the engine on an in-memory host.
func computePlacement(cfg Config, anchor floating.Rect, size floating.Size, viewport floating.Size) floating.Result {
	host := floating.NewMockHost(viewport.Width, viewport.Height)
	anchorNode := floating.NewNode(anchor, floating.WithName("anchor"))
	panel := floating.NewNode(floating.NewRect(0, 0, size.Width, size.Height), floating.WithName("panel"))

	opts := append(cfg.Options(), floating.WithAutoUpdate(false))
	f := floating.Position(host, floating.RefTo(anchorNode), floating.RefTo(panel), opts...)
	defer f.Close()
	return f.Result()
}

func parseNumbers(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseViewport(s string) (floating.Size, error) {
	if s == "auto" {
		return terminalSize(), nil
	}
	vals, err := parseNumbers(s, 2)
	if err != nil {
		return floating.Size{}, err
	}
	if vals[0] <= 0 || vals[1] <= 0 {
		return floating.Size{}, fmt.Errorf("viewport must be positive, got %q", s)
	}
	return floating.Size{Width: vals[0], Height: vals[1]}, nil
}

// terminalSize returns the size of the terminal on stdout in cells.
func terminalSize() floating.Size {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackViewport
	}
	return floating.Size{Width: float64(w), Height: float64(h)}
}

func writeJSON(w io.Writer, out placeOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func writeTable(w io.Writer, out placeOutput) error {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("FIELD", "VALUE").
		Row("placement", out.Placement).
		Row("requested", out.Requested).
		Row("flipped", strconv.FormatBool(out.Flipped)).
		Row("x", num(out.X)).
		Row("y", num(out.Y)).
		Row("left", out.Left).
		Row("top", out.Top).
		Row("strategy", out.Strategy).
		Row("hidden", strconv.FormatBool(out.Hidden))

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
