package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"svw.info/battleship/internal/domain"
	"svw.info/battleship/internal/engine"
	"svw.info/battleship/internal/render"
)

type showOptions struct {
	rows, cols int
	hits       []string
	misses     []string
	sunk       []string
	perShip    bool
	numbers    bool
	asJSON     bool
	targets    int
}

func newShowCmd(a *app) *cobra.Command {
	opts := &showOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the heatmap for a set of hits, misses and sunk ships",
		Example: `  battleship-buddy show --miss 0,0 --hit 4,5 --hit 4,6 --sunk Destroyer
  battleship-buddy show --per-ship --numbers`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.build(a)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				snap := eng.Snapshot()
				snap.Targets = eng.Targets(opts.targets)
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}
			return opts.print(out, eng)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.rows, "rows", 0, "board rows (default from config)")
	f.IntVar(&opts.cols, "cols", 0, "board columns (default from config)")
	f.StringArrayVar(&opts.hits, "hit", nil, "hit cell as row,col (repeatable)")
	f.StringArrayVar(&opts.misses, "miss", nil, "missed cell as row,col (repeatable)")
	f.StringArrayVar(&opts.sunk, "sunk", nil, "ship type already sunk (repeatable)")
	f.BoolVar(&opts.perShip, "per-ship", false, "also print each ship type's map")
	f.BoolVar(&opts.numbers, "numbers", false, "print plain numbers instead of colours")
	f.BoolVar(&opts.asJSON, "json", false, "print the full snapshot as JSON")
	f.IntVar(&opts.targets, "targets", 3, "number of suggested cells")
	return cmd
}

// build creates an engine from config and applies the flags' observations.
func (o *showOptions) build(a *app) (*engine.Engine, error) {
	rows, cols := o.rows, o.cols
	if rows == 0 {
		rows = a.cfg.Board.Rows
	}
	if cols == 0 {
		cols = a.cfg.Board.Cols
	}
	fleet, err := domain.NewCatalogue(a.cfg.Fleet...)
	if err != nil {
		return nil, err
	}
	eng, err := engine.New(rows, cols, fleet)
	if err != nil {
		return nil, err
	}
	if err := applyObservations(eng, o.hits, domain.Hit); err != nil {
		return nil, err
	}
	if err := applyObservations(eng, o.misses, domain.Miss); err != nil {
		return nil, err
	}
	for _, name := range o.sunk {
		if err := eng.SetShipSunk(name, true); err != nil {
			return nil, err
		}
	}
	eng.RecomputeAll()
	return eng, nil
}

func applyObservations(eng *engine.Engine, coords []string, o domain.Observation) error {
	for _, s := range coords {
		at, err := domain.ParseCoord(s)
		if err != nil {
			return err
		}
		if err := eng.SetObservation(at.Row, at.Col, o); err != nil {
			return err
		}
	}
	return nil
}

func (o *showOptions) print(w io.Writer, eng *engine.Engine) error {
	p := render.NewPainter(w)
	board := eng.Board()
	draw := func(g domain.Grid) string {
		if o.numbers {
			return render.Numbers(g)
		}
		return p.Heatmap(board, g)
	}
	fmt.Fprintln(w, p.Title("Fleet"))
	fmt.Fprint(w, p.Fleet(eng.Ships()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.Title("All active ships"))
	fmt.Fprint(w, draw(eng.Aggregate()))
	if o.perShip {
		for _, name := range eng.Names() {
			g, err := eng.MapFor(name)
			if err != nil {
				return err
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, p.Title(name))
			fmt.Fprint(w, draw(g))
		}
	}
	if t := eng.Targets(o.targets); len(t) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.Title("Best targets"))
		for i, at := range t {
			fmt.Fprintf(w, "%2d. row %d col %d\n", i+1, at.Row, at.Col)
		}
	}
	return nil
}
