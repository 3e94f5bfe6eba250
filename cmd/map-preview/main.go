// Command map-preview prints generated terrain and start regions without running a match
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lixenwraith/territory/config"
	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/mapgen"
)

func main() {
	cfg := config.Default()
	flag.IntVar(&cfg.Map.Width, "width", cfg.Map.Width, "Map width")
	flag.IntVar(&cfg.Map.Height, "height", cfg.Map.Height, "Map height")
	flag.Int64Var(&cfg.Map.Seed, "seed", cfg.Map.Seed, "Generator seed")
	flag.StringVar(&cfg.Map.Layout, "layout", cfg.Map.Layout, "open, noise or maze")
	flag.Float64Var(&cfg.Map.Braiding, "braiding", cfg.Map.Braiding, "Maze dead-end opening chance [0, 1]")
	flag.Float64Var(&cfg.Map.ObstacleThreshold, "threshold", cfg.Map.ObstacleThreshold, "Noise obstacle threshold, >= 1 disables")
	flag.IntVar(&cfg.Players.Enemies, "enemies", cfg.Players.Enemies, "Computer players")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "map-preview: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	plan := mapgen.Generate(cfg.MapOptions())
	dur := time.Since(start)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	fmt.Fprintf(out, "Generated %dx%d %s map in %v\n", plan.Bounds.Width, plan.Bounds.Height, cfg.Map.Layout, dur)
	fmt.Fprintf(out, "Colorable: %d/%d\n", colorable(plan), plan.Bounds.Area())
	draw(out, plan)
}

func colorable(plan mapgen.Plan) int {
	n := 0
	for y := 0; y < plan.Bounds.Height; y++ {
		for x := 0; x < plan.Bounds.Width; x++ {
			if !plan.Blocked(core.Pos(x, y)) {
				n++
			}
		}
	}
	return n
}

// draw prints blocked cells as blocks, start centers as their player digit and start regions lowercase
func draw(w io.Writer, plan mapgen.Plan) {
	marks := make(map[[2]int]rune)
	for i, s := range plan.Starts {
		for _, p := range mapgen.Region(s, plan.Radius, plan.Bounds) {
			marks[[2]int{p.X, p.Y}] = rune('a' + i)
		}
		marks[[2]int{s.X, s.Y}] = rune('0' + i)
	}

	var sb strings.Builder
	for y := 0; y < plan.Bounds.Height; y++ {
		for x := 0; x < plan.Bounds.Width; x++ {
			switch r, ok := marks[[2]int{x, y}]; {
			case ok:
				sb.WriteRune(r)
			case plan.Blocked(core.Pos(x, y)):
				sb.WriteRune('█')
			default:
				sb.WriteRune('·')
			}
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}
