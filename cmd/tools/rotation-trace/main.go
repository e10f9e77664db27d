// Command rotation-trace integrates a constant body angular velocity and
// plots the resulting roll/pitch/yaw trace. Useful for eyeballing Euler
// extraction behaviour near gimbal lock.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/spatial"
	"github.com/banshee-data/spatial/internal/units"
)

func main() {
	omegaFlag := flag.String("omega", "0.5,0.2,1.0", "angular velocity rad/s as x,y,z")
	dt := flag.Float64("dt", 0.01, "integration step in seconds")
	steps := flag.Int("steps", 1000, "number of integration steps")
	unit := flag.String("units", units.Radians, "angle axis units ("+units.GetValidUnitsString()+")")
	out := flag.String("o", "rotation-trace.png", "output PNG path")
	flag.Parse()

	if !units.IsValid(*unit) {
		log.Fatalf("bad -units %q: want one of %s", *unit, units.GetValidUnitsString())
	}
	omega, err := parseVector(*omegaFlag)
	if err != nil {
		log.Fatalf("bad -omega: %v", err)
	}

	step := spatial.FromAngularVelocity(omega, *dt)
	rot := spatial.IdentityRotation()

	rolls := make(plotter.XYs, *steps)
	pitches := make(plotter.XYs, *steps)
	yaws := make(plotter.XYs, *steps)
	for i := 0; i < *steps; i++ {
		rot = step.Mul(rot)
		roll, pitch, yaw := rot.EulerAngles()
		t := float64(i+1) * *dt
		rolls[i] = plotter.XY{X: t, Y: units.ConvertAngle(roll, *unit)}
		pitches[i] = plotter.XY{X: t, Y: units.ConvertAngle(pitch, *unit)}
		yaws[i] = plotter.XY{X: t, Y: units.ConvertAngle(yaw, *unit)}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Euler trace, ω=(%g, %g, %g) rad/s", omega.X, omega.Y, omega.Z)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Angle (" + *unit + ")"
	p.Legend.Top = true

	for _, series := range []struct {
		name string
		pts  plotter.XYs
		col  color.RGBA
	}{
		{"roll", rolls, color.RGBA{R: 200, A: 255}},
		{"pitch", pitches, color.RGBA{G: 160, A: 255}},
		{"yaw", yaws, color.RGBA{B: 220, A: 255}},
	} {
		line, err := plotter.NewLine(series.pts)
		if err != nil {
			log.Fatalf("plot %s: %v", series.name, err)
		}
		line.Color = series.col
		p.Add(line)
		p.Legend.Add(series.name, line)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, *out); err != nil {
		log.Fatalf("save plot: %v", err)
	}
	log.Printf("wrote %s", *out)
}

func parseVector(s string) (r3.Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vector{}, fmt.Errorf("want 3 comma-separated components, got %d", len(parts))
	}
	var c [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r3.Vector{}, fmt.Errorf("component %d: %w", i, err)
		}
		c[i] = v
	}
	return r3.Vector{X: c[0], Y: c[1], Z: c[2]}, nil
}
