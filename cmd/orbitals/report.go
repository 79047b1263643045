package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/kapitanov/orbitals"
)

// writeSummary writes the final state of every body.
func writeSummary(w io.Writer, solver *orbitals.Solver) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "body\tcontroller\tmass (kg)\tposition (m)\tspeed (m/s)\t|R| min (m)\t|R| max (m)\n")
	for _, b := range solver.Bodies() {
		h := b.PositionHistory()
		fmt.Fprintf(tw, "%s\t%s\t%.6g\t%s\t%.6g\t%.6g\t%.6g\n", b.Name, b.Controller().Kind(), b.Mass, b.Position, b.Velocity.Length(), h.MinMagnitude(), h.MaxMagnitude())
	}
	fmt.Fprintf(tw, "\n%d records over %s\n", len(solver.Times()), solver.TimeRange())
	return tw.Flush()
}

// writePlot plots the distance of the named body from the origin over the recorded history.
func writePlot(w io.Writer, solver *orbitals.Solver, name string, height int) error {
	b, ok := solver.Body(name)
	if !ok {
		return fmt.Errorf("cannot plot unknown body `%s`", name)
	}
	h := b.PositionHistory()
	if h.Len() == 0 {
		return fmt.Errorf("nothing recorded for `%s`", name)
	}
	graph := asciigraph.Plot(h.Magnitude,
		asciigraph.Height(height),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("%s: distance from origin (m) over %d records", name, h.Len())))
	_, err := fmt.Fprintln(w, graph)
	return err
}
