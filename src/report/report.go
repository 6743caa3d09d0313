// Package report renders end-of-run results to CSV files and the console.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"elevsim/src/stats"
	"elevsim/src/types"
)

// WriteCSVReport writes snap to the given path or directory.
// If reportPath is a directory, it creates a timestamped file inside.
// If reportPath is a file, a timestamp is suffixed before the extension.
// An empty reportPath writes nothing.
func WriteCSVReport(reportPath, runID string, snap types.Snapshot) (string, error) {
	if reportPath == "" {
		return "", nil
	}
	ts := time.Now().Format("20060102-150405")
	outPath := reportPath
	if fi, err := os.Stat(outPath); err == nil && fi.IsDir() {
		outPath = filepath.Join(outPath, fmt.Sprintf("elevsim-%s-%s.csv", runID, ts))
	} else {
		ext := filepath.Ext(outPath)
		base := outPath[:len(outPath)-len(ext)]
		outPath = fmt.Sprintf("%s-%s%s", base, ts, ext)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return "", errors.Wrap(err, "create report")
	}
	defer f.Close()

	if err := writeCSV(f, runID, ts, snap); err != nil {
		return "", errors.Wrapf(err, "write report %s", outPath)
	}
	slog.Info("CSV report written", "path", outPath)
	return outPath, nil
}

func writeCSV(w io.Writer, runID, ts string, snap types.Snapshot) error {
	sum := stats.Summarize(snap.CompletedTrips)
	var b strings.Builder
	fmt.Fprintln(&b, "section,id,position,behaviour,onboard,capacity,load,waiting_up,waiting_down,value,run,timestamp")
	for _, e := range snap.Elevators {
		fmt.Fprintf(&b, "elevator,%d,%.2f,%s,%d,%d,%s,,,,%s,%s\n",
			e.ID, e.Position, e.Behaviour, len(e.Passengers), e.Capacity, e.Load, runID, ts)
	}
	for _, f := range snap.Floors {
		fmt.Fprintf(&b, "floor,%d,,,,,,%d,%d,,%s,%s\n", f.Index, len(f.UpQueue), len(f.DownQueue), runID, ts)
	}
	for i, avg := range snap.AvgWaitHistory {
		fmt.Fprintf(&b, "history,%d,,,,,,,,%.2f,%s,%s\n", i, avg, runID, ts)
	}
	summary := []struct {
		name  string
		value string
	}{
		{"ticks", fmt.Sprint(snap.Tick)},
		{"generated", fmt.Sprint(snap.Generated)},
		{"delivered", fmt.Sprint(sum.Count)},
		{"waiting", fmt.Sprint(snap.Generated - sum.Count - snap.Onboard())},
		{"onboard", fmt.Sprint(snap.Onboard())},
		{"avg_trip", fmt.Sprintf("%.2f", sum.Mean)},
		{"min_trip", fmt.Sprint(sum.Min)},
		{"max_trip", fmt.Sprint(sum.Max)},
	}
	for _, s := range summary {
		fmt.Fprintf(&b, "summary,%s,,,,,,,,%s,%s,%s\n", s.name, s.value, runID, ts)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// PrintConsoleReport prints a human-readable report to w.
func PrintConsoleReport(w io.Writer, runID string, snap types.Snapshot) {
	sum := stats.Summarize(snap.CompletedTrips)
	fmt.Fprintln(w, "=== Simulation Report ===")
	fmt.Fprintf(w, "Run: %s\n", runID)
	fmt.Fprintf(w, "Ticks: %d\n", snap.Tick)
	fmt.Fprintf(w, "Passengers generated: %d\n", snap.Generated)
	fmt.Fprintf(w, "Passengers delivered: %d\n", sum.Count)
	fmt.Fprintf(w, "Passengers on board: %d\n", snap.Onboard())
	fmt.Fprintf(w, "Waiting per floor: %v\n", snap.WaitingPerFloor())
	fmt.Fprintf(w, "Average trip: %.2f ticks (min %d, max %d)\n", sum.Mean, sum.Min, sum.Max)
	for _, e := range snap.Elevators {
		target := "-"
		if e.Target >= 0 {
			target = fmt.Sprint(e.Target)
		}
		fmt.Fprintf(w, "Elevator %d at %.1f %s load=%d/%d (%s) requests=%v target=%s\n",
			e.ID, e.Position, e.Behaviour, len(e.Passengers), e.Capacity, e.Load, e.Requests, target)
	}
	if n := len(snap.AvgWaitHistory); n > 0 {
		fmt.Fprintf(w, "Latest sampled average: %.2f ticks (%d samples)\n", snap.AvgWaitHistory[n-1], n)
	}
}
