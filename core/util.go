package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const LevelTrace slog.Level = slog.LevelInfo + 1

// PrintToggle turns on the per-cycle grid state dump.
var PrintToggle = false

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// PrintState dumps the stationary weights and the committed wire
// registers of a grid. Enabled with PrintToggle; meant for debugging
// wavefront alignment by eye.
func PrintState(g *Grid) {
	if !PrintToggle {
		return
	}

	fmt.Printf("==============Grid %dx%d==============\n", g.rows, g.cols)

	wTable := table.NewWriter()
	wTable.SetTitle("Stationary Weights")

	header := table.Row{""}
	for c := 0; c < g.cols; c++ {
		header = append(header, fmt.Sprintf("Col%d", c))
	}
	wTable.AppendHeader(header)

	for r := 0; r < g.rows; r++ {
		row := table.Row{fmt.Sprintf("Row%d", r)}
		for c := 0; c < g.cols; c++ {
			row = append(row, int32(g.pes[r*g.cols+c].Weight()))
		}
		wTable.AppendRow(row)
	}

	fmt.Println(wTable.Render())

	pTable := table.NewWriter()
	pTable.SetTitle("Partial-Sum Wires")
	pTable.AppendHeader(header)

	for r := 0; r < g.rows; r++ {
		row := table.Row{fmt.Sprintf("Row%d", r)}
		for c := 0; c < g.cols; c++ {
			row = append(row, int64(g.psumWires[r*g.cols+c]))
		}
		pTable.AppendRow(row)
	}

	fmt.Println(pTable.Render())
	fmt.Println("================================================")
}
