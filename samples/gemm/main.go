package main

import (
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/SamuelNadutey/systolic-array-accelerator/api"
	"github.com/SamuelNadutey/systolic-array-accelerator/config"
	"github.com/SamuelNadutey/systolic-array-accelerator/core"
	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
	"github.com/SamuelNadutey/systolic-array-accelerator/util/valgen"
	"github.com/SamuelNadutey/systolic-array-accelerator/verify"
)

var rows = 4
var cols = 4

func runGEMM(driver api.Driver) {
	a := valgen.Fill(rows, rows, valgen.MakeDiagonalGen(2, 1))
	b := valgen.Fill(rows, cols, valgen.MakeSumGen(2))

	dst := make([][]systolic.Accum, rows)
	for i := range dst {
		dst[i] = make([]systolic.Accum, cols)
	}

	driver.LoadWeights(b)
	driver.StreamMatrix(a)
	driver.Collect(dst)
	driver.Run()

	fmt.Println("A =", a)
	fmt.Println("B =", b)
	fmt.Println("C =", dst)

	report := verify.Compare(verify.Product(a, b), dst)
	report.WriteReport(os.Stdout)
	if !report.OK() {
		atexit.Exit(1)
	}
}

func main() {
	core.PrintToggle = true

	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("Driver")

	device := config.DeviceBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithRows(rows).
		WithCols(cols).
		Build("Device")

	driver.RegisterDevice(device)
	runGEMM(driver)
	atexit.Exit(0)
}
