package rfft_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rfft/dsp/rfft"
)

func clean(v float64) float64 {
	if math.Abs(v) < 1e-12 {
		return 0
	}
	return math.Round(v*1e6) / 1e6
}

func ExampleEngine_Forward() {
	e := rfft.New()
	packed, _ := e.Forward([]float64{0, 1, 0, -1})
	for _, v := range packed {
		fmt.Print(clean(v), " ")
	}
	fmt.Println()
	// Output:
	// 0 0 0 -2 0 0
}

func ExampleEngine_PeakBin() {
	e := rfft.New()
	bin, _ := e.PeakBin([]float64{1, 1, 1, 1})
	fmt.Println(bin)
	// Output:
	// 0
}

func ExampleEngine_Inverse() {
	e := rfft.New()
	signal, _ := e.Inverse([]float64{4, 0, 0, 0, 0, 0})
	for _, v := range signal {
		fmt.Print(clean(v), " ")
	}
	fmt.Println()
	// Output:
	// 1 1 1 1
}

func ExamplePlanner() {
	planner := rfft.NewPlanner()
	plan, _ := planner.PlanForward(1024)
	again, _ := planner.PlanForward(1024)
	fmt.Println(plan.SpectrumLen(), plan == again, planner.Len())
	// Output:
	// 513 true 1
}
