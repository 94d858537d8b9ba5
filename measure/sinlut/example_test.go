package sinlut_test

import (
	"fmt"

	"github.com/cwbudde/algo-sensor/measure/sinlut"
)

func ExampleAnalyze() {
	res, err := sinlut.Analyze(sinlut.Config{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("monotonic:", res.Monotonic)
	fmt.Println("within half a step:", res.MaxAbsError <= 0.0005)
	// Output:
	// monotonic: true
	// within half a step: true
}
