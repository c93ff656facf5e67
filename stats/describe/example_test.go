package describe_test

import (
	"fmt"

	"github.com/cwbudde/algo-outlier/stats/describe"
)

func ExampleCalculate() {
	s, _ := describe.Calculate([]float64{1, 2, 3, 4, 5, 6, 7, 8, 100})
	fmt.Printf("count=%d median=%g iqr=%g upper=%g\n", s.Count, s.Median, s.IQR, s.Fence.Upper)

	// Output:
	// count=9 median=5 iqr=4 upper=13
}
