// Command iqrcap winsorizes numeric CSV columns with Tukey fences.
//
// Usage:
//
//	iqrcap <command> [flags] [file]
//
// Examples:
//
//	iqrcap cap sales.csv --fill mean --out capped.csv
//	iqrcap cap housing.csv --dedupe --fill mean --fill-text mode
//	iqrcap fences -o json --columns sale_price prices.csv
//	iqrcap describe --multiplier 3 churn.csv
package main

import (
	"os"

	"github.com/cwbudde/algo-outlier/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
