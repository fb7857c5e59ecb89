// Package amount provides the numeric side of reconciliation: parsing report
// values into exact decimals, comparing expected and reported totals under a
// configurable tolerance, and rendering amounts the way the audit reports
// display them.
//
// All arithmetic uses shopspring/decimal so that a difference sitting exactly
// on the tolerance threshold is classified deterministically.
//
// # Usage
//
//	tol := amount.DefaultTolerance()
//	expected := price.Mul(quantity)
//	equal := tol.Equal(expected, reported)
//	fmt.Println(amount.Format(expected), amount.YesNo(equal))
package amount
