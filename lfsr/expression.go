package lfsr

import (
	"fmt"
	"strings"

	"github.com/pshatov/lfsr-template/gf2"
)

// NextStateExpression returns the human-readable next-state function
// body for the given feedback polynomial: the register shifted by one
// with the XOR of the tapped current bits fed back in, taps listed in
// descending order. The text is consumed verbatim by the Verilog
// renderer. Galois mode has no defined expression.
func NextStateExpression(mode FeedbackMode, poly gf2.Matrix, width int) (string, error) {
	switch mode {
	case Fibonacci:
		return fibonacciExpression(poly, width), nil
	case Galois:
		return "", NotImplementedError{Op: "next-state expression"}
	default:
		panic("unknown feedback mode")
	}
}

func fibonacciExpression(poly gf2.Matrix, width int) string {
	expr := fmt.Sprintf("lfsr_value_next = {lfsr_value_current[%d:0], ", width-2)
	// Continuation lines align under the feedback term, which sits 8
	// columns deep inside the rendered function body.
	offset := 8 + len(expr)
	expr += fmt.Sprintf("lfsr_value_current[%d] ^", width-1)

	totalTaps := 0
	for j := 0; j < width; j++ {
		totalTaps += poly.At(0, j)
	}

	seenTaps := 1
	for i := width - 2; i >= 0; i-- {
		if poly.At(0, i) != 1 {
			continue
		}
		expr += "\n" + strings.Repeat(" ", offset) + fmt.Sprintf("lfsr_value_current[%d]", i)
		seenTaps++
		if seenTaps < totalTaps {
			expr += " ^"
		} else {
			expr += "};"
		}
	}
	return expr
}
