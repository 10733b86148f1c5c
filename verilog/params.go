package verilog

import (
	"fmt"
	"math/big"

	"github.com/pshatov/lfsr-template/gf2"
	"github.com/pshatov/lfsr-template/lfsr"
)

// ResetType selects the reset port style of the generated module. The
// string value doubles as the reset port name.
type ResetType string

const (
	// SyncHigh is a synchronous active-high reset.
	SyncHigh ResetType = "srst"
	// SyncLow is a synchronous active-low reset.
	SyncLow ResetType = "srstn"
	// AsyncHigh is an asynchronous active-high reset.
	AsyncHigh ResetType = "arst"
	// AsyncLow is an asynchronous active-low reset.
	AsyncLow ResetType = "arstn"
)

// ResetTypes lists every supported reset type.
var ResetTypes = []ResetType{SyncHigh, SyncLow, AsyncHigh, AsyncLow}

// ParseResetType converts a reset port name into a ResetType.
func ParseResetType(s string) (ResetType, error) {
	for _, resetType := range ResetTypes {
		if s == string(resetType) {
			return resetType, nil
		}
	}
	return "", fmt.Errorf("unknown reset type %q", s)
}

// Params holds every value the module and testbench templates
// consume.
type Params struct {
	ModuleName string
	Width      int
	// Width1 and Width2 are Width - 1 and Width - 2, the bus and
	// shift bounds the templates index with.
	Width1 int
	Width2 int
	Period *big.Int

	ResetPortName   string
	SensitivityList string
	ResetSignal     string
	TBResetActive   string
	TBResetInactive string

	ClockEnablePortDeclaration string
	ClockEnableCondition       string
	TBClockEnable              string

	InitValueBin string
	PolyFunc     string
}

// NewParams derives the full template parameter set from a certified
// configuration. moduleName may be empty to get the default
// "lfsr<width>" name.
func NewParams(moduleName string, mode lfsr.FeedbackMode, poly gf2.Matrix, width int, init gf2.Matrix, resetType ResetType, clockEnable bool) (Params, error) {
	polyFunc, err := lfsr.NextStateExpression(mode, poly, width)
	if err != nil {
		return Params{}, err
	}

	if moduleName == "" {
		moduleName = fmt.Sprintf("lfsr%d", width)
	}

	active, inactive := testbenchResets(resetType)
	return Params{
		ModuleName: moduleName,
		Width:      width,
		Width1:     width - 1,
		Width2:     width - 2,
		Period:     lfsr.Period(width),

		ResetPortName:   string(resetType),
		SensitivityList: sensitivityList(resetType),
		ResetSignal:     resetSignal(resetType),
		TBResetActive:   active,
		TBResetInactive: inactive,

		ClockEnablePortDeclaration: clockEnablePortDeclaration(clockEnable),
		ClockEnableCondition:       clockEnableCondition(clockEnable),
		TBClockEnable:              testbenchClockEnable(clockEnable),

		InitValueBin: initValueBin(init, width),
		PolyFunc:     polyFunc,
	}, nil
}

func sensitivityList(resetType ResetType) string {
	list := "posedge clk"
	switch resetType {
	case AsyncHigh:
		list += " or posedge " + string(resetType)
	case AsyncLow:
		list += " or negedge " + string(resetType)
	}
	return list
}

func resetSignal(resetType ResetType) string {
	signal := string(resetType)
	if resetType == SyncLow || resetType == AsyncLow {
		signal = "!" + signal
	}
	return signal
}

func testbenchResets(resetType ResetType) (active, inactive string) {
	if resetType == SyncHigh || resetType == AsyncHigh {
		return "1'b1", "1'b0"
	}
	return "1'b0", "1'b1"
}

func clockEnablePortDeclaration(clockEnable bool) string {
	if clockEnable {
		return "\n    input ce,"
	}
	return ""
}

func clockEnableCondition(clockEnable bool) string {
	if clockEnable {
		return " if (ce)"
	}
	return ""
}

func testbenchClockEnable(clockEnable bool) string {
	if clockEnable {
		return "\n        .ce(1'b1),"
	}
	return ""
}

// initValueBin renders the initial value most significant bit first.
func initValueBin(init gf2.Matrix, width int) string {
	bin := make([]byte, 0, width)
	for i := width - 1; i >= 0; i-- {
		bin = append(bin, '0'+byte(init.At(0, i)))
	}
	return string(bin)
}
