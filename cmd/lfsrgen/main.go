package main

import (
	"errors"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pshatov/lfsr-template/errorcode"
	"github.com/pshatov/lfsr-template/gf2"
	"github.com/pshatov/lfsr-template/lfsr"
	"github.com/pshatov/lfsr-template/verilog"
)

// logDelegate prints search and certification progress when -verbose
// is given.
type logDelegate struct {
	verbose bool
	width   int
}

func (d logDelegate) printf(format string, args ...interface{}) {
	if d.verbose {
		fmt.Printf(format, args...)
	}
}

func (d logDelegate) OnInitialStateDraw(value *big.Int) {
	d.printf("  RNG returned %v\n", value)
}

func (d logDelegate) OnPolynomialDraw(value *big.Int) {
	d.printf("  RNG returned 0x%0*x\n", (d.width+3)/4, value)
}

func (d logDelegate) OnFullPeriodCheck(period *big.Int, ok bool) {
	if ok {
		d.printf("Value after full period matches initial value (OK)\n")
	} else {
		d.printf("Value after full period doesn't match initial value, not max length\n")
	}
}

func (d logDelegate) OnPeriodPrime(period *big.Int) {
	d.printf("Period is prime, no further checks needed\n")
}

func (d logDelegate) OnSubPeriodCheck(divisor *big.Int, ok bool) {
	d.printf("  Checking sub-period of %v\n", divisor)
	if ok {
		d.printf("    Value after sub-period doesn't match initial value (OK)\n")
	} else {
		d.printf("    Value after sub-period matches initial value, not max length\n")
	}
}

func exitf(code errorcode.Errorcode, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(int(code))
}

// exitCode maps a core error to the process exit code.
func exitCode(err error) errorcode.Errorcode {
	switch err.(type) {
	case lfsr.ConfigError:
		return errorcode.InvalidCommandLineArguments
	case lfsr.InvalidPolynomialError:
		return errorcode.InvalidPolynomial
	case lfsr.ProhibitedStateError:
		return errorcode.ProhibitedState
	case lfsr.NotMaxLengthError:
		return errorcode.NotMaxLength
	case lfsr.NotImplementedError:
		return errorcode.NotImplemented
	case lfsr.SearchExhaustedError:
		return errorcode.SearchExhausted
	default:
		return errorcode.LogicError
	}
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, `
Usage:
  %s [options] <width>

Generate a Verilog LFSR module and testbench with a certified
maximum-length feedback polynomial.

Options:
`, name)
	flag.PrintDefaults()
}

func main() {
	fibonacci := flag.Bool("fibonacci", false, "generate Fibonacci LFSR (the default)")
	galois := flag.Bool("galois", false, "generate Galois LFSR")
	initValue := flag.String("init-value", "0x1", "initial value of the shift register, as a hex number")
	initRandom := flag.Bool("init-random", false, "generate a random initial value instead")
	resetTypeName := flag.String("reset-type", string(verilog.SyncHigh),
		"type of reset to use (srst, srstn, arst or arstn)")
	polyValue := flag.String("poly", "",
		"feedback polynomial as a hex number with the highest power on the left (default is to search for a random one)")
	moduleName := flag.String("module-name", "", `name of module to generate (default "lfsr<width>")`)
	clockEnable := flag.Bool("clock-enable", false, "add a clock enable port")
	verbose := flag.Bool("verbose", false, "print internal operation details")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(int(errorcode.InvalidCommandLineArguments))
	}

	width, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		exitf(errorcode.InvalidCommandLineArguments, "can't parse width (%q)", flag.Arg(0))
	}
	if err := lfsr.ValidateWidth(width); err != nil {
		exitf(exitCode(err), "%v", err)
	}

	if *fibonacci && *galois {
		exitf(errorcode.InvalidCommandLineArguments, "-fibonacci and -galois are mutually exclusive")
	}
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	if setFlags["init-value"] && setFlags["init-random"] {
		exitf(errorcode.InvalidCommandLineArguments, "-init-value and -init-random are mutually exclusive")
	}

	mode := lfsr.Fibonacci
	if *galois {
		mode = lfsr.Galois
	}

	resetType, err := verilog.ParseResetType(*resetTypeName)
	if err != nil {
		exitf(errorcode.InvalidCommandLineArguments, "%v", err)
	}

	delegate := logDelegate{verbose: *verbose, width: width}

	name := *moduleName
	if name == "" {
		name = fmt.Sprintf("lfsr%d", width)
	}
	delegate.printf("Generating %d-bit LFSR named '%s'...\n", width, name)

	delegate.printf("Seeding RNG...\n")
	searcher := lfsr.NewSearcher(0, delegate)

	init := pickInitialValue(searcher, mode, width, *initValue, *initRandom, delegate)
	initRow := lfsr.RowFromInt(init, width)

	var poly gf2.Matrix
	if *polyValue != "" {
		poly = parseUserPolynomial(mode, width, *polyValue, initRow, delegate)
	} else {
		delegate.printf("Trying to generate a random polynomial...\n")
		var err error
		poly, err = searcher.SearchPolynomial(mode, width, initRow)
		if err != nil {
			exitf(exitCode(err), "%v", err)
		}
		delegate.printf("    OK\n")
	}

	params, err := verilog.NewParams(*moduleName, mode, poly, width, initRow, resetType, *clockEnable)
	if err != nil {
		exitf(exitCode(err), "%v", err)
	}

	for _, target := range verilog.Targets {
		if err := verilog.Write(target, params); err != nil {
			exitf(errorcode.FileIOError, "writing %s: %v", verilog.OutputPath(target, params), err)
		}
	}
}

func pickInitialValue(searcher *lfsr.Searcher, mode lfsr.FeedbackMode, width int, initValue string, initRandom bool, delegate logDelegate) *big.Int {
	if initRandom {
		delegate.printf("Generating random initial value...\n")
		init, err := searcher.RandomInitialState(mode, width)
		if err != nil {
			exitf(exitCode(err), "%v", err)
		}
		delegate.printf("    OK\n")
		return init
	}

	delegate.printf("Parsing initial value...\n")
	init, err := lfsr.ParseHexValue(initValue)
	if err != nil {
		exitf(exitCode(err), "initial value: %v", err)
	}
	if err := lfsr.CheckValueWidth(init, width); err != nil {
		exitf(exitCode(err), "initial value: %v", err)
	}
	if err := lfsr.ValidateInitialState(mode, init, width); err != nil {
		delegate.printf("%v\n", err)
		exitf(exitCode(err), "initial value %q is prohibited for the specified LFSR mode", initValue)
	}
	return init
}

func parseUserPolynomial(mode lfsr.FeedbackMode, width int, polyValue string, initRow gf2.Matrix, delegate logDelegate) gf2.Matrix {
	delegate.printf("Using user-supplied polynomial...\n")
	value, err := lfsr.ParseHexValue(polyValue)
	if err != nil {
		exitf(exitCode(err), "polynomial: %v", err)
	}
	if err := lfsr.CheckValueWidth(value, width); err != nil {
		exitf(exitCode(err), "polynomial: %v", err)
	}

	poly := lfsr.RowFromInt(value, width)
	if err := lfsr.ValidatePolynomial(poly, width); err != nil {
		delegate.printf("%v\n", err)
		exitf(exitCode(err), "user-supplied polynomial is invalid")
	}
	if err := lfsr.CertifyMaxLength(mode, poly, width, initRow, delegate); err != nil {
		var notImplemented lfsr.NotImplementedError
		if errors.As(err, &notImplemented) {
			exitf(exitCode(err), "%v", err)
		}
		delegate.printf("%v\n", err)
		exitf(exitCode(err), "user-supplied polynomial is not maximum length")
	}
	return poly
}
