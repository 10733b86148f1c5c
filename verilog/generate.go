package verilog

import (
	"bytes"
	"os"
	"text/template"
)

// Target selects which output product to generate.
type Target int

const (
	// Module is the synthesizable LFSR module.
	Module Target = iota
	// Testbench is the self-checking simulation testbench.
	Testbench
)

// Targets lists every output product in generation order.
var Targets = []Target{Module, Testbench}

const moduleText = `module {{.ModuleName}} #
(
    parameter [{{.Width1}}:0] INIT = {{.Width}}'b{{.InitValueBin}}
)
(
    input clk,
    input {{.ResetPortName}},{{.ClockEnablePortDeclaration}}
    output [{{.Width1}}:0] value
);

    reg [{{.Width1}}:0] lfsr_value = INIT;

    assign value = lfsr_value;

    function  [{{.Width1}}:0] lfsr_value_next;
        input [{{.Width1}}:0] lfsr_value_current;
        {{.PolyFunc}}
    endfunction

    always @({{.SensitivityList}})
        //
        if ({{.ResetSignal}}) lfsr_value <= INIT;
        else{{.ClockEnableCondition}} lfsr_value <= lfsr_value_next(lfsr_value);

endmodule
`

const testbenchText = "`timescale 1ns / 1ps" + `

module tb_{{.ModuleName}};


    //
    // Clock
    //
    reg clk = 1'b0;
    localparam CLOCK_PERIOD = 10.0; // 100 MHz
    initial forever #(0.5 * CLOCK_PERIOD) clk = ~clk;


    //
    // Reset
    //
    reg {{.ResetPortName}} = {{.TBResetActive}};


    //
    // UUT
    //
    wire [{{.Width1}}:0] uut_dout;
    reg  [{{.Width1}}:0] uut_dout_init;
    {{.ModuleName}} uut
    (
        .clk(clk),
        .{{.ResetPortName}}({{.ResetPortName}}),{{.TBClockEnable}}
        .value(uut_dout)
    );


    //
    // Script
    //
    integer i;
    initial begin
        $dumpfile("tb_{{.ModuleName}}.vcd");
        $dumpvars(0);
        #(100.0 * CLOCK_PERIOD);
        uut_dout_init = uut_dout;
        #(100.0 * CLOCK_PERIOD);
        {{.ResetPortName}} = {{.TBResetInactive}};
        for (i=0; i<{{.Period}}; i=i+1)
            #(1.0 * CLOCK_PERIOD);
        if (uut_dout == uut_dout_init)
            $display("Output value after full period matches the initial value - OK");
        else
            $display("Output value after full period doesn't match the initial value - ERROR");
        $finish;
    end


endmodule
`

var (
	moduleTemplate    = template.Must(template.New("module").Parse(moduleText))
	testbenchTemplate = template.Must(template.New("testbench").Parse(testbenchText))
)

// Generate renders the given target from params.
func Generate(target Target, params Params) (string, error) {
	var tmpl *template.Template
	switch target {
	case Module:
		tmpl = moduleTemplate
	case Testbench:
		tmpl = testbenchTemplate
	default:
		panic("unknown target")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// OutputPath returns the file the given target is written to.
func OutputPath(target Target, params Params) string {
	if target == Testbench {
		return "tb_" + params.ModuleName + ".v"
	}
	return params.ModuleName + ".v"
}

type fileIO interface {
	WriteFile(path string, data []byte) error
}

type defaultFileIO struct{}

func (io defaultFileIO) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0600)
}

// Write renders the given target and writes it to its output file.
func Write(target Target, params Params) error {
	return write(defaultFileIO{}, target, params)
}

func write(io fileIO, target Target, params Params) error {
	rendered, err := Generate(target, params)
	if err != nil {
		return err
	}
	return io.WriteFile(OutputPath(target, params), []byte(rendered))
}
