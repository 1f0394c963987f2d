package filelist_test

import (
	"fmt"

	"github.com/sv-explorer/filelist"
)

func ExampleParseString() {
	result, err := filelist.ParseString("filelist.f", `
+define+GATE_SIM
+define+TEST_NAME="check_performance"
+incdir+../../include_directory/
-v ../sv_lib/cells.v
../../../alu.sv  # the ALU
`)
	if err != nil {
		panic(err)
	}
	fmt.Println(result.Defines)
	fmt.Println(result.Includes)
	fmt.Println(result.Files)
	fmt.Println(result.LibraryFiles())
	// Output:
	// [GATE_SIM TEST_NAME=check_performance]
	// [../../include_directory/]
	// [../../../alu.sv]
	// [../sv_lib/cells.v]
}

func ExampleParseLine() {
	_, err := filelist.ParseLine("+define+NAME=")
	fmt.Println(filelist.KindOf(err))
	fmt.Println(err)
	// Output:
	// UnexpectedEndOfInput
	// 1:14: unexpected end of input (expected <path>)
}
