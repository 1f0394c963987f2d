// Package filelist parses the "filelist" manifests hardware-description-language
// toolchains read their compilation inputs from.
//
// A filelist holds one directive per line:
//
//     +incdir+../../include_directory/
//     +define+GATE_SIM
//     +define+TEST_NAME=check_performance
//     +define+MODE="fast"
//     -v ../sv_lib/cells.v
//     -y ../module_directory/
//     ../../../alu.sv
//     # comments run to the end of the line
//
// Unquoted text must start with ".", "/", "_" or a letter and may then contain
// digits as well. Quotes around a define value are stripped.
//
// ParseLine turns one line into a Command. Parse, ParseString, ParseLines and
// ParseFile aggregate a whole filelist into a Result holding the defines,
// include directories, files and libraries in the order they were given.
// Library directives are recorded but never expanded.
//
// Parsing stops at the first malformed line. The partial Result is returned
// along with a *LineError naming the line, its text and a *ParseError.
package filelist
