package errors_test

import (
	"fmt"

	"github.com/fbdl-go/fbdl/errors"
	"github.com/fbdl-go/fbdl/lexer"
)

// Example showing how to use TextFormatter for CLI output
func ExampleTextFormatter() {
	source := []byte("Main bus\n  width = 0b012")

	_, err := lexer.NewLexer(source, "main.fbd").ScanAll()

	formatter := errors.NewTextFormatter()
	fmt.Println(formatter.Format(err))
	// Output:
	// main.fbd:2:15: invalid character '2' in binary integer literal
	//
	//    Main bus
	//      width = 0b012
	//                  ^
}

// Example showing how to use JSONFormatter for tool output
func ExampleJSONFormatter() {
	_, err := lexer.NewLexer([]byte("a,,"), "main.fbd").ScanAll()

	formatter := errors.NewJSONFormatter()
	fmt.Println(formatter.Format(err))
	// Output:
	// {"type":"*lexer.Error","kind":"RedundantPunctuation","message":"redundant ','","position":{"filename":"main.fbd","line":1,"column":3,"start":2,"end":2}}
}
