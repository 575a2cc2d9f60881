// Package paymig provides the command-line interface for the paymig tool.
// It configures subcommands (scan, ignore, patterns), parses flags, and
// executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/paymig/paymig/cmd/paymig"
//	func main() { paymig.Execute() }
package paymig
