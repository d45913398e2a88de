// Package main provides the entry point for the SafeGuard CLI.
//
// SafeGuard renders the email threat analyzer landing page in the terminal.
// Paste an email or pick a file, press analyze, and read the report.
//
// Usage:
//
//	safeguard
//	safeguard --file suspicious.eml --analysis-delay 1s
//	safeguard --drop-dir ~/Downloads/safeguard
//
// See --help for all available options.
package main

func main() {
	Execute()
}
