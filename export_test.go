package flag

import (
	"io"
	"os"
)

// StockUsage is the package's own Usage function.
var StockUsage = defaultCommandLineUsage

// ResetForTesting clears all flag state and sets the usage function as directed.
// After calling ResetForTesting, parse errors in flag handling will not
// exit the program.
func ResetForTesting(usage func()) {
	commandLineOnce.Do(func() {})
	commandLine = NewFlagSet(os.Args[0], ContinueOnError)
	commandLine.SetOutput(io.Discard)
	commandLine.SetHelpOutput(io.Discard)
	commandLine.Usage = commandLineUsage
	Usage = usage
}

// SetExitForTesting replaces the process exit used by ExitOnError.
func (f *FlagSet) SetExitForTesting(exit func(code int)) { f.exit = exit }
