// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package flag implements command-line flag parsing with the syntax and
semantics of the standard library's flag package, storing parsed values
through references instead of raw pointers.

Usage:

Define flags using flag.String(), Bool(), Int(), etc.

This declares an integer flag, -n, stored in a Cell owned by the default
flag set:

	import "github.com/machship/flag/v2"
	var n = flag.Int("n", 1234, "help message for n")

If you like, you can bind the flag to storage you own using the Var
functions. Any Ref works: a variable, a struct field or a map entry.

	var flagvar int
	flag.IntVar(flag.Pointer(&flagvar), "flagname", 1234, "help message for flagname")

	flag.IntVar(flag.Field[int](&cfg, "Port"), "port", 8080, "listen port")
	flag.IntVar(flag.Key(settings, "port"), "port", 8080, "listen port")

Or pair any Converter with any Ref using Define:

	flag.Define[uint8](flag.CommandLine(), flag.UintConverter[uint8]{Base: 16}, ref, "mask", 0xff, "bit mask")

After all flags are defined, call

	flag.Parse()

to parse the command line into the defined flags. Cells returned by the
definition functions are read with Get, which panics if it is called before
the owning set has been parsed.

	fmt.Println("n has value ", n.Get())
	fmt.Println("flagvar has value ", flagvar)

After parsing, the arguments following the flags are available as the
slice flag.Args() or individually as flag.Arg(i).
The arguments are indexed from 0 through flag.NArg()-1.

Command line flag syntax:

	-flag
	-flag=x
	-flag x  // non-boolean flags only

One or two minus signs may be used; they are equivalent.
The last form is not permitted for boolean flags because the
meaning of the command

	cmd -x *

will change if there is a file called 0, false, etc.  You must
use the -flag=false form to turn off a boolean flag.

Flag parsing stops just before the first non-flag argument
("-" is a non-flag argument) or after the terminator "--".
Everything after that point is positional, even if it starts with a dash.

Integer flags accept 1234, 0664, 0x1234, 0b101 and may be negative.
Boolean flags accept, in any letter case:

	1, 0, t, f, true, false, yes, no

Duration flags accept any input valid for time.ParseDuration.

Errors come in two kinds. Malformed input (an unknown flag, a missing or
unconvertible value) is reported as an *Error, returned from Parse or handled
according to the set's ErrorHandling. Misuse of the package (redefining a
flag, reading a flag before Parse) panics with a *Panic. The two never
overlap. When Parse fails part way, flags before the failing argument keep
the values they were given.

The default set of command-line flags is controlled by
top-level functions and created on first use. The FlagSet type allows one
to define independent sets of flags. The methods of FlagSet are
analogous to the top-level functions for the command-line
flag set.
*/
package flag

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// Value is the interface to the dynamic value stored in a flag.
// (The default value is represented as a string.)
//
// If a Value has an IsBoolFlag() bool method returning true,
// the command-line parser makes -name equivalent to -name=true
// rather than using the next command-line argument.
//
// Set is called once, in command line order, for each flag present.
type Value interface {
	String() string
	Set(string) error
}

// Getter is an interface that allows the contents of a Value to be retrieved.
// All Value types provided by this package satisfy the Getter interface.
type Getter interface {
	Value
	Get() any
}

// optional interface to indicate boolean flags that can be
// supplied without "=value" text
type boolFlag interface {
	Value
	IsBoolFlag() bool
}

// optional interface naming the placeholder shown in usage text
type typeNamer interface {
	TypeName() string
}

// optional interface reporting how the type's zero value is formatted
type zeroer interface {
	zeroString() string
}

// ErrorHandling defines how FlagSet.Parse behaves if the parse fails.
type ErrorHandling int

// These constants cause FlagSet.Parse to behave as described if the parse fails.
const (
	ContinueOnError ErrorHandling = iota // Return a descriptive error.
	ExitOnError                          // Call os.Exit(2) or for -h/-help Exit(0).
	PanicOnError                         // Call panic with a descriptive error.
)

// A FlagSet represents a set of defined flags. The zero value of a FlagSet
// has no name and has ContinueOnError error handling.
//
// A FlagSet is not safe for concurrent use; callers defining or parsing
// from several goroutines must serialize access themselves.
type FlagSet struct {
	// Usage is the function called when an error occurs while parsing flags
	// or when help is requested. The field is a function (not a method) that
	// may be changed to point to a custom error handler. It should write to
	// Output().
	Usage func()

	name          string
	parsed        bool
	actual        map[string]*Flag
	formal        map[string]*Flag
	order         []*Flag           // formal, in definition order
	args          []string          // arguments after flags
	undef         map[string]string // flags Set before being defined, with the caller's position
	errorHandling ErrorHandling
	output        io.Writer // nil means stderr; use Output() accessor
	helpOutput    io.Writer // nil means stdout
	helping       bool
	exit          func(code int) // nil means os.Exit
}

// A Flag represents the state of a flag.
type Flag struct {
	Name     string // name as it appears on command line
	Usage    string // help message
	Value    Value  // value as set
	DefValue string // default value (as text); for usage message
}

// sortFlags returns the flags as a slice in lexicographical sorted order.
func sortFlags(flags map[string]*Flag) []*Flag {
	result := make([]*Flag, 0, len(flags))
	for _, f := range flags {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// NewFlagSet returns a new, empty flag set with the specified name and
// error handling property.
func NewFlagSet(name string, errorHandling ErrorHandling) *FlagSet {
	f := &FlagSet{name: name, errorHandling: errorHandling}
	return f
}

// Init sets the name and error handling property for a flag set.
// By default, the zero FlagSet uses an empty name and the
// ContinueOnError error handling policy.
func (f *FlagSet) Init(name string, errorHandling ErrorHandling) {
	f.name = name
	f.errorHandling = errorHandling
}

// Name returns the name of the flag set.
func (f *FlagSet) Name() string { return f.name }

// ErrorHandling returns the error handling behavior of the flag set.
func (f *FlagSet) ErrorHandling() ErrorHandling { return f.errorHandling }

func (f *FlagSet) describe() string {
	if f.name == "" {
		return "the flag set"
	}
	return f.name
}

// Output returns the destination for usage and error messages: the help
// output while responding to -h or -help, the error output otherwise.
func (f *FlagSet) Output() io.Writer {
	if f.helping {
		if f.helpOutput == nil {
			return os.Stdout
		}
		return f.helpOutput
	}
	if f.output == nil {
		return os.Stderr
	}
	return f.output
}

// SetOutput sets the destination for error messages and the usage text
// printed alongside them. If output is nil, os.Stderr is used.
func (f *FlagSet) SetOutput(output io.Writer) {
	f.output = output
}

// SetHelpOutput sets the destination for the usage text printed when -h or
// -help is requested. If output is nil, os.Stdout is used.
func (f *FlagSet) SetHelpOutput(output io.Writer) {
	f.helpOutput = output
}

// VisitAll visits the flags in lexicographical order, calling fn for each.
// It visits all flags, even those not set.
func (f *FlagSet) VisitAll(fn func(*Flag)) {
	for _, flag := range sortFlags(f.formal) {
		fn(flag)
	}
}

// Visit visits the flags in lexicographical order, calling fn for each.
// It visits only those flags that have been set.
func (f *FlagSet) Visit(fn func(*Flag)) {
	for _, flag := range sortFlags(f.actual) {
		fn(flag)
	}
}

// Lookup returns the Flag structure of the named flag, returning nil if none exists.
func (f *FlagSet) Lookup(name string) *Flag {
	return f.formal[name]
}

// Set sets the value of the named flag.
func (f *FlagSet) Set(name, value string) error {
	return f.set(name, value)
}

func (f *FlagSet) set(name, value string) error {
	flag, ok := f.formal[name]
	if !ok {
		// Remember where the undefined flag was set, so that defining it
		// afterwards can point at the offending call.
		if _, file, line, ok := runtime.Caller(2); ok {
			if f.undef == nil {
				f.undef = make(map[string]string)
			}
			f.undef[name] = fmt.Sprintf("%s:%d", file, line)
		}
		return newError(name, nil, "no such flag -%v", name)
	}
	if err := flag.Value.Set(value); err != nil {
		return newError(name, err, "invalid value %q for flag -%s: %v", value, name, err)
	}
	if f.actual == nil {
		f.actual = make(map[string]*Flag)
	}
	f.actual[name] = flag
	return nil
}

// Var defines a flag with the specified name and usage string. The type and
// value of the flag are represented by the first argument, of type Value, which
// typically holds a user-defined implementation of Value. For instance, the
// caller could create a flag that turns a comma-separated string into a slice
// of strings by giving the slice the methods of Value; in particular, Set would
// decompose the comma-separated string into the slice.
//
// Var panics if name is empty, starts with "-", contains "=", is already
// defined, or was passed to Set before being defined.
func (f *FlagSet) Var(value Value, name string, usage string) {
	f.checkName(name)
	// Remember the default value as a string; it won't change.
	flag := &Flag{Name: name, Usage: usage, Value: value, DefValue: value.String()}
	if f.formal == nil {
		f.formal = make(map[string]*Flag)
	}
	f.formal[name] = flag
	f.order = append(f.order, flag)
}

// checkName panics unless name can be defined in f.
func (f *FlagSet) checkName(name string) {
	switch {
	case name == "":
		f.panicf("flag: empty flag name")
	case strings.HasPrefix(name, "-"):
		f.panicf("flag %q begins with -", name)
	case strings.Contains(name, "="):
		f.panicf("flag %q contains =", name)
	}
	if _, alreadythere := f.formal[name]; alreadythere {
		if f.name == "" {
			f.panicf("flag redefined: %s", name)
		}
		f.panicf("%s flag redefined: %s", f.name, name)
	}
	if pos := f.undef[name]; pos != "" {
		f.panicf("flag %s set at %s before being defined", name, pos)
	}
}

// failf prints a formatted error and the usage message to the error output
// and returns the error.
func (f *FlagSet) failf(flag string, cause error, format string, a ...any) error {
	err := newError(flag, cause, format, a...)
	fmt.Fprintln(f.Output(), err)
	f.usage()
	return err
}

// panicf prints a formatted misuse message to the error output and panics
// with it.
func (f *FlagSet) panicf(format string, a ...any) {
	p := newPanic(format, a...)
	fmt.Fprintln(f.Output(), p.Msg)
	panic(p)
}

// usage calls the Usage method for the flag set if one is specified,
// or the default usage function otherwise.
func (f *FlagSet) usage() {
	if f.Usage == nil {
		defaultUsage(f)
	} else {
		f.Usage()
	}
}

// help writes the usage message to the help output.
func (f *FlagSet) help() {
	f.helping = true
	defer func() { f.helping = false }()
	f.usage()
}

// parseOne parses one flag. It reports whether a flag was seen.
func (f *FlagSet) parseOne() (bool, error) {
	if len(f.args) == 0 {
		return false, nil
	}
	s := f.args[0]
	if len(s) < 2 || s[0] != '-' {
		return false, nil
	}
	numMinuses := 1
	if s[1] == '-' {
		numMinuses++
		if len(s) == 2 { // "--" terminates the flags
			f.args = f.args[1:]
			return false, nil
		}
	}
	name := s[numMinuses:]
	if len(name) == 0 || name[0] == '-' || name[0] == '=' {
		return false, f.failf("", nil, "bad flag syntax: %s", s)
	}

	// it's a flag. does it have an argument?
	f.args = f.args[1:]
	hasValue := false
	value := ""
	if i := strings.IndexByte(name, '='); i > 0 { // equals cannot be first
		value = name[i+1:]
		hasValue = true
		name = name[:i]
	}

	flag, ok := f.formal[name]
	if !ok {
		if name == "help" || name == "h" { // special case for nice help message.
			f.help()
			return false, ErrHelp
		}
		return false, f.failf(name, nil, "flag provided but not defined: -%s", name)
	}

	if fv, ok := flag.Value.(boolFlag); ok && fv.IsBoolFlag() { // special case: doesn't need an arg
		if hasValue {
			if err := fv.Set(value); err != nil {
				return false, f.failf(name, err, "invalid boolean value %q for -%s: %v", value, name, err)
			}
		} else {
			if err := fv.Set("true"); err != nil {
				return false, f.failf(name, err, "invalid boolean flag %s: %v", name, err)
			}
		}
	} else {
		// It must have a value, which might be the next argument.
		if !hasValue && len(f.args) > 0 {
			hasValue = true
			value, f.args = f.args[0], f.args[1:]
		}
		if !hasValue {
			return false, f.failf(name, nil, "flag needs an argument: -%s", name)
		}
		if err := flag.Value.Set(value); err != nil {
			return false, f.failf(name, err, "invalid value %q for flag -%s: %v", value, name, err)
		}
	}
	if f.actual == nil {
		f.actual = make(map[string]*Flag)
	}
	f.actual[name] = flag
	return true, nil
}

// Parse parses flag definitions from the argument list, which should not
// include the command name. Must be called after all flags in the FlagSet
// are defined and before flags are accessed by the program.
// The return value will be ErrHelp if -help or -h were set but not defined.
//
// Parsing again re-runs the same algorithm over the new arguments: values
// and the set of seen flags carry over, later occurrences overwrite.
func (f *FlagSet) Parse(arguments []string) error {
	f.parsed = true
	f.args = arguments
	for {
		seen, err := f.parseOne()
		if seen {
			continue
		}
		if err == nil {
			break
		}
		switch f.errorHandling {
		case ContinueOnError:
			return err
		case ExitOnError:
			if errors.Is(err, ErrHelp) {
				f.terminate(0)
			} else {
				f.terminate(2)
			}
			return err
		case PanicOnError:
			panic(err)
		}
	}
	return nil
}

func (f *FlagSet) terminate(code int) {
	if f.exit != nil {
		f.exit(code)
		return
	}
	os.Exit(code)
}

// Parsed reports whether f.Parse has been called.
func (f *FlagSet) Parsed() bool { return f.parsed }

func (f *FlagSet) requireParsed(op string) {
	if !f.parsed {
		f.panicf("flag: %s called before %s was parsed", op, f.describe())
	}
}

// NFlag returns the number of flags that have been set.
// It panics if f has not been parsed.
func (f *FlagSet) NFlag() int {
	f.requireParsed("NFlag")
	return len(f.actual)
}

// Arg returns the i'th argument. Arg(0) is the first remaining argument
// after flags have been processed. Arg returns an empty string if the
// requested element does not exist. It panics if f has not been parsed.
func (f *FlagSet) Arg(i int) string {
	f.requireParsed("Arg")
	if i < 0 || i >= len(f.args) {
		return ""
	}
	return f.args[i]
}

// NArg is the number of arguments remaining after flags have been processed.
// It panics if f has not been parsed.
func (f *FlagSet) NArg() int {
	f.requireParsed("NArg")
	return len(f.args)
}

// Args returns the non-flag arguments. It panics if f has not been parsed.
func (f *FlagSet) Args() []string {
	f.requireParsed("Args")
	return f.args
}

var (
	commandLine     *FlagSet
	commandLineOnce sync.Once
)

// CommandLine returns the default set of command-line flags, parsed from
// os.Args. It is created, with ExitOnError handling, the first time it or
// any top-level function is used, and lives for the rest of the process.
// The top-level functions such as BoolVar, Arg, and so on are wrappers for
// the methods of CommandLine.
func CommandLine() *FlagSet {
	commandLineOnce.Do(func() {
		name := ""
		if len(os.Args) > 0 {
			name = os.Args[0]
		}
		commandLine = NewFlagSet(name, ExitOnError)
		// Call the package level Usage rather than defaultUsage so that
		// overriding the Usage variable is honoured.
		commandLine.Usage = commandLineUsage
	})
	return commandLine
}

func commandLineUsage() {
	Usage()
}

// Usage prints a usage message documenting all defined command-line flags
// to CommandLine's output, which by default is os.Stderr.
// It is called when an error occurs while parsing flags.
// The function is a variable that may be changed to point to a custom function.
// By default it prints a simple header and calls PrintDefaults; for details about the
// format of the output and how to control it, see the documentation for PrintDefaults.
var Usage func()

func init() {
	Usage = defaultCommandLineUsage
}

// defaultCommandLineUsage is the initial value of Usage. It is assigned in
// init because CommandLine refers back to Usage.
func defaultCommandLineUsage() {
	fs := CommandLine()
	if fs.name == "" {
		fmt.Fprintf(fs.Output(), "Usage:\n")
	} else {
		fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.name)
	}
	PrintDefaults()
}

// Parse parses the command-line flags from os.Args[1:].  Must be called
// after all flags are defined and before flags are accessed by the program.
func Parse() {
	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}
	// Ignore errors; CommandLine is set for ExitOnError.
	CommandLine().Parse(args)
}

// Parsed reports whether the command-line flags have been parsed.
func Parsed() bool { return CommandLine().Parsed() }

// VisitAll visits the command-line flags in lexicographical order, calling
// fn for each. It visits all flags, even those not set.
func VisitAll(fn func(*Flag)) { CommandLine().VisitAll(fn) }

// Visit visits the command-line flags in lexicographical order, calling fn
// for each. It visits only those flags that have been set.
func Visit(fn func(*Flag)) { CommandLine().Visit(fn) }

// Lookup returns the Flag structure of the named command-line flag,
// returning nil if none exists.
func Lookup(name string) *Flag { return CommandLine().Lookup(name) }

// Set sets the value of the named command-line flag.
func Set(name, value string) error { return CommandLine().set(name, value) }

// Var defines a flag with the specified name and usage string on the
// command-line flag set. See FlagSet.Var.
func Var(value Value, name string, usage string) { CommandLine().Var(value, name, usage) }

// NFlag returns the number of command-line flags that have been set.
func NFlag() int { return CommandLine().NFlag() }

// Arg returns the i'th command-line argument. Arg(0) is the first remaining argument
// after flags have been processed. Arg returns an empty string if the
// requested element does not exist.
func Arg(i int) string { return CommandLine().Arg(i) }

// NArg is the number of arguments remaining after flags have been processed.
func NArg() int { return CommandLine().NArg() }

// Args returns the non-flag command-line arguments.
func Args() []string { return CommandLine().Args() }
