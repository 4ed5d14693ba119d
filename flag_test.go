// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flag_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	. "github.com/machship/flag/v2"
)

func newTestSet(name string) (*FlagSet, *bytes.Buffer) {
	fs := NewFlagSet(name, ContinueOnError)
	var out bytes.Buffer
	fs.SetOutput(&out)
	fs.SetHelpOutput(&out)
	return fs, &out
}

func expectPanic(t *testing.T, want string, fn func()) *Panic {
	t.Helper()
	var got *Panic
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("expected panic containing %q", want)
			}
			p, ok := r.(*Panic)
			if !ok {
				t.Fatalf("expected *Panic, got %T: %v", r, r)
			}
			got = p
		}()
		fn()
	}()
	if !strings.Contains(got.Msg, want) {
		t.Fatalf("panic %q does not contain %q", got.Msg, want)
	}
	return got
}

func boolString(s string) string {
	if s == "0" {
		return "false"
	}
	return "true"
}

func TestEverything(t *testing.T) {
	ResetForTesting(nil)
	Bool("test_bool", false, "bool value")
	Int("test_int", 0, "int value")
	Int64("test_int64", 0, "int64 value")
	Uint("test_uint", 0, "uint value")
	Uint64("test_uint64", 0, "uint64 value")
	String("test_string", "0", "string value")
	Float64("test_float64", 0, "float64 value")
	Duration("test_duration", 0, "time.Duration value")
	Func("test_func", "func value", func(string) error { return nil })
	BoolFunc("test_boolfunc", "func", func(string) error { return nil })

	m := make(map[string]*Flag)
	desired := "0"
	visitor := func(f *Flag) {
		if len(f.Name) > 5 && f.Name[0:5] == "test_" {
			m[f.Name] = f
			ok := false
			switch {
			case f.Value.String() == desired:
				ok = true
			case f.Name == "test_bool" && f.Value.String() == boolString(desired):
				ok = true
			case f.Name == "test_duration" && f.Value.String() == desired+"s":
				ok = true
			case f.Name == "test_func" && f.Value.String() == "":
				ok = true
			case f.Name == "test_boolfunc" && f.Value.String() == "":
				ok = true
			}
			if !ok {
				t.Error("Visit: bad value", f.Value.String(), "for", f.Name)
			}
		}
	}
	VisitAll(visitor)
	if len(m) != 10 {
		t.Error("VisitAll misses some flags")
		for k, v := range m {
			t.Log(k, *v)
		}
	}
	m = make(map[string]*Flag)
	Visit(visitor)
	if len(m) != 0 {
		t.Errorf("Visit sees unset flags")
		for k, v := range m {
			t.Log(k, *v)
		}
	}
	// Now set all flags
	Set("test_bool", "true")
	Set("test_int", "1")
	Set("test_int64", "1")
	Set("test_uint", "1")
	Set("test_uint64", "1")
	Set("test_string", "1")
	Set("test_float64", "1")
	Set("test_duration", "1s")
	Set("test_func", "1")
	Set("test_boolfunc", "")
	desired = "1"
	Visit(visitor)
	if len(m) != 10 {
		t.Error("Visit fails after set")
		for k, v := range m {
			t.Log(k, *v)
		}
	}
	// Now test they're visited in sort order.
	var flagNames []string
	Visit(func(f *Flag) { flagNames = append(flagNames, f.Name) })
	if !sort.StringsAreSorted(flagNames) {
		t.Errorf("flag names not sorted: %v", flagNames)
	}
}

func TestGet(t *testing.T) {
	ResetForTesting(nil)
	Bool("test_bool", true, "bool value")
	Int("test_int", 1, "int value")
	Int64("test_int64", 2, "int64 value")
	Uint("test_uint", 3, "uint value")
	Uint64("test_uint64", 4, "uint64 value")
	String("test_string", "5", "string value")
	Float64("test_float64", 6, "float64 value")
	Duration("test_duration", 7, "time.Duration value")

	visitor := func(f *Flag) {
		if len(f.Name) > 5 && f.Name[0:5] == "test_" {
			g, ok := f.Value.(Getter)
			if !ok {
				t.Errorf("Visit: value does not satisfy Getter: %T", f.Value)
				return
			}
			switch f.Name {
			case "test_bool":
				ok = g.Get() == true
			case "test_int":
				ok = g.Get() == int(1)
			case "test_int64":
				ok = g.Get() == int64(2)
			case "test_uint":
				ok = g.Get() == uint(3)
			case "test_uint64":
				ok = g.Get() == uint64(4)
			case "test_string":
				ok = g.Get() == "5"
			case "test_float64":
				ok = g.Get() == float64(6)
			case "test_duration":
				ok = g.Get() == time.Duration(7)
			}
			if !ok {
				t.Errorf("Visit: bad value %T(%v) for %s", g.Get(), g.Get(), f.Name)
			}
		}
	}
	VisitAll(visitor)
}

func TestUsage(t *testing.T) {
	called := false
	ResetForTesting(func() { called = true })
	if CommandLine().Parse([]string{"-x"}) == nil {
		t.Error("parse did not fail for unknown flag")
	}
	if !called {
		t.Error("did not call Usage for unknown flag")
	}
}

func testParse(f *FlagSet, t *testing.T) {
	if f.Parsed() {
		t.Error("f.Parse() = true before Parse")
	}
	boolFlag := f.Bool("bool", false, "bool value")
	bool2Flag := f.Bool("bool2", false, "bool2 value")
	intFlag := f.Int("int", 0, "int value")
	int64Flag := f.Int64("int64", 0, "int64 value")
	uintFlag := f.Uint("uint", 0, "uint value")
	uint64Flag := f.Uint64("uint64", 0, "uint64 value")
	stringFlag := f.String("string", "0", "string value")
	float64Flag := f.Float64("float64", 0, "float64 value")
	durationFlag := f.Duration("duration", 5*time.Second, "time.Duration value")
	extra := "one-extra-argument"
	args := []string{
		"-bool",
		"-bool2=true",
		"--int", "22",
		"--int64", "0x23",
		"-uint", "24",
		"--uint64", "25",
		"-string", "hello",
		"-float64", "2718e28",
		"-duration", "2m",
		extra,
	}
	if err := f.Parse(args); err != nil {
		t.Fatal(err)
	}
	if !f.Parsed() {
		t.Error("f.Parse() = false after Parse")
	}
	if boolFlag.Get() != true {
		t.Error("bool flag should be true, is ", boolFlag.Get())
	}
	if bool2Flag.Get() != true {
		t.Error("bool2 flag should be true, is ", bool2Flag.Get())
	}
	if intFlag.Get() != 22 {
		t.Error("int flag should be 22, is ", intFlag.Get())
	}
	if int64Flag.Get() != 0x23 {
		t.Error("int64 flag should be 0x23, is ", int64Flag.Get())
	}
	if uintFlag.Get() != 24 {
		t.Error("uint flag should be 24, is ", uintFlag.Get())
	}
	if uint64Flag.Get() != 25 {
		t.Error("uint64 flag should be 25, is ", uint64Flag.Get())
	}
	if stringFlag.Get() != "hello" {
		t.Error("string flag should be `hello`, is ", stringFlag.Get())
	}
	if float64Flag.Get() != 2718e28 {
		t.Error("float64 flag should be 2718e28, is ", float64Flag.Get())
	}
	if durationFlag.Get() != 2*time.Minute {
		t.Error("duration flag should be 2m, is ", durationFlag.Get())
	}
	if len(f.Args()) != 1 {
		t.Error("expected one argument, got", len(f.Args()))
	} else if f.Args()[0] != extra {
		t.Errorf("expected argument %q got %q", extra, f.Args()[0])
	}
}

func TestParse(t *testing.T) {
	ResetForTesting(func() { t.Error("bad parse") })
	testParse(CommandLine(), t)
}

func TestFlagSetParse(t *testing.T) {
	testParse(NewFlagSet("test", ContinueOnError), t)
}

// Declare a user-defined flag type.
type flagVar []string

func (f *flagVar) String() string {
	return fmt.Sprint([]string(*f))
}

func (f *flagVar) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func TestUserDefined(t *testing.T) {
	var flags FlagSet
	flags.Init("test", ContinueOnError)
	flags.SetOutput(io.Discard)
	var v flagVar
	flags.Var(&v, "v", "usage")
	if err := flags.Parse([]string{"-v", "1", "-v", "2", "-v=3"}); err != nil {
		t.Error(err)
	}
	if len(v) != 3 {
		t.Fatal("expected 3 args; got ", len(v))
	}
	expect := "[1 2 3]"
	if v.String() != expect {
		t.Errorf("expected value %q got %q", expect, v.String())
	}
}

func TestUserDefinedFunc(t *testing.T) {
	flags, _ := newTestSet("test")
	var ss []string
	flags.Func("v", "usage", func(s string) error {
		ss = append(ss, s)
		return nil
	})
	if err := flags.Parse([]string{"-v", "1", "-v", "2", "-v=3"}); err != nil {
		t.Error(err)
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, ss); diff != "" {
		t.Errorf("Func values mismatch (-want +got):\n%s", diff)
	}
	// test Func error
	flags, out := newTestSet("test")
	flags.Func("v", "usage", func(s string) error {
		return fmt.Errorf("test error")
	})
	// flag not set, so no error
	if err := flags.Parse(nil); err != nil {
		t.Error(err)
	}
	// flag set, expect error
	err := flags.Parse([]string{"-v", "1"})
	if err == nil {
		t.Error("expected error; got none")
	}
	if want := `invalid value "1" for flag -v: test error`; err.Error() != want {
		t.Errorf("got %q; want %q", err, want)
	}
	if !strings.HasPrefix(out.String(), `invalid value "1" for flag -v: test error`+"\n") {
		t.Errorf("error not printed first: %q", out.String())
	}
}

func TestUserDefinedBool(t *testing.T) {
	flags, _ := newTestSet("test")
	var calls []string
	flags.BoolFunc("x", "usage", func(s string) error {
		calls = append(calls, s)
		if s == "bad" {
			return errors.New("bad value")
		}
		return nil
	})
	if err := flags.Parse([]string{"-x", "-x=false", "-x=bad"}); err == nil {
		t.Error("expected error for -x=bad")
	}
	if diff := cmp.Diff([]string{"true", "false", "bad"}, calls); diff != "" {
		t.Errorf("BoolFunc calls mismatch (-want +got):\n%s", diff)
	}
}

func TestSetOutput(t *testing.T) {
	var flags FlagSet
	var buf strings.Builder
	flags.SetOutput(&buf)
	flags.Init("test", ContinueOnError)
	flags.Parse([]string{"-unknown"})
	if out := buf.String(); !strings.Contains(out, "-unknown") {
		t.Logf("expected output mentioning unknown; got %q", out)
	}
}

// This tests that one can reset the flags. This still works but not well, and is
// superseded by FlagSet.
func TestChangingArgs(t *testing.T) {
	ResetForTesting(func() { t.Fatal("bad parse") })
	before := CommandLine().Bool("before", false, "")
	if err := CommandLine().Parse([]string{"-before", "subcmd"}); err != nil {
		t.Fatal(err)
	}
	cmd := Arg(0)
	after := CommandLine().Bool("after", false, "")
	if err := CommandLine().Parse([]string{"-after", "args"}); err != nil {
		t.Fatal(err)
	}
	args := Args()

	if !before.Get() || cmd != "subcmd" || !after.Get() || len(args) != 1 || args[0] != "args" {
		t.Fatalf("expected true subcmd true [args] got %v %v %v %v", before.Get(), cmd, after.Get(), args)
	}
}

// Test that -help invokes the usage message and returns ErrHelp.
func TestHelp(t *testing.T) {
	var helpCalled = false
	fs := NewFlagSet("help test", ContinueOnError)
	fs.Usage = func() { helpCalled = true }
	var flag bool
	fs.BoolVar(Pointer(&flag), "flag", false, "regular flag")
	// Regular flag invocation should work
	err := fs.Parse([]string{"-flag=true"})
	if err != nil {
		t.Fatal("expected no error; got ", err)
	}
	if !flag {
		t.Error("flag was not set by -flag")
	}
	if helpCalled {
		t.Error("help called for regular flag")
		helpCalled = false // reset for next test
	}
	// Help flag should work as expected.
	err = fs.Parse([]string{"-help"})
	if err == nil {
		t.Fatal("error expected")
	}
	if err != ErrHelp {
		t.Fatal("expected ErrHelp; got ", err)
	}
	if !helpCalled {
		t.Fatal("help was not called")
	}
	// If we define a help flag, that should override.
	var help bool
	fs.BoolVar(Pointer(&help), "help", false, "help flag")
	helpCalled = false
	err = fs.Parse([]string{"-help"})
	if err != nil {
		t.Fatal("expected no error for defined -help; got ", err)
	}
	if helpCalled {
		t.Fatal("help was called; should not have been for defined help flag")
	}
}

func TestHelpGoesToHelpOutput(t *testing.T) {
	fs := NewFlagSet("prog", ContinueOnError)
	var stdout, stderr bytes.Buffer
	fs.SetOutput(&stderr)
	fs.SetHelpOutput(&stdout)
	fs.Bool("v", false, "verbose")

	if err := fs.Parse([]string{"-h"}); err != ErrHelp {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	if want := "Usage of prog:\n  -v\n    verbose\n"; stdout.String() != want {
		t.Errorf("help output = %q, want %q", stdout.String(), want)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected error output %q", stderr.String())
	}

	stdout.Reset()
	if err := fs.Parse([]string{"-nope"}); err == nil {
		t.Fatal("expected error")
	}
	if stdout.Len() != 0 {
		t.Errorf("error usage leaked to help output: %q", stdout.String())
	}
	if !strings.HasPrefix(stderr.String(), "flag provided but not defined: -nope\nUsage of prog:\n") {
		t.Errorf("unexpected error output %q", stderr.String())
	}
}

func TestExitCode(t *testing.T) {
	for _, test := range []struct {
		args     []string
		wantCode int
	}{
		{args: []string{"-h"}, wantCode: 0},
		{args: []string{"-help"}, wantCode: 0},
		{args: []string{"-undefined"}, wantCode: 2},
		{args: []string{"-n"}, wantCode: 2},
		{args: []string{"-n", "x"}, wantCode: 2},
		{args: []string{"-n", "3"}, wantCode: -1},
	} {
		fs := NewFlagSet("exit test", ExitOnError)
		fs.SetOutput(io.Discard)
		fs.SetHelpOutput(io.Discard)
		fs.Int("n", 0, "number")
		code := -1
		fs.SetExitForTesting(func(c int) { code = c })
		fs.Parse(test.args)
		if code != test.wantCode {
			t.Errorf("%v: exit code = %d, want %d", test.args, code, test.wantCode)
		}
	}
}

func TestPanicOnError(t *testing.T) {
	fs := NewFlagSet("panic test", PanicOnError)
	fs.SetOutput(io.Discard)
	defer func() {
		r := recover()
		err, ok := r.(*Error)
		if !ok {
			t.Fatalf("expected *Error panic, got %T: %v", r, r)
		}
		if err.Flag != "zzz" {
			t.Errorf("expected flag zzz, got %q", err.Flag)
		}
	}()
	fs.Parse([]string{"-zzz"})
}

func TestAccessorsBeforeParsePanic(t *testing.T) {
	fs, _ := newTestSet("early")
	n := fs.Int("n", 1, "")
	expectPanic(t, "-n read before early was parsed", func() { n.Get() })
	expectPanic(t, "Args called before early was parsed", func() { fs.Args() })
	expectPanic(t, "NArg called before early was parsed", func() { fs.NArg() })
	expectPanic(t, "NFlag called before early was parsed", func() { fs.NFlag() })
	expectPanic(t, "Arg called before early was parsed", func() { fs.Arg(0) })

	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if n.Get() != 1 {
		t.Errorf("n = %d, want default 1", n.Get())
	}
}

func TestRedefinitionPanics(t *testing.T) {
	fs, out := newTestSet("dup")
	fs.Int("a", 1, "")
	expectPanic(t, "dup flag redefined: a", func() { fs.String("a", "x", "") })
	if !strings.Contains(out.String(), "dup flag redefined: a") {
		t.Errorf("redefinition not reported to output: %q", out.String())
	}

	var anon FlagSet
	anon.SetOutput(io.Discard)
	anon.Bool("b", false, "")
	expectPanic(t, "flag redefined: b", func() { anon.Bool("b", false, "") })
}

func TestInvalidNamesPanic(t *testing.T) {
	for _, test := range []struct {
		name string
		want string
	}{
		{"", "empty flag name"},
		{"-x", `flag "-x" begins with -`},
		{"a=b", `flag "a=b" contains =`},
	} {
		fs, _ := newTestSet("names")
		var stored = "untouched"
		expectPanic(t, test.want, func() { fs.StringVar(Pointer(&stored), test.name, "default", "") })
		if stored != "untouched" {
			t.Errorf("%q: storage written before the name was rejected", test.name)
		}
	}
}

func TestSetBeforeDefine(t *testing.T) {
	fs, _ := newTestSet("undef")
	err := fs.Set("late", "1")
	var fe *Error
	if !errors.As(err, &fe) || fe.Flag != "late" {
		t.Fatalf("expected *Error for late, got %v", err)
	}
	p := expectPanic(t, "flag late set at ", func() { fs.Int("late", 0, "") })
	if !strings.Contains(p.Msg, "flag_test.go:") {
		t.Errorf("panic should name the Set call site: %q", p.Msg)
	}
}

// The positional-only state is entered once and never left.
func TestPositionalStopsFlagParsing(t *testing.T) {
	fs, _ := newTestSet("pos")
	a := fs.Int("a", 1, "")
	b := fs.String("b", "x", "")
	if err := fs.Parse([]string{"-a", "2", "pos1", "-b", "y"}); err != nil {
		t.Fatal(err)
	}
	if a.Get() != 2 || b.Get() != "x" {
		t.Errorf("a=%d b=%q, want a=2 b=x", a.Get(), b.Get())
	}
	if diff := cmp.Diff([]string{"pos1", "-b", "y"}, fs.Args()); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
	if fs.NFlag() != 1 || fs.NArg() != 3 || fs.Arg(0) != "pos1" || fs.Arg(3) != "" {
		t.Errorf("NFlag=%d NArg=%d Arg(0)=%q", fs.NFlag(), fs.NArg(), fs.Arg(0))
	}
}

func TestTerminator(t *testing.T) {
	fs, _ := newTestSet("term")
	a := fs.Int("a", 1, "")
	b := fs.String("b", "x", "")
	if err := fs.Parse([]string{"--", "-a", "2"}); err != nil {
		t.Fatal(err)
	}
	if a.Get() != 1 || b.Get() != "x" {
		t.Errorf("a=%d b=%q, want defaults", a.Get(), b.Get())
	}
	if diff := cmp.Diff([]string{"-a", "2"}, fs.Args()); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}

	fs, _ = newTestSet("dash")
	fs.Bool("v", false, "")
	if err := fs.Parse([]string{"-v", "-", "-v"}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"-", "-v"}, fs.Args()); diff != "" {
		t.Errorf("single dash should be positional (-want +got):\n%s", diff)
	}
}

func TestEquivalentSpellings(t *testing.T) {
	for _, args := range [][]string{{"-b"}, {"-b=true"}, {"--b"}, {"--b=TRUE"}, {"-b=yes"}, {"-b=1"}} {
		fs, _ := newTestSet("bools")
		b := fs.Bool("b", false, "")
		if err := fs.Parse(append(args, "next")); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if !b.Get() {
			t.Errorf("%v: b = false", args)
		}
		// A boolean flag never consumes the following token.
		if fs.NArg() != 1 || fs.Arg(0) != "next" {
			t.Errorf("%v: args = %v", args, fs.Args())
		}
	}
	for _, args := range [][]string{{"-n", "5"}, {"-n=5"}, {"--n", "5"}, {"--n=5"}} {
		fs, _ := newTestSet("ints")
		n := fs.Int("n", 0, "")
		if err := fs.Parse(args); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if n.Get() != 5 {
			t.Errorf("%v: n = %d", args, n.Get())
		}
	}
}

func TestLastOccurrenceWins(t *testing.T) {
	fs, _ := newTestSet("repeat")
	s := fs.String("s", "", "")
	if err := fs.Parse([]string{"-s", "a", "-s=b", "--s", "c"}); err != nil {
		t.Fatal(err)
	}
	if s.Get() != "c" {
		t.Errorf("s = %q, want c", s.Get())
	}
}

func TestEmptyInlineValue(t *testing.T) {
	fs, _ := newTestSet("empty")
	s := fs.String("s", "x", "")
	n := fs.Int("n", 7, "")
	if err := fs.Parse([]string{"-s="}); err != nil {
		t.Fatal(err)
	}
	if s.Get() != "" {
		t.Errorf("s = %q, want empty", s.Get())
	}
	err := fs.Parse([]string{"-n="})
	if err == nil {
		t.Fatal("expected error for empty int")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse in chain, got %v", err)
	}
	if n.Get() != 7 {
		t.Errorf("failed parse changed n to %d", n.Get())
	}
}

func TestReparseKeepsValues(t *testing.T) {
	fs, _ := newTestSet("again")
	a := fs.Int("a", 1, "")
	b := fs.Int("b", 1, "")
	if err := fs.Parse([]string{"-a", "2"}); err != nil {
		t.Fatal(err)
	}
	if err := fs.Parse([]string{"-b", "3"}); err != nil {
		t.Fatal(err)
	}
	if a.Get() != 2 || b.Get() != 3 || fs.NFlag() != 2 {
		t.Errorf("a=%d b=%d NFlag=%d", a.Get(), b.Get(), fs.NFlag())
	}
}

func TestPartialApplication(t *testing.T) {
	fs, _ := newTestSet("partial")
	a := fs.Int("a", 0, "")
	b := fs.Int("b", 0, "")
	c := fs.Int("c", 0, "")
	if err := fs.Parse([]string{"-a", "1", "-b", "nope", "-c", "3"}); err == nil {
		t.Fatal("expected error")
	}
	if a.Get() != 1 || b.Get() != 0 || c.Get() != 0 {
		t.Errorf("a=%d b=%d c=%d, want 1 0 0", a.Get(), b.Get(), c.Get())
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		args []string
		flag string
		msg  string
	}{
		{[]string{"-z"}, "z", "flag provided but not defined: -z"},
		{[]string{"-n"}, "n", "flag needs an argument: -n"},
		{[]string{"-n", "abc"}, "n", `invalid value "abc" for flag -n: parse error (expected int)`},
		{[]string{"-n", "99999999999999999999"}, "n", `invalid value "99999999999999999999" for flag -n: value out of range (expected int)`},
		{[]string{"-n", "12abc"}, "n", `invalid value "12abc" for flag -n: parse error (expected int)`},
		{[]string{"-b=maybe"}, "b", `invalid boolean value "maybe" for -b: parse error (expected bool)`},
		{[]string{"---x"}, "", "bad flag syntax: ---x"},
		{[]string{"-=x"}, "", "bad flag syntax: -=x"},
	} {
		fs, out := newTestSet("errs")
		fs.Int("n", 0, "")
		fs.Bool("b", false, "")
		err := fs.Parse(test.args)
		var fe *Error
		if !errors.As(err, &fe) {
			t.Errorf("%v: expected *Error, got %T %v", test.args, err, err)
			continue
		}
		if fe.Flag != test.flag || fe.Msg != test.msg {
			t.Errorf("%v: got (%q, %q), want (%q, %q)", test.args, fe.Flag, fe.Msg, test.flag, test.msg)
		}
		if !strings.HasPrefix(out.String(), test.msg+"\nUsage of errs:\n") {
			t.Errorf("%v: output = %q", test.args, out.String())
		}
	}
}

func TestErrorKindsAreDisjoint(t *testing.T) {
	fs, _ := newTestSet("kinds")
	fs.Int("n", 0, "")
	err := fs.Parse([]string{"-n", "x"})
	var p *Panic
	if errors.As(err, &p) {
		t.Errorf("parse error unwraps to *Panic: %v", err)
	}
	pan := expectPanic(t, "redefined", func() { fs.Int("n", 0, "") })
	var fe *Error
	if errors.As(pan, &fe) {
		t.Errorf("*Panic unwraps to *Error: %v", pan)
	}
}

func TestCommandLineIsLazySingleton(t *testing.T) {
	ResetForTesting(nil)
	if CommandLine() != CommandLine() {
		t.Fatal("CommandLine returned different sets")
	}
	if CommandLine().ErrorHandling() != ContinueOnError {
		t.Errorf("test reset should leave ContinueOnError")
	}
	n := Int("n", 3, "")
	if err := CommandLine().Parse([]string{"-n", "4", "rest"}); err != nil {
		t.Fatal(err)
	}
	if !Parsed() || n.Get() != 4 || NArg() != 1 || NFlag() != 1 || Lookup("n") == nil {
		t.Errorf("top-level accessors disagree with CommandLine")
	}
}

func TestNameAndErrorHandling(t *testing.T) {
	fs := NewFlagSet("named", PanicOnError)
	if fs.Name() != "named" || fs.ErrorHandling() != PanicOnError {
		t.Errorf("got %q %v", fs.Name(), fs.ErrorHandling())
	}
	fs.Init("renamed", ContinueOnError)
	if fs.Name() != "renamed" || fs.ErrorHandling() != ContinueOnError {
		t.Errorf("Init did not apply: %q %v", fs.Name(), fs.ErrorHandling())
	}
	if fs.Lookup("missing") != nil {
		t.Error("Lookup of undefined flag should be nil")
	}
}
