// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flag

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// isZeroValue determines whether the string represents the zero
// value for a flag.
func isZeroValue(flag *Flag, value string) (ok bool) {
	// A String or Format that cannot cope with the zero value is not
	// treated as zero.
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	if z, isZ := flag.Value.(zeroer); isZ {
		return value == z.zeroString()
	}
	// Build a zero value of the flag's Value type, and see if the
	// result of calling its String method equals the value passed in.
	// This works unless the Value type is itself an interface type.
	typ := reflect.TypeOf(flag.Value)
	var z reflect.Value
	if typ.Kind() == reflect.Pointer {
		z = reflect.New(typ.Elem())
	} else {
		z = reflect.Zero(typ)
	}
	if zv, isV := z.Interface().(Value); isV && value == zv.String() {
		return true
	}
	switch value {
	case "false", "", "0":
		return true
	}
	return false
}

// UnquoteUsage extracts a back-quoted name from the usage
// string for a flag and returns it and the un-quoted usage.
// Given "a `name` to show" it returns ("name", "a name to show").
// If there are no back quotes, the name is the flag's type placeholder,
// or the empty string if the flag is a boolean.
func UnquoteUsage(flag *Flag) (name string, usage string) {
	// Look for a back-quoted name, but avoid the strings package.
	usage = flag.Usage
	for i := 0; i < len(usage); i++ {
		if usage[i] == '`' {
			for j := i + 1; j < len(usage); j++ {
				if usage[j] == '`' {
					name = usage[i+1 : j]
					usage = usage[:i] + name + usage[j+1:]
					return name, usage
				}
			}
			break // Only one back quote; use type name.
		}
	}
	name = "value"
	if fv, ok := flag.Value.(boolFlag); ok && fv.IsBoolFlag() {
		name = ""
	} else if tn, ok := flag.Value.(typeNamer); ok {
		name = tn.TypeName()
	}
	return
}

// PrintDefaults prints, to standard error unless configured otherwise, the
// default values of all defined flags in the set, in the order they were
// defined. See the documentation for the global function PrintDefaults for
// more information.
func (f *FlagSet) PrintDefaults() {
	f.writeDefaults(f.Output())
}

func (f *FlagSet) writeDefaults(w io.Writer) {
	for _, flag := range f.order {
		var b strings.Builder
		fmt.Fprintf(&b, "  -%s", flag.Name)
		name, usage := UnquoteUsage(flag)
		if len(name) > 0 {
			b.WriteString(" ")
			b.WriteString(name)
		}
		// Usage goes on its own line, indented four spaces.
		b.WriteString("\n    ")
		b.WriteString(strings.ReplaceAll(usage, "\n", "\n    "))

		if !isZeroValue(flag, flag.DefValue) {
			fmt.Fprintf(&b, " (default: %s)", flag.DefValue)
		}
		b.WriteString("\n")
		io.WriteString(w, b.String())
	}
}

// UsageText returns the usage message Parse prints by default: a header
// naming the set followed by the output of PrintDefaults.
func (f *FlagSet) UsageText() string {
	var b strings.Builder
	if f.name == "" {
		b.WriteString("Usage:\n")
	} else {
		fmt.Fprintf(&b, "Usage of %s:\n", f.name)
	}
	f.writeDefaults(&b)
	return b.String()
}

// defaultUsage is the default function to print a usage message.
func defaultUsage(f *FlagSet) {
	io.WriteString(f.Output(), f.UsageText())
}

// PrintDefaults prints, to standard error unless configured otherwise,
// a usage message showing the default settings of all defined
// command-line flags, in the order they were defined.
// For an integer valued flag x, the default output has the form
//
//	-x int
//		usage-message-for-x (default: 7)
//
// The usage message appears on a separate line indented by four
// spaces; multi-line messages keep that indentation. The default is
// omitted when it is the zero value for the type. The listed type, here
// int, can be changed by placing a back-quoted name in the flag's usage
// string; the first such item in the message is taken to be a parameter
// name to show in the message and the back quotes are stripped from the
// message when displayed. For instance, given
//
//	flag.String("I", "", "search `directory` for include files")
//
// the output will be
//
//	-I directory
//		search directory for include files.
//
// Boolean flags show no type. To change the destination for flag
// messages, call CommandLine().SetOutput.
func PrintDefaults() {
	CommandLine().PrintDefaults()
}
