package flag

import (
	"fmt"
	"os"
	"reflect"
	"strings"
)

/*
    In this file, we define a way of users providing a struct that we can use to resolve flags.
	The user provides a struct with the following field tags:
	- `flag:"name"`: the name of the flag
	- `default:"value"`: the default value of the flag, in the same syntax as the command line
	- `help:"message"`: the help message for the flag
	- `required:"true"`: mark the flag as required (in which case the `default` value will be ignored)
	- `layout:"..."`, `sep:","`, `enum:"a,b"`: converter options for time, list and enum fields

	Each tagged field is bound through a Field reference, so parsed values land
	directly in the struct. Fields are defined in declaration order, which is
	the order they appear in usage text.

	ParseStruct binds, parses and then reports which required flags were not given.
*/

var structTags = []string{"layout", "sep", "enum"}

// BindStruct defines a flag on f for every exported field of *s carrying a
// flag tag. Errors for individual fields (an unsupported type, a default that
// does not convert) are collected into a *MultiError; the other fields are
// still bound.
//
// BindStruct panics if s is not a non-nil pointer to a struct.
func (f *FlagSet) BindStruct(s any) error {
	_, err := f.bindStruct(s)
	return err
}

func (f *FlagSet) bindStruct(s any) (required []string, err error) {
	v := reflect.ValueOf(s)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		f.panicf("flag: BindStruct expects a non-nil pointer to a struct, got %T", s)
	}
	v = v.Elem()
	t := v.Type()
	var errs MultiError
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		} // unexported
		flagName := field.Tag.Get("flag")
		if flagName == "" {
			continue
		}
		ctx := &StructFieldContext{
			FS:         f,
			Struct:     s,
			Field:      field,
			Value:      v.Field(i),
			FlagName:   flagName,
			Help:       field.Tag.Get("help"),
			Required:   strings.EqualFold(field.Tag.Get("required"), "true"),
			DefaultTag: field.Tag.Get("default"),
			Tags:       make(map[string]string, len(structTags)),
		}
		for _, k := range structTags {
			if tv, ok := field.Tag.Lookup(k); ok {
				ctx.Tags[k] = tv
			}
		}
		handled, herr := tryHandleStructField(ctx)
		if herr == nil && !handled {
			herr = fmt.Errorf("unsupported field type %s for flag %q", field.Type, flagName)
		}
		if herr != nil {
			errs.Append(fmt.Errorf("field %s: %w", field.Name, herr))
			continue
		}
		if ctx.Required {
			required = append(required, flagName)
		}
	}
	return required, errs.ErrOrNil()
}

// ParseStruct binds s with BindStruct, parses arguments and then checks that
// every field tagged required was given on the command line. Missing flags
// are reported together in one *Error.
//
// ParseStruct panics if f has already been parsed.
func (f *FlagSet) ParseStruct(s any, arguments []string) error {
	if f.parsed {
		f.panicf("flag: ParseStruct called after %s was parsed", f.describe())
	}
	required, err := f.bindStruct(s)
	if err != nil {
		return err
	}
	if err := f.Parse(arguments); err != nil {
		return err
	}
	var missing []string
	for _, name := range required {
		if f.actual[name] == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return newError(missing[0], nil, "missing required flags: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ParseStruct binds s to the command-line flag set and parses os.Args[1:].
// See FlagSet.ParseStruct.
func ParseStruct(s any) error {
	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}
	return CommandLine().ParseStruct(s, args)
}
