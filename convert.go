package flag

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Converter parses flag text into a T and formats a T back into text.
// Converters are stateless; the storage lives behind a Ref.
//
// Parse must report malformed input as an error and never panic on it.
// Format must accept any T, including its zero value, which is used to
// decide whether a default is worth printing in usage text.
//
// A Converter may also implement
//
//	IsBoolFlag() bool  // -name means -name=true and never eats the next argument
//	TypeName() string  // placeholder shown after the flag name in usage text
type Converter[T any] interface {
	Parse(s string) (T, error)
	Format(v T) string
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type float interface {
	~float32 | ~float64
}

// numError maps strconv failures to ErrParse or ErrRange.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
		return ErrRange
	}
	return ErrParse
}

func bitSize[T any]() int { return reflect.TypeFor[T]().Bits() }

// -- bool

// BoolConverter accepts, ignoring case, true, t, 1 and yes for true and
// false, f, 0 and no for false. It formats as true or false.
type BoolConverter struct{}

func (BoolConverter) Parse(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "t", "1", "yes":
		return true, nil
	case "false", "f", "0", "no":
		return false, nil
	}
	return false, convError(s, "bool", ErrParse)
}

func (BoolConverter) Format(v bool) string { return strconv.FormatBool(v) }

func (BoolConverter) IsBoolFlag() bool { return true }

func (BoolConverter) TypeName() string { return "" }

// -- signed integers

// IntConverter parses signed integers of T's width. Base 0 accepts Go
// integer literal prefixes (0x, 0o, 0b and a leading 0 for octal);
// any other base is passed to strconv and also used by Format.
type IntConverter[T signed] struct {
	Base int
}

func (c IntConverter[T]) Parse(s string) (T, error) {
	v, err := strconv.ParseInt(s, c.Base, bitSize[T]())
	if err != nil {
		return 0, convError(s, "int", numError(err))
	}
	return T(v), nil
}

func (c IntConverter[T]) Format(v T) string {
	return strconv.FormatInt(int64(v), formatBase(c.Base))
}

func (IntConverter[T]) TypeName() string { return "int" }

// -- unsigned integers

// UintConverter parses unsigned integers of T's width, with the same Base
// rules as IntConverter.
type UintConverter[T unsigned] struct {
	Base int
}

func (c UintConverter[T]) Parse(s string) (T, error) {
	v, err := strconv.ParseUint(s, c.Base, bitSize[T]())
	if err != nil {
		return 0, convError(s, "uint", numError(err))
	}
	return T(v), nil
}

func (c UintConverter[T]) Format(v T) string {
	return strconv.FormatUint(uint64(v), formatBase(c.Base))
}

func (UintConverter[T]) TypeName() string { return "uint" }

func formatBase(base int) int {
	if base < 2 || base > 36 {
		return 10
	}
	return base
}

// -- floating point

// FloatConverter parses floating point numbers of T's precision.
type FloatConverter[T float] struct{}

func (FloatConverter[T]) Parse(s string) (T, error) {
	v, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return 0, convError(s, "float", numError(err))
	}
	return T(v), nil
}

func (FloatConverter[T]) Format(v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, bitSize[T]())
}

func (FloatConverter[T]) TypeName() string { return "float" }

// -- string

// StringConverter stores the flag text unchanged.
type StringConverter struct{}

func (StringConverter) Parse(s string) (string, error) { return s, nil }

func (StringConverter) Format(v string) string { return v }

func (StringConverter) TypeName() string { return "string" }

// -- time.Duration

// DurationConverter accepts anything time.ParseDuration accepts.
type DurationConverter struct{}

func (DurationConverter) Parse(s string) (time.Duration, error) {
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, convError(s, "duration", ErrParse)
	}
	return v, nil
}

func (DurationConverter) Format(v time.Duration) string { return v.String() }

func (DurationConverter) TypeName() string { return "duration" }

// -- caller defined

// Custom builds a Converter from functions. ParseFunc is required;
// FormatFunc defaults to fmt.Sprint. Name is the usage placeholder
// ("value" when empty) and Bool marks the flag as boolean.
type Custom[T any] struct {
	Name       string
	ParseFunc  func(string) (T, error)
	FormatFunc func(T) string
	Bool       bool
}

func (c Custom[T]) Parse(s string) (T, error) {
	if c.ParseFunc == nil {
		panic(newPanic("flag: Custom[%s] has no ParseFunc", reflect.TypeFor[T]()))
	}
	v, err := c.ParseFunc(s)
	if err != nil {
		var ce *ConvError
		if errors.As(err, &ce) {
			return v, err
		}
		return v, convError(s, c.TypeName(), err)
	}
	return v, nil
}

func (c Custom[T]) Format(v T) string {
	if c.FormatFunc == nil {
		return fmt.Sprint(v)
	}
	return c.FormatFunc(v)
}

func (c Custom[T]) IsBoolFlag() bool { return c.Bool }

func (c Custom[T]) TypeName() string {
	if c.Name == "" {
		return "value"
	}
	return c.Name
}

// refValue binds a Converter to a Ref and satisfies Value, so the parser
// handles every typed flag the same way.
type refValue[T any] struct {
	conv Converter[T]
	ref  Ref[T]
}

func newRefValue[T any](conv Converter[T], ref Ref[T], value T) *refValue[T] {
	ref.Set(value)
	return &refValue[T]{conv: conv, ref: ref}
}

func (v *refValue[T]) Set(s string) error {
	x, err := v.conv.Parse(s)
	if err != nil {
		return err
	}
	v.ref.Set(x)
	return nil
}

func (v *refValue[T]) current() T {
	if p, ok := v.ref.(peeker[T]); ok {
		return p.peek()
	}
	return v.ref.Get()
}

func (v *refValue[T]) Get() any { return v.current() }

func (v *refValue[T]) String() string {
	if v == nil || v.ref == nil {
		return ""
	}
	return v.conv.Format(v.current())
}

func (v *refValue[T]) IsBoolFlag() bool {
	b, ok := v.conv.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func (v *refValue[T]) TypeName() string {
	if n, ok := v.conv.(interface{ TypeName() string }); ok {
		return n.TypeName()
	}
	return "value"
}

func (v *refValue[T]) zeroString() string {
	var z T
	return v.conv.Format(z)
}

// -- func Value

type funcValue func(string) error

func (f funcValue) Set(s string) error { return f(s) }

func (f funcValue) String() string { return "" }

// -- boolFunc Value

type boolFuncValue func(string) error

func (f boolFuncValue) Set(s string) error { return f(s) }

func (f boolFuncValue) String() string { return "" }

func (f boolFuncValue) IsBoolFlag() bool { return true }
