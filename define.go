package flag

import "time"

// Define defines a flag with the specified name, default value, and usage
// string, converted by conv and stored through ref. The default is written
// through ref before Define returns.
//
// Define panics on an invalid or duplicate name, before touching ref.
func Define[T any](f *FlagSet, conv Converter[T], ref Ref[T], name string, value T, usage string) {
	f.checkName(name)
	f.Var(newRefValue(conv, ref, value), name, usage)
}

// New defines a flag like Define and returns a Cell holding its value.
// The Cell can only be read once f has been parsed.
func New[T any](f *FlagSet, conv Converter[T], name string, value T, usage string) *Cell[T] {
	c := new(Cell[T])
	Define[T](f, conv, c, name, value, usage)
	c.owner, c.name = f, name
	return c
}

// BoolVar defines a bool flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func (f *FlagSet) BoolVar(p Ref[bool], name string, value bool, usage string) {
	Define[bool](f, BoolConverter{}, p, name, value, usage)
}

// BoolVar defines a bool flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func BoolVar(p Ref[bool], name string, value bool, usage string) {
	CommandLine().BoolVar(p, name, value, usage)
}

// Bool defines a bool flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func (f *FlagSet) Bool(name string, value bool, usage string) *Cell[bool] {
	return New[bool](f, BoolConverter{}, name, value, usage)
}

// Bool defines a bool flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func Bool(name string, value bool, usage string) *Cell[bool] {
	return CommandLine().Bool(name, value, usage)
}

// IntVar defines an int flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func (f *FlagSet) IntVar(p Ref[int], name string, value int, usage string) {
	Define[int](f, IntConverter[int]{}, p, name, value, usage)
}

// IntVar defines an int flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func IntVar(p Ref[int], name string, value int, usage string) {
	CommandLine().IntVar(p, name, value, usage)
}

// Int defines an int flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func (f *FlagSet) Int(name string, value int, usage string) *Cell[int] {
	return New[int](f, IntConverter[int]{}, name, value, usage)
}

// Int defines an int flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func Int(name string, value int, usage string) *Cell[int] {
	return CommandLine().Int(name, value, usage)
}

// Int64Var defines an int64 flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func (f *FlagSet) Int64Var(p Ref[int64], name string, value int64, usage string) {
	Define[int64](f, IntConverter[int64]{}, p, name, value, usage)
}

// Int64Var defines an int64 flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func Int64Var(p Ref[int64], name string, value int64, usage string) {
	CommandLine().Int64Var(p, name, value, usage)
}

// Int64 defines an int64 flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func (f *FlagSet) Int64(name string, value int64, usage string) *Cell[int64] {
	return New[int64](f, IntConverter[int64]{}, name, value, usage)
}

// Int64 defines an int64 flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func Int64(name string, value int64, usage string) *Cell[int64] {
	return CommandLine().Int64(name, value, usage)
}

// UintVar defines a uint flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func (f *FlagSet) UintVar(p Ref[uint], name string, value uint, usage string) {
	Define[uint](f, UintConverter[uint]{}, p, name, value, usage)
}

// UintVar defines a uint flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func UintVar(p Ref[uint], name string, value uint, usage string) {
	CommandLine().UintVar(p, name, value, usage)
}

// Uint defines a uint flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func (f *FlagSet) Uint(name string, value uint, usage string) *Cell[uint] {
	return New[uint](f, UintConverter[uint]{}, name, value, usage)
}

// Uint defines a uint flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func Uint(name string, value uint, usage string) *Cell[uint] {
	return CommandLine().Uint(name, value, usage)
}

// Uint64Var defines a uint64 flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func (f *FlagSet) Uint64Var(p Ref[uint64], name string, value uint64, usage string) {
	Define[uint64](f, UintConverter[uint64]{}, p, name, value, usage)
}

// Uint64Var defines a uint64 flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func Uint64Var(p Ref[uint64], name string, value uint64, usage string) {
	CommandLine().Uint64Var(p, name, value, usage)
}

// Uint64 defines a uint64 flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func (f *FlagSet) Uint64(name string, value uint64, usage string) *Cell[uint64] {
	return New[uint64](f, UintConverter[uint64]{}, name, value, usage)
}

// Uint64 defines a uint64 flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func Uint64(name string, value uint64, usage string) *Cell[uint64] {
	return CommandLine().Uint64(name, value, usage)
}

// StringVar defines a string flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func (f *FlagSet) StringVar(p Ref[string], name string, value string, usage string) {
	Define[string](f, StringConverter{}, p, name, value, usage)
}

// StringVar defines a string flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func StringVar(p Ref[string], name string, value string, usage string) {
	CommandLine().StringVar(p, name, value, usage)
}

// String defines a string flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func (f *FlagSet) String(name string, value string, usage string) *Cell[string] {
	return New[string](f, StringConverter{}, name, value, usage)
}

// String defines a string flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func String(name string, value string, usage string) *Cell[string] {
	return CommandLine().String(name, value, usage)
}

// Float64Var defines a float64 flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func (f *FlagSet) Float64Var(p Ref[float64], name string, value float64, usage string) {
	Define[float64](f, FloatConverter[float64]{}, p, name, value, usage)
}

// Float64Var defines a float64 flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
func Float64Var(p Ref[float64], name string, value float64, usage string) {
	CommandLine().Float64Var(p, name, value, usage)
}

// Float64 defines a float64 flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func (f *FlagSet) Float64(name string, value float64, usage string) *Cell[float64] {
	return New[float64](f, FloatConverter[float64]{}, name, value, usage)
}

// Float64 defines a float64 flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
func Float64(name string, value float64, usage string) *Cell[float64] {
	return CommandLine().Float64(name, value, usage)
}

// DurationVar defines a time.Duration flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
// The flag accepts a value acceptable to time.ParseDuration.
func (f *FlagSet) DurationVar(p Ref[time.Duration], name string, value time.Duration, usage string) {
	Define[time.Duration](f, DurationConverter{}, p, name, value, usage)
}

// DurationVar defines a time.Duration flag with specified name, default value, and usage string.
// The argument p is where the value of the flag is stored.
// The flag accepts a value acceptable to time.ParseDuration.
func DurationVar(p Ref[time.Duration], name string, value time.Duration, usage string) {
	CommandLine().DurationVar(p, name, value, usage)
}

// Duration defines a time.Duration flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
// The flag accepts a value acceptable to time.ParseDuration.
func (f *FlagSet) Duration(name string, value time.Duration, usage string) *Cell[time.Duration] {
	return New[time.Duration](f, DurationConverter{}, name, value, usage)
}

// Duration defines a time.Duration flag with specified name, default value, and usage string.
// The return value is a Cell that holds the value of the flag.
// The flag accepts a value acceptable to time.ParseDuration.
func Duration(name string, value time.Duration, usage string) *Cell[time.Duration] {
	return CommandLine().Duration(name, value, usage)
}

// Func defines a flag with the specified name and usage string.
// Each time the flag is seen, fn is called with the value of the flag.
// If fn returns a non-nil error, it will be treated as a flag value parsing error.
func (f *FlagSet) Func(name, usage string, fn func(string) error) {
	f.Var(funcValue(fn), name, usage)
}

// Func defines a flag with the specified name and usage string.
// Each time the flag is seen, fn is called with the value of the flag.
// If fn returns a non-nil error, it will be treated as a flag value parsing error.
func Func(name, usage string, fn func(string) error) {
	CommandLine().Func(name, usage, fn)
}

// BoolFunc defines a flag with the specified name and usage string without requiring values.
// Each time the flag is seen, fn is called with the value of the flag.
// If fn returns a non-nil error, it will be treated as a flag value parsing error.
func (f *FlagSet) BoolFunc(name, usage string, fn func(string) error) {
	f.Var(boolFuncValue(fn), name, usage)
}

// BoolFunc defines a flag with the specified name and usage string without requiring values.
// Each time the flag is seen, fn is called with the value of the flag.
// If fn returns a non-nil error, it will be treated as a flag value parsing error.
func BoolFunc(name, usage string, fn func(string) error) {
	CommandLine().BoolFunc(name, usage, fn)
}
