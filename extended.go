package flag

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	neturl "net/url"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ---- Extended converters ----

// ByteSize represents a size in bytes (supports K, M, G, T suffixes incl. KiB style).
type ByteSize int64

func parseByteSize(s string) (ByteSize, error) {
	if s == "" {
		return 0, nil
	}
	// Accept forms: 123, 10k, 5K, 1MB, 2MiB, 1.5G etc.
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && (s[i] == '.' || s[i] == '+' || s[i] == '-' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	if i == 0 {
		return 0, ErrParse
	}
	var mult int64
	switch strings.ToUpper(strings.TrimSpace(s[i:])) {
	case "", "B":
		mult = 1
	case "K", "KB":
		mult = 1e3
	case "KI", "KIB":
		mult = 1 << 10
	case "M", "MB":
		mult = 1e6
	case "MI", "MIB":
		mult = 1 << 20
	case "G", "GB":
		mult = 1e9
	case "GI", "GIB":
		mult = 1 << 30
	case "T", "TB":
		mult = 1e12
	case "TI", "TIB":
		mult = 1 << 40
	default:
		return 0, fmt.Errorf("%w: unknown size unit in %q", ErrParse, s)
	}
	num := s[:i]
	if !strings.Contains(num, ".") {
		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return 0, numError(err)
		}
		if n > math.MaxInt64/mult || n < math.MinInt64/mult {
			return 0, ErrRange
		}
		return ByteSize(n * mult), nil
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, numError(err)
	}
	n := f * float64(mult)
	if n >= 1<<63 || n < -(1<<63) {
		return 0, ErrRange
	}
	if n != math.Trunc(n) {
		return 0, fmt.Errorf("%w: fractional byte count in %q", ErrParse, s)
	}
	return ByteSize(n), nil
}

// ByteSizeConverter accepts a number with an optional decimal (K, M, G, T)
// or binary (Ki, Mi, Gi, Ti) unit, with or without a trailing B.
type ByteSizeConverter struct{}

func (ByteSizeConverter) Parse(s string) (ByteSize, error) {
	v, err := parseByteSize(s)
	if err != nil {
		return 0, convError(s, "size", err)
	}
	return v, nil
}

func (ByteSizeConverter) Format(v ByteSize) string { return strconv.FormatInt(int64(v), 10) }

func (ByteSizeConverter) TypeName() string { return "size" }

// TimeConverter parses and formats times with Layout (time.RFC3339 if empty).
// The zero time formats as the empty string.
type TimeConverter struct{ Layout string }

func (c TimeConverter) layout() string {
	if c.Layout == "" {
		return time.RFC3339
	}
	return c.Layout
}

func (c TimeConverter) Parse(s string) (time.Time, error) {
	t, err := time.Parse(c.layout(), s)
	if err != nil {
		return time.Time{}, convError(s, "time", err)
	}
	return t, nil
}

func (c TimeConverter) Format(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.Format(c.layout())
}

func (TimeConverter) TypeName() string { return "time" }

// DecimalConverter parses arbitrary precision decimals.
type DecimalConverter struct{}

func (DecimalConverter) Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, convError(s, "decimal", err)
	}
	return d, nil
}

func (DecimalConverter) Format(v decimal.Decimal) string { return v.String() }

func (DecimalConverter) TypeName() string { return "decimal" }

// IPConverter parses IPv4 and IPv6 addresses. A nil IP formats as "".
type IPConverter struct{}

func (IPConverter) Parse(s string) (net.IP, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, convError(s, "ip", ErrParse)
	}
	return ip, nil
}

func (IPConverter) Format(v net.IP) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func (IPConverter) TypeName() string { return "ip" }

// IPNetConverter parses CIDR notation such as 10.0.0.0/8.
type IPNetConverter struct{}

func (IPNetConverter) Parse(s string) (*net.IPNet, error) {
	_, n, err := net.ParseCIDR(s)
	if err != nil {
		return nil, convError(s, "cidr", ErrParse)
	}
	return n, nil
}

func (IPNetConverter) Format(v *net.IPNet) string {
	if v == nil || v.IP == nil {
		return ""
	}
	return v.String()
}

func (IPNetConverter) TypeName() string { return "cidr" }

// URLConverter parses URLs with net/url. A nil URL formats as "".
type URLConverter struct{}

func (URLConverter) Parse(s string) (*neturl.URL, error) {
	u, err := neturl.Parse(s)
	if err != nil {
		return nil, convError(s, "url", err)
	}
	return u, nil
}

func (URLConverter) Format(v *neturl.URL) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func (URLConverter) TypeName() string { return "url" }

// UUIDConverter parses any form accepted by uuid.Parse.
type UUIDConverter struct{}

func (UUIDConverter) Parse(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, convError(s, "uuid", err)
	}
	return id, nil
}

func (UUIDConverter) Format(v uuid.UUID) string { return v.String() }

func (UUIDConverter) TypeName() string { return "uuid" }

// BigIntConverter parses integers of any size, with Go base prefixes.
// A nil *big.Int formats as 0.
type BigIntConverter struct{}

func (BigIntConverter) Parse(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, convError(s, "int", ErrParse)
	}
	return v, nil
}

func (BigIntConverter) Format(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func (BigIntConverter) TypeName() string { return "int" }

// BigRatConverter parses fractions (3/4) and decimals (0.75).
// A nil *big.Rat formats as 0.
type BigRatConverter struct{}

func (BigRatConverter) Parse(s string) (*big.Rat, error) {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, convError(s, "rational", ErrParse)
	}
	return v, nil
}

func (BigRatConverter) Format(v *big.Rat) string {
	if v == nil {
		return "0"
	}
	return v.RatString()
}

func (BigRatConverter) TypeName() string { return "rational" }

// RegexpConverter compiles the flag text with regexp.Compile.
type RegexpConverter struct{}

func (RegexpConverter) Parse(s string) (*regexp.Regexp, error) {
	r, err := regexp.Compile(s)
	if err != nil {
		return nil, convError(s, "regexp", err)
	}
	return r, nil
}

func (RegexpConverter) Format(v *regexp.Regexp) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func (RegexpConverter) TypeName() string { return "regexp" }

// SliceConverter splits the flag text on Sep ("," if empty) and converts
// each element with Elem. Surrounding spaces are trimmed from elements.
// Empty text yields an empty slice. Each occurrence of the flag replaces
// the whole slice.
type SliceConverter[T any] struct {
	Sep  string
	Elem Converter[T]
}

func (c SliceConverter[T]) sep() string {
	if c.Sep == "" {
		return ","
	}
	return c.Sep
}

func (c SliceConverter[T]) Parse(s string) ([]T, error) {
	if s == "" {
		return []T{}, nil
	}
	parts := strings.Split(s, c.sep())
	out := make([]T, 0, len(parts))
	for _, part := range parts {
		v, err := c.Elem.Parse(strings.TrimSpace(part))
		if err != nil {
			var ce *ConvError
			if errors.As(err, &ce) {
				err = ce.Err
			}
			return nil, convError(s, c.TypeName(), fmt.Errorf("element %q: %w", part, err))
		}
		out = append(out, v)
	}
	return out, nil
}

func (c SliceConverter[T]) Format(v []T) string {
	ss := make([]string, len(v))
	for i, x := range v {
		ss[i] = c.Elem.Format(x)
	}
	return strings.Join(ss, c.sep())
}

func (c SliceConverter[T]) TypeName() string {
	if n, ok := c.Elem.(typeNamer); ok && n.TypeName() != "" {
		return n.TypeName() + "s"
	}
	return "values"
}

// StringMapConverter parses a comma separated list of key=value pairs.
// It formats keys in sorted order.
type StringMapConverter struct{}

func (StringMapConverter) Parse(s string) (map[string]string, error) {
	m := make(map[string]string)
	if strings.TrimSpace(s) == "" {
		return m, nil
	}
	for _, p := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok {
			return nil, convError(s, "map", fmt.Errorf("invalid map entry %q", p))
		}
		m[k] = v
	}
	return m, nil
}

func (StringMapConverter) Format(v map[string]string) string {
	parts := make([]string, 0, len(v))
	for k, val := range v {
		parts = append(parts, k+"="+val)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (StringMapConverter) TypeName() string { return "map" }

// JSONConverter accepts any syntactically valid JSON document and keeps it
// as raw bytes.
type JSONConverter struct{}

func (JSONConverter) Parse(s string) (json.RawMessage, error) {
	if !json.Valid([]byte(s)) {
		return nil, convError(s, "json", ErrParse)
	}
	return json.RawMessage(s), nil
}

func (JSONConverter) Format(v json.RawMessage) string { return string(v) }

func (JSONConverter) TypeName() string { return "json" }

// EnumConverter accepts only the strings listed in Allowed.
type EnumConverter struct{ Allowed []string }

func (c EnumConverter) Parse(s string) (string, error) {
	if !slices.Contains(c.Allowed, s) {
		return "", convError(s, c.TypeName(), fmt.Errorf("%w: %q is not allowed", ErrParse, s))
	}
	return s, nil
}

func (EnumConverter) Format(v string) string { return v }

func (c EnumConverter) TypeName() string {
	sorted := slices.Clone(c.Allowed)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}

// Helper registration methods for extended types
func (f *FlagSet) ByteSizeVar(p Ref[ByteSize], name string, value ByteSize, usage string) {
	Define[ByteSize](f, ByteSizeConverter{}, p, name, value, usage)
}
func ByteSizeVar(p Ref[ByteSize], name string, value ByteSize, usage string) {
	CommandLine().ByteSizeVar(p, name, value, usage)
}
func (f *FlagSet) ByteSizeFlag(name string, value ByteSize, usage string) *Cell[ByteSize] {
	return New[ByteSize](f, ByteSizeConverter{}, name, value, usage)
}
func ByteSizeFlag(name string, value ByteSize, usage string) *Cell[ByteSize] {
	return CommandLine().ByteSizeFlag(name, value, usage)
}

// TimeVar defines a time flag parsed with layout (time.RFC3339 if empty).
func (f *FlagSet) TimeVar(p Ref[time.Time], name, layout string, value time.Time, usage string) {
	Define[time.Time](f, TimeConverter{Layout: layout}, p, name, value, usage)
}
func TimeVar(p Ref[time.Time], name, layout string, value time.Time, usage string) {
	CommandLine().TimeVar(p, name, layout, value, usage)
}
func (f *FlagSet) Time(name, layout string, value time.Time, usage string) *Cell[time.Time] {
	return New[time.Time](f, TimeConverter{Layout: layout}, name, value, usage)
}
func Time(name, layout string, value time.Time, usage string) *Cell[time.Time] {
	return CommandLine().Time(name, layout, value, usage)
}

func (f *FlagSet) DecimalVar(p Ref[decimal.Decimal], name string, value decimal.Decimal, usage string) {
	Define[decimal.Decimal](f, DecimalConverter{}, p, name, value, usage)
}
func DecimalVar(p Ref[decimal.Decimal], name string, value decimal.Decimal, usage string) {
	CommandLine().DecimalVar(p, name, value, usage)
}
func (f *FlagSet) Decimal(name string, value decimal.Decimal, usage string) *Cell[decimal.Decimal] {
	return New[decimal.Decimal](f, DecimalConverter{}, name, value, usage)
}
func Decimal(name string, value decimal.Decimal, usage string) *Cell[decimal.Decimal] {
	return CommandLine().Decimal(name, value, usage)
}

func (f *FlagSet) IPVar(p Ref[net.IP], name string, value net.IP, usage string) {
	Define[net.IP](f, IPConverter{}, p, name, value, usage)
}
func IPVar(p Ref[net.IP], name string, value net.IP, usage string) {
	CommandLine().IPVar(p, name, value, usage)
}
func (f *FlagSet) IP(name string, value net.IP, usage string) *Cell[net.IP] {
	return New[net.IP](f, IPConverter{}, name, value, usage)
}
func IP(name string, value net.IP, usage string) *Cell[net.IP] {
	return CommandLine().IP(name, value, usage)
}

func (f *FlagSet) IPNetVar(p Ref[*net.IPNet], name string, value *net.IPNet, usage string) {
	Define[*net.IPNet](f, IPNetConverter{}, p, name, value, usage)
}
func IPNetVar(p Ref[*net.IPNet], name string, value *net.IPNet, usage string) {
	CommandLine().IPNetVar(p, name, value, usage)
}
func (f *FlagSet) IPNet(name string, value *net.IPNet, usage string) *Cell[*net.IPNet] {
	return New[*net.IPNet](f, IPNetConverter{}, name, value, usage)
}
func IPNet(name string, value *net.IPNet, usage string) *Cell[*net.IPNet] {
	return CommandLine().IPNet(name, value, usage)
}

func (f *FlagSet) URLVar(p Ref[*neturl.URL], name string, value *neturl.URL, usage string) {
	Define[*neturl.URL](f, URLConverter{}, p, name, value, usage)
}
func URLVar(p Ref[*neturl.URL], name string, value *neturl.URL, usage string) {
	CommandLine().URLVar(p, name, value, usage)
}
func (f *FlagSet) URL(name string, value *neturl.URL, usage string) *Cell[*neturl.URL] {
	return New[*neturl.URL](f, URLConverter{}, name, value, usage)
}
func URL(name string, value *neturl.URL, usage string) *Cell[*neturl.URL] {
	return CommandLine().URL(name, value, usage)
}

func (f *FlagSet) UUIDVar(p Ref[uuid.UUID], name string, value uuid.UUID, usage string) {
	Define[uuid.UUID](f, UUIDConverter{}, p, name, value, usage)
}
func UUIDVar(p Ref[uuid.UUID], name string, value uuid.UUID, usage string) {
	CommandLine().UUIDVar(p, name, value, usage)
}
func (f *FlagSet) UUID(name string, value uuid.UUID, usage string) *Cell[uuid.UUID] {
	return New[uuid.UUID](f, UUIDConverter{}, name, value, usage)
}
func UUID(name string, value uuid.UUID, usage string) *Cell[uuid.UUID] {
	return CommandLine().UUID(name, value, usage)
}

func (f *FlagSet) BigIntVar(p Ref[*big.Int], name string, value *big.Int, usage string) {
	Define[*big.Int](f, BigIntConverter{}, p, name, value, usage)
}
func BigIntVar(p Ref[*big.Int], name string, value *big.Int, usage string) {
	CommandLine().BigIntVar(p, name, value, usage)
}
func (f *FlagSet) BigInt(name string, value *big.Int, usage string) *Cell[*big.Int] {
	return New[*big.Int](f, BigIntConverter{}, name, value, usage)
}
func BigInt(name string, value *big.Int, usage string) *Cell[*big.Int] {
	return CommandLine().BigInt(name, value, usage)
}

func (f *FlagSet) BigRatVar(p Ref[*big.Rat], name string, value *big.Rat, usage string) {
	Define[*big.Rat](f, BigRatConverter{}, p, name, value, usage)
}
func BigRatVar(p Ref[*big.Rat], name string, value *big.Rat, usage string) {
	CommandLine().BigRatVar(p, name, value, usage)
}
func (f *FlagSet) BigRat(name string, value *big.Rat, usage string) *Cell[*big.Rat] {
	return New[*big.Rat](f, BigRatConverter{}, name, value, usage)
}
func BigRat(name string, value *big.Rat, usage string) *Cell[*big.Rat] {
	return CommandLine().BigRat(name, value, usage)
}

func (f *FlagSet) RegexpVar(p Ref[*regexp.Regexp], name string, value *regexp.Regexp, usage string) {
	Define[*regexp.Regexp](f, RegexpConverter{}, p, name, value, usage)
}
func RegexpVar(p Ref[*regexp.Regexp], name string, value *regexp.Regexp, usage string) {
	CommandLine().RegexpVar(p, name, value, usage)
}
func (f *FlagSet) Regexp(name string, value *regexp.Regexp, usage string) *Cell[*regexp.Regexp] {
	return New[*regexp.Regexp](f, RegexpConverter{}, name, value, usage)
}
func Regexp(name string, value *regexp.Regexp, usage string) *Cell[*regexp.Regexp] {
	return CommandLine().Regexp(name, value, usage)
}

// StringSliceVar defines a list flag split on sep ("," if empty).
func (f *FlagSet) StringSliceVar(p Ref[[]string], name, sep string, value []string, usage string) {
	Define[[]string](f, SliceConverter[string]{Sep: sep, Elem: StringConverter{}}, p, name, value, usage)
}
func StringSliceVar(p Ref[[]string], name, sep string, value []string, usage string) {
	CommandLine().StringSliceVar(p, name, sep, value, usage)
}
func (f *FlagSet) StringSlice(name, sep string, value []string, usage string) *Cell[[]string] {
	return New[[]string](f, SliceConverter[string]{Sep: sep, Elem: StringConverter{}}, name, value, usage)
}
func StringSlice(name, sep string, value []string, usage string) *Cell[[]string] {
	return CommandLine().StringSlice(name, sep, value, usage)
}

func (f *FlagSet) DurationSliceVar(p Ref[[]time.Duration], name, sep string, value []time.Duration, usage string) {
	Define[[]time.Duration](f, SliceConverter[time.Duration]{Sep: sep, Elem: DurationConverter{}}, p, name, value, usage)
}
func DurationSliceVar(p Ref[[]time.Duration], name, sep string, value []time.Duration, usage string) {
	CommandLine().DurationSliceVar(p, name, sep, value, usage)
}
func (f *FlagSet) DurationSlice(name, sep string, value []time.Duration, usage string) *Cell[[]time.Duration] {
	return New[[]time.Duration](f, SliceConverter[time.Duration]{Sep: sep, Elem: DurationConverter{}}, name, value, usage)
}
func DurationSlice(name, sep string, value []time.Duration, usage string) *Cell[[]time.Duration] {
	return CommandLine().DurationSlice(name, sep, value, usage)
}

func (f *FlagSet) StringMapVar(p Ref[map[string]string], name string, value map[string]string, usage string) {
	Define[map[string]string](f, StringMapConverter{}, p, name, value, usage)
}
func StringMapVar(p Ref[map[string]string], name string, value map[string]string, usage string) {
	CommandLine().StringMapVar(p, name, value, usage)
}
func (f *FlagSet) StringMap(name string, value map[string]string, usage string) *Cell[map[string]string] {
	return New[map[string]string](f, StringMapConverter{}, name, value, usage)
}
func StringMap(name string, value map[string]string, usage string) *Cell[map[string]string] {
	return CommandLine().StringMap(name, value, usage)
}

func (f *FlagSet) JSONVar(p Ref[json.RawMessage], name string, value json.RawMessage, usage string) {
	Define[json.RawMessage](f, JSONConverter{}, p, name, value, usage)
}
func JSONVar(p Ref[json.RawMessage], name string, value json.RawMessage, usage string) {
	CommandLine().JSONVar(p, name, value, usage)
}
func (f *FlagSet) JSON(name string, value json.RawMessage, usage string) *Cell[json.RawMessage] {
	return New[json.RawMessage](f, JSONConverter{}, name, value, usage)
}
func JSON(name string, value json.RawMessage, usage string) *Cell[json.RawMessage] {
	return CommandLine().JSON(name, value, usage)
}

// EnumVar defines a string flag restricted to allowed. The default is not
// checked against allowed.
func (f *FlagSet) EnumVar(p Ref[string], name string, value string, allowed []string, usage string) {
	Define[string](f, EnumConverter{Allowed: allowed}, p, name, value, usage)
}
func EnumVar(p Ref[string], name string, value string, allowed []string, usage string) {
	CommandLine().EnumVar(p, name, value, allowed, usage)
}
func (f *FlagSet) Enum(name string, value string, allowed []string, usage string) *Cell[string] {
	return New[string](f, EnumConverter{Allowed: allowed}, name, value, usage)
}
func Enum(name string, value string, allowed []string, usage string) *Cell[string] {
	return CommandLine().Enum(name, value, allowed, usage)
}
