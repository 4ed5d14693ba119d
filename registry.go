package flag

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net"
	neturl "net/url"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FieldHandler registers a flag for a struct field. It should apply the default value
// (considering required/default tags) and define the flag on ctx.FS.
// It returns true if it handled the field type.
type FieldHandler func(ctx *StructFieldContext) (handled bool, err error)

// StructFieldContext provides information & helpers for a struct field registration.
type StructFieldContext struct {
	FS         *FlagSet
	Struct     any // pointer to the struct being bound
	Field      reflect.StructField
	Value      reflect.Value
	FlagName   string
	Help       string
	Required   bool
	DefaultTag string
	Tags       map[string]string // raw tag values (layout, sep, enum, etc.)
}

var (
	structTypeHandlers = make(map[reflect.Type]FieldHandler)
	structKindHandlers = make(map[reflect.Kind]FieldHandler)
)

// RegisterStructHandler allows users to plug in custom struct field handling for
// BindStruct. The handler is invoked before built-in logic. If it returns
// (handled=true) no further processing occurs for that field.
//
// Typical usage (example: a named string type with its own converter):
//
//	type Colour string
//
//	func init() {
//	    flag.RegisterStructHandler(reflect.TypeFor[Colour](), func(ctx *flag.StructFieldContext) (bool, error) {
//	        return flag.BindField[Colour](ctx, colourConverter{})
//	    })
//	}
//
// If multiple handlers are registered for the same concrete type, the last wins.
// RegisterStructHandler is meant to be called from init functions; it is not
// safe to call concurrently with BindStruct.
func RegisterStructHandler(t reflect.Type, h FieldHandler) { structTypeHandlers[t] = h }

// tryHandleStructField locates a handler for the field's concrete type, then
// for its kind.
func tryHandleStructField(ctx *StructFieldContext) (bool, error) {
	if h, ok := structTypeHandlers[ctx.Field.Type]; ok {
		return h(ctx)
	}
	if h, ok := structKindHandlers[ctx.Field.Type.Kind()]; ok {
		return h(ctx)
	}
	return false, nil
}

// BindField defines ctx.FlagName on ctx.FS, converted by conv and stored in
// the struct field through a Field reference. The default is the field's
// current value, replaced by the default tag (parsed with conv) when there is
// one. Required fields start from T's zero value.
func BindField[T any](ctx *StructFieldContext, conv Converter[T]) (bool, error) {
	ref := Field[T](ctx.Struct, ctx.Field.Name)
	def := ref.Get()
	if ctx.Required {
		var zero T
		def = zero
	} else if ctx.DefaultTag != "" {
		v, err := conv.Parse(ctx.DefaultTag)
		if err != nil {
			return true, fmt.Errorf("invalid default %q: %w", ctx.DefaultTag, err)
		}
		def = v
	}
	Define[T](ctx.FS, conv, ref, ctx.FlagName, def, ctx.Help)
	return true, nil
}

func sepTag(ctx *StructFieldContext) string {
	if sep := ctx.Tags["sep"]; sep != "" {
		return sep
	}
	return ","
}

func bindString(ctx *StructFieldContext) (bool, error) {
	enumList := ctx.Tags["enum"]
	if enumList == "" {
		return BindField[string](ctx, StringConverter{})
	}
	allowed := strings.Split(enumList, ",")
	for i := range allowed {
		allowed[i] = strings.TrimSpace(allowed[i])
	}
	return BindField[string](ctx, EnumConverter{Allowed: allowed})
}

// init registers built-in handlers, by exact type first and by kind for
// named types such as `type Port int`.
func init() {
	RegisterStructHandler(reflect.TypeFor[time.Time](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[time.Time](ctx, TimeConverter{Layout: ctx.Tags["layout"]})
	})
	RegisterStructHandler(reflect.TypeFor[time.Duration](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[time.Duration](ctx, DurationConverter{})
	})
	RegisterStructHandler(reflect.TypeFor[decimal.Decimal](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[decimal.Decimal](ctx, DecimalConverter{})
	})
	RegisterStructHandler(reflect.TypeFor[net.IP](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[net.IP](ctx, IPConverter{})
	})
	RegisterStructHandler(reflect.TypeFor[*net.IPNet](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[*net.IPNet](ctx, IPNetConverter{})
	})
	RegisterStructHandler(reflect.TypeFor[*neturl.URL](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[*neturl.URL](ctx, URLConverter{})
	})
	RegisterStructHandler(reflect.TypeFor[uuid.UUID](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[uuid.UUID](ctx, UUIDConverter{})
	})
	RegisterStructHandler(reflect.TypeFor[ByteSize](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[ByteSize](ctx, ByteSizeConverter{})
	})
	RegisterStructHandler(reflect.TypeFor[*big.Int](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[*big.Int](ctx, BigIntConverter{})
	})
	RegisterStructHandler(reflect.TypeFor[*big.Rat](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[*big.Rat](ctx, BigRatConverter{})
	})
	RegisterStructHandler(reflect.TypeFor[*regexp.Regexp](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[*regexp.Regexp](ctx, RegexpConverter{})
	})
	RegisterStructHandler(reflect.TypeFor[[]string](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[[]string](ctx, SliceConverter[string]{Sep: sepTag(ctx), Elem: StringConverter{}})
	})
	RegisterStructHandler(reflect.TypeFor[[]time.Duration](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[[]time.Duration](ctx, SliceConverter[time.Duration]{Sep: sepTag(ctx), Elem: DurationConverter{}})
	})
	RegisterStructHandler(reflect.TypeFor[map[string]string](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[map[string]string](ctx, StringMapConverter{})
	})
	RegisterStructHandler(reflect.TypeFor[json.RawMessage](), func(ctx *StructFieldContext) (bool, error) {
		return BindField[json.RawMessage](ctx, JSONConverter{})
	})

	// primitive kinds; Field converts named types to and from the base type
	structKindHandlers[reflect.Bool] = func(ctx *StructFieldContext) (bool, error) {
		return BindField[bool](ctx, BoolConverter{})
	}
	structKindHandlers[reflect.Int] = func(ctx *StructFieldContext) (bool, error) {
		return BindField[int](ctx, IntConverter[int]{})
	}
	structKindHandlers[reflect.Int64] = func(ctx *StructFieldContext) (bool, error) {
		return BindField[int64](ctx, IntConverter[int64]{})
	}
	structKindHandlers[reflect.Uint] = func(ctx *StructFieldContext) (bool, error) {
		return BindField[uint](ctx, UintConverter[uint]{})
	}
	structKindHandlers[reflect.Uint64] = func(ctx *StructFieldContext) (bool, error) {
		return BindField[uint64](ctx, UintConverter[uint64]{})
	}
	structKindHandlers[reflect.Float64] = func(ctx *StructFieldContext) (bool, error) {
		return BindField[float64](ctx, FloatConverter[float64]{})
	}
	structKindHandlers[reflect.String] = bindString
}
