// Package dtype implements the type algebra of the language's semantic
// core: the tagged DataType union, its shared operations (resolve,
// shortname, serialize, hash, clone-with-substitution, nullability
// admissibility), and the small set of value types (FunctionArgument,
// InterfaceMethod, StructField, VariantParameter) that compose it.
//
// Reference resolution (internal/resolve), type compatibility
// (internal/match) and generic extraction (internal/generics) all
// operate on the types defined here but live in their own packages;
// dtype itself only declares the Context contract they implement.
package dtype

// Kind is the discriminant of a DataType. It exists purely for fast
// dispatch and diagnostics — the concrete Go type of a DataType value
// is still the source of truth for its shape.
type Kind int

const (
	KindInvalid Kind = iota

	// Scalars
	KindU8
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindBool
	KindNull
	KindVoid
	KindUnreachable
	KindLiteralInt

	// Aggregates
	KindArray
	KindTuple
	KindStruct
	KindEnum

	// Nominal refs
	KindClass
	KindInterface
	KindVariant
	KindVariantConstructor

	// Function-likes
	KindFunction
	KindCoroutine
	KindFFIMethod

	// Modifiers
	KindNullable
	KindReference
	KindPartialStruct
	KindLock

	// Structural combinators
	KindJoin
	KindUnion

	// Metatypes
	KindMetaClass
	KindMetaInterface
	KindMetaVariant
	KindMetaVariantConstructor
	KindMetaEnum

	// Pending
	KindUnset
	KindStringEnum
	KindGeneric
	KindNamespace
	KindFFINamespace
)

var kindNames = map[Kind]string{
	KindInvalid:                "invalid",
	KindU8:                     "u8",
	KindU16:                    "u16",
	KindU32:                    "u32",
	KindU64:                    "u64",
	KindI8:                     "i8",
	KindI16:                    "i16",
	KindI32:                    "i32",
	KindI64:                    "i64",
	KindF32:                    "f32",
	KindF64:                    "f64",
	KindBool:                   "bool",
	KindNull:                   "null",
	KindVoid:                   "void",
	KindUnreachable:            "unreachable",
	KindLiteralInt:             "literal_int",
	KindArray:                  "array",
	KindTuple:                  "tuple",
	KindStruct:                 "struct",
	KindEnum:                   "enum",
	KindClass:                  "class",
	KindInterface:              "interface",
	KindVariant:                "variant",
	KindVariantConstructor:     "variant_constructor",
	KindFunction:               "function",
	KindCoroutine:              "coroutine",
	KindFFIMethod:              "ffi_method",
	KindNullable:               "nullable",
	KindReference:              "reference",
	KindPartialStruct:          "partial_struct",
	KindLock:                   "lock",
	KindJoin:                   "join",
	KindUnion:                  "union",
	KindMetaClass:              "meta_class",
	KindMetaInterface:          "meta_interface",
	KindMetaVariant:            "meta_variant",
	KindMetaVariantConstructor: "meta_variant_constructor",
	KindMetaEnum:               "meta_enum",
	KindUnset:                  "unset",
	KindStringEnum:             "string_enum",
	KindGeneric:                "generic",
	KindNamespace:              "namespace",
	KindFFINamespace:           "ffi_namespace",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// unsignedOrder, signedOrder and floatOrder are the canonical widening
// order within each numeric family, used by the compatibility engine
// (spec §4.4) and kept here because it is a property of the scalar
// kinds themselves.
var unsignedOrder = []Kind{KindU8, KindU16, KindU32, KindU64}
var signedOrder = []Kind{KindI8, KindI16, KindI32, KindI64}
var floatOrder = []Kind{KindF32, KindF64}

func orderIndex(order []Kind, k Kind) int {
	for i, o := range order {
		if o == k {
			return i
		}
	}
	return -1
}

// IsUnsigned reports whether k is one of the unsigned integer kinds.
func IsUnsigned(k Kind) bool { return orderIndex(unsignedOrder, k) >= 0 }

// IsSigned reports whether k is one of the signed integer kinds.
func IsSigned(k Kind) bool { return orderIndex(signedOrder, k) >= 0 }

// IsFloat reports whether k is one of the floating point kinds.
func IsFloat(k Kind) bool { return orderIndex(floatOrder, k) >= 0 }

// IsBasic reports whether k is one of the basic scalar kinds that
// participate in numeric widening (i.e. not Bool, Null, Void, ...).
func IsBasic(k Kind) bool {
	return IsUnsigned(k) || IsSigned(k) || IsFloat(k)
}

var basicByteWidth = map[Kind]int{
	KindU8: 1, KindU16: 2, KindU32: 4, KindU64: 8,
	KindI8: 1, KindI16: 2, KindI32: 4, KindI64: 8,
	KindF32: 4, KindF64: 8,
}

// ByteWidth returns the storage width of a basic numeric kind, used by
// the optional literal-int range check (spec §9's first open
// question; zero for any non-numeric kind).
func ByteWidth(k Kind) int { return basicByteWidth[k] }

// WidensTo reports whether a value of kind from may be implicitly
// widened to kind to (spec §4.4's non-strict numeric widening table):
// within one numeric family (unsigned, signed, or float), from's
// position in that family's canonical order must not exceed to's;
// across families, only an unsigned from widening to a strictly wider
// signed to is allowed.
func WidensTo(from, to Kind) bool {
	for _, order := range [][]Kind{unsignedOrder, signedOrder, floatOrder} {
		fi, ti := orderIndex(order, from), orderIndex(order, to)
		if fi >= 0 && ti >= 0 {
			return fi <= ti
		}
	}
	// Cross-family: an unsigned value may widen to a strictly wider
	// signed destination (spec §4.4's "index gap >= 1" rule, e.g.
	// u16 -> i32 is allowed but u32 -> i32 is not).
	if ui := orderIndex(unsignedOrder, from); ui >= 0 {
		if si := orderIndex(signedOrder, to); si >= 0 {
			return si-ui >= 1
		}
	}
	return false
}
