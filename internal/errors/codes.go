// Package errors provides the structured error-code taxonomy and the
// Report type that carries it. This is the concrete form of the host
// error sink referenced throughout the type core (spec §6's
// `parser.customError`, §7's error-kind enumeration).
package errors

// Error code constants for the type core. One phase only: "typecheck".
// Unlike a full compiler's error taxonomy (parser, loader, linker, ...)
// the core raises exactly these ten kinds, matching spec §7 one-to-one.
const (
	// TYP001 indicates a path segment could not be found in scope.
	TYP001 = "TYP001"

	// TYP002 indicates a looked-up symbol is not a declared type.
	TYP002 = "TYP002"

	// TYP003 indicates a type reference supplied the wrong number of
	// type arguments for the declaration's generic parameters.
	TYP003 = "TYP003"

	// TYP004 indicates a Generic reached resolve() without being
	// substituted away first.
	TYP004 = "TYP004"

	// TYP005 indicates an Unset type reached resolve() or match()
	// outside of a function-return inference sink.
	TYP005 = "TYP005"

	// TYP006 indicates two types have incompatible shapes (field,
	// constructor, or parameter mismatch).
	TYP006 = "TYP006"

	// TYP007 indicates two methods of the same name in one interface
	// or class have structurally identical parameter lists.
	TYP007 = "TYP007"

	// TYP008 indicates an operator-named method was declared with an
	// arity its operator does not support.
	TYP008 = "TYP008"

	// TYP009 indicates a named variant constructor does not exist on
	// the variant being navigated.
	TYP009 = "TYP009"

	// TYP010 indicates a nullability rule was violated: wrapping a
	// non-nullable-admitting type, nullable access on a non-nullable
	// value, or non-nullable access on a nullable value.
	TYP010 = "TYP010"
)

// ErrorInfo provides structured information about an error code.
type ErrorInfo struct {
	Code        string
	Category    string
	Description string
}

// Registry maps error codes to their information.
var Registry = map[string]ErrorInfo{
	TYP001: {TYP001, "lookup", "Unknown name"},
	TYP002: {TYP002, "lookup", "Not a declared type"},
	TYP003: {TYP003, "arity", "Type argument arity mismatch"},
	TYP004: {TYP004, "generic", "Unresolved generic"},
	TYP005: {TYP005, "recursion", "Cyclic or unset type"},
	TYP006: {TYP006, "shape", "Shape mismatch"},
	TYP007: {TYP007, "overload", "Duplicate overload"},
	TYP008: {TYP008, "operator", "Operator shape violation"},
	TYP009: {TYP009, "variant", "Variant constructor not found"},
	TYP010: {TYP010, "nullability", "Nullability violation"},
}

// GetErrorInfo returns information about an error code.
func GetErrorInfo(code string) (ErrorInfo, bool) {
	info, exists := Registry[code]
	return info, exists
}
