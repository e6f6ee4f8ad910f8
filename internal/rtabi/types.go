// Package rtabi defines the target and type-layout constants shared by the
// type registry, the backend wrapper and the code generator.
package rtabi

// Default target configuration. Both can be overridden per module.
const (
	// TargetTriple is the LLVM target triple for code generation.
	TargetTriple = "arm64-apple-macosx26.0.0"

	// DataLayout is the LLVM data layout string matching the target.
	DataLayout = "e-m:o-i64:64-i128:128-n32:64-S128-Fn32"
)

// Type widths in bits.
const (
	// PtrBits is the width of every pointer, independent of the pointee.
	PtrBits = 64

	// BoolBits is the storage width of bool; comparison results are
	// widened from i1 to this width.
	BoolBits = 8

	// LiteralBits is the width given to every integer literal.
	LiteralBits = 64

	// VoidBits is the size recorded for the unit type.
	VoidBits = 0
)

// Predeclared type names.
const (
	// VoidTypeName names the unit type of functions without a result.
	VoidTypeName = "()"

	// LiteralTypeName is the registry entry integer literals resolve to.
	LiteralTypeName = "i64"

	// BoolTypeName is the result type of comparisons.
	BoolTypeName = "bool"
)

// DefaultModuleName is used when the driver is not given a module name.
const DefaultModuleName = "maga"
