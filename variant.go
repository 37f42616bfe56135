// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stencilbench

import (
	"strconv"
	"strings"
)

// Variant selects one access-pattern implementation of a workload.
type Variant uint8

// Blur variants. All six produce bit-identical output.
const (
	// BlurFunctional reads by coordinate and returns the pixel.
	BlurFunctional Variant = iota

	// BlurPointerInPointerOut reads by stride offset and writes raw bytes.
	BlurPointerInPointerOut

	// BlurPointerInSetterOut reads by stride offset and writes with a setter.
	BlurPointerInSetterOut

	// BlurGetterInPointerOut reads by coordinate and writes raw bytes.
	BlurGetterInPointerOut

	// BlurBufferIndexed reads the preloaded buffer by direct linear index.
	BlurBufferIndexed

	// BlurBufferPointer reads the preloaded buffer by stride offset.
	BlurBufferPointer

	// BroadcastFunctional returns a stamp that the dispatcher writes.
	BroadcastFunctional

	// BroadcastPointer writes the window with strided raw writes.
	BroadcastPointer

	// BroadcastSetter writes the window with one setter call per cell.
	BroadcastSetter

	// GrayFunctional reads by coordinate and returns the gray value.
	GrayFunctional

	// GrayPointerInSetterOut reads by cursor and writes with a setter.
	GrayPointerInSetterOut

	// GrayGetterInSetterOut reads by coordinate and writes with a setter.
	GrayGetterInSetterOut

	// GrayPointerInPointerOut reads by cursor and writes the raw byte.
	GrayPointerInPointerOut

	// GrayGetterInPointerOut reads by coordinate and writes the raw byte.
	GrayGetterInPointerOut

	// Series computes the scalar series with no grid access.
	Series

	variantCount
)

var variantNames = [variantCount]string{
	BlurFunctional:          "blur-functional",
	BlurPointerInPointerOut: "blur-pointer-pointer",
	BlurPointerInSetterOut:  "blur-pointer-setter",
	BlurGetterInPointerOut:  "blur-getter-pointer",
	BlurBufferIndexed:       "blur-buffer-indexed",
	BlurBufferPointer:       "blur-buffer-pointer",
	BroadcastFunctional:     "broadcast-functional",
	BroadcastPointer:        "broadcast-pointer",
	BroadcastSetter:         "broadcast-setter",
	GrayFunctional:          "gray-functional",
	GrayPointerInSetterOut:  "gray-pointer-setter",
	GrayGetterInSetterOut:   "gray-getter-setter",
	GrayPointerInPointerOut: "gray-pointer-pointer",
	GrayGetterInPointerOut:  "gray-getter-pointer",
	Series:                  "series",
}

// String returns the variant name as accepted by ParseVariant.
func (v Variant) String() string {
	if !v.IsValid() {
		return "Variant(" + strconv.Itoa(int(v)) + ")"
	}
	return variantNames[v]
}

// IsValid reports whether v is a known variant.
func (v Variant) IsValid() bool {
	return v < variantCount
}

// Family returns the workload the variant belongs to.
func (v Variant) Family() Family {
	switch {
	case v <= BlurBufferPointer:
		return FamilyBlur
	case v <= BroadcastSetter:
		return FamilyBroadcast
	case v <= GrayGetterInPointerOut:
		return FamilyGray
	case v == Series:
		return FamilySeries
	default:
		return FamilyUnknown
	}
}

// UsesBuffer reports whether the variant reads the preloaded buffer.
func (v Variant) UsesBuffer() bool {
	return v == BlurBufferIndexed || v == BlurBufferPointer
}

// ParseVariant parses a variant name (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for v, n := range variantNames {
		if n == name {
			return Variant(v), nil
		}
	}
	return 0, &ConfigError{Field: "Variant", Reason: strconv.Quote(s) + " is not a known variant"}
}

// Variants returns all variants in declaration order.
func Variants() []Variant {
	vs := make([]Variant, variantCount)
	for i := range vs {
		vs[i] = Variant(i)
	}
	return vs
}

// Family is a workload.
type Family uint8

// Workload families.
const (
	FamilyUnknown Family = iota
	FamilyBlur
	FamilyBroadcast
	FamilyGray
	FamilySeries
)

func (f Family) String() string {
	switch f {
	case FamilyBlur:
		return "blur"
	case FamilyBroadcast:
		return "broadcast"
	case FamilyGray:
		return "gray"
	case FamilySeries:
		return "series"
	default:
		return "unknown"
	}
}
