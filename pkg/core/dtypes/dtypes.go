// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dtypes includes the DType enum for the data types seen by accelerator partitioners.
//
// Values follow the PJRT numbering. The predicates are the ones needed to decide whether a value can be
// handled by an accelerator: floating point or integer classification, storage sizes and half-precision
// range checks.
package dtypes

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/x448/float16"
)

func init() {
	// Add a mapping to the lower-case version of dtypes.
	keys := slices.Collect(maps.Keys(MapOfNames))
	for _, key := range keys {
		lowerKey := strings.ToLower(key)
		if lowerKey == key {
			continue
		}
		if _, found := MapOfNames[lowerKey]; found {
			continue
		}
		MapOfNames[lowerKey] = MapOfNames[key]
	}
}

// String implements fmt.Stringer.
func (dtype DType) String() string {
	if name, found := canonicalNames[dtype]; found {
		return name
	}
	return fmt.Sprintf("DType(%d)", int32(dtype))
}

// FromName parses a dtype name, accepting the aliases in MapOfNames (case-insensitive).
func FromName(name string) (DType, error) {
	if dtype, found := MapOfNames[name]; found {
		return dtype, nil
	}
	if dtype, found := MapOfNames[strings.ToLower(name)]; found {
		return dtype, nil
	}
	return InvalidDType, errors.Errorf("unknown dtype %q", name)
}

// IsKnown returns whether dtype is one of the enumerated values (InvalidDType included).
func (dtype DType) IsKnown() bool {
	_, found := canonicalNames[dtype]
	return found
}

// Bits returns the number of bits used to store one element of the given DType, or 0 for unknown dtypes.
func (dtype DType) Bits() int {
	switch dtype {
	case Int4, Uint4:
		return 4
	case Bool, Int8, Uint8:
		return 8
	case Int16, Uint16, Float16, BFloat16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64, Complex64:
		return 64
	case Complex128:
		return 128
	default:
		return 0
	}
}

// Size returns the number of bytes for the given DType, or 0 if the dtype uses fraction(s) of bytes.
// If the size is 0 (like a 4-bits quantity), consider the Bits or SizeForDimensions method.
func (dtype DType) Size() int {
	return dtype.Bits() / 8
}

// SizeForDimensions returns the size in bytes used for the given dimensions, rounding up sub-byte dtypes.
//
// It works also for scalar (one element) shapes where the list of dimensions is empty.
// Negative dimensions (unknown/dynamic axes) yield -1.
func (dtype DType) SizeForDimensions(dimensions ...int) int {
	numElements := 1
	for _, dim := range dimensions {
		if dim < 0 {
			return -1
		}
		numElements *= dim
	}
	return (numElements*dtype.Bits() + 7) / 8
}

// IsFloat returns whether dtype is a supported float -- float types not yet supported will return false.
// It returns false for complex numbers.
func (dtype DType) IsFloat() bool {
	return dtype == Float32 || dtype == Float64 || dtype == Float16 || dtype == BFloat16
}

// IsFloat16 returns whether dtype is a 16-bit float, either Float16 or BFloat16.
func (dtype DType) IsFloat16() bool {
	return dtype == Float16 || dtype == BFloat16
}

// IsComplex returns whether dtype is a supported complex number type.
func (dtype DType) IsComplex() bool {
	return dtype == Complex64 || dtype == Complex128
}

// IsInt returns whether dtype is a supported integer type -- float types not yet supported will return false.
func (dtype DType) IsInt() bool {
	switch dtype {
	case Int4, Int8, Int16, Int32, Int64, Uint4, Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

// IsUnsigned returns whether dtype is one of the unsigned (only int for now) types.
func (dtype DType) IsUnsigned() bool {
	return dtype == Uint4 || dtype == Uint8 || dtype == Uint16 || dtype == Uint32 || dtype == Uint64
}

// IsQuantizedStorage returns whether dtype is one of the narrow integer types used to store
// quantized tensors (per-tensor or affine quantization).
func (dtype DType) IsQuantizedStorage() bool {
	switch dtype {
	case Int4, Uint4, Int8, Uint8, Int16, Uint16:
		return true
	}
	return false
}

// FitsFloat16 returns whether value survives conversion to IEEE half-precision without overflowing
// to an infinity. NaN and infinite inputs are reported as fitting, since they convert to themselves.
func FitsFloat16(value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return true
	}
	if value > math.MaxFloat32 || value < -math.MaxFloat32 {
		return false
	}
	return !float16.Fromfloat32(float32(value)).IsInf(0)
}

// MarshalText implements encoding.TextMarshaler, so dtypes are written by name in YAML/JSON files.
func (dtype DType) MarshalText() ([]byte, error) {
	if !dtype.IsKnown() {
		return nil, errors.Errorf("cannot marshal unknown dtype %d", int32(dtype))
	}
	return []byte(dtype.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any alias in MapOfNames.
func (dtype *DType) UnmarshalText(text []byte) error {
	parsed, err := FromName(string(text))
	if err != nil {
		return err
	}
	*dtype = parsed
	return nil
}
