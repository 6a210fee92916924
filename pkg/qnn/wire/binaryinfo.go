// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package wire

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/gomlx/delegation/pkg/qnn"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// BinaryInfo frames a payload handed to the native runtime (serialized options or a context binary)
// with a signature of its contents, so a truncated or corrupted payload is detected before it's used.
//
// Serialized as {1: signature, 2: data}.
type BinaryInfo struct {
	// Signature is the hex encoded xxhash64 of Data.
	Signature string
	Data      []byte
}

const (
	fieldSignature protowire.Number = 1
	fieldData      protowire.Number = 2
)

// Signature returns the signature of data, as stored in BinaryInfo.Signature.
func Signature(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// NewBinaryInfo returns data framed with its signature. The data is not copied.
func NewBinaryInfo(data []byte) BinaryInfo {
	return BinaryInfo{Signature: Signature(data), Data: data}
}

// Verify checks the signature matches the data.
func (info BinaryInfo) Verify() error {
	if got := Signature(info.Data); got != info.Signature {
		return failuref("binary_info.signature=%q doesn't match the data signature %q (%d bytes): corrupted payload",
			info.Signature, got, len(info.Data))
	}
	return nil
}

// Marshal serializes the framed payload.
func (info BinaryInfo) Marshal() []byte {
	b := make([]byte, 0, len(info.Data)+len(info.Signature)+16)
	b = protowire.AppendTag(b, fieldSignature, protowire.BytesType)
	b = protowire.AppendString(b, info.Signature)
	b = protowire.AppendTag(b, fieldData, protowire.BytesType)
	b = protowire.AppendBytes(b, info.Data)
	return b
}

// UnmarshalBinaryInfo parses a framed payload, without verifying it.
func UnmarshalBinaryInfo(b []byte) (BinaryInfo, error) {
	var info BinaryInfo
	err := forEachField(b, "binary_info", func(f field) error {
		switch f.num {
		case fieldSignature:
			return f.string("signature", &info.Signature)
		case fieldData:
			if err := f.want("data", protowire.BytesType); err != nil {
				return err
			}
			info.Data = f.bytes
		}
		return nil
	})
	return info, err
}

// Wrap frames data with its signature and serializes it.
func Wrap(data []byte) []byte {
	return NewBinaryInfo(data).Marshal()
}

// Unwrap parses a payload framed by Wrap and returns its data once the signature is verified.
// The returned data aliases b.
func Unwrap(b []byte) ([]byte, error) {
	info, err := UnmarshalBinaryInfo(b)
	if err != nil {
		return nil, err
	}
	if err := info.Verify(); err != nil {
		return nil, err
	}
	return info.Data, nil
}

// EncodeBinary serializes opts (see Encode) framed in a BinaryInfo.
func EncodeBinary(opts *qnn.CompilationOptions) ([]byte, error) {
	data, err := Encode(opts)
	if err != nil {
		return nil, err
	}
	return Wrap(data), nil
}

// DecodeBinary verifies and decodes options serialized by EncodeBinary.
func DecodeBinary(b []byte) (*qnn.CompilationOptions, error) {
	data, err := Unwrap(b)
	if err != nil {
		return nil, errors.WithMessage(err, "compilation options binary")
	}
	return Decode(data)
}
