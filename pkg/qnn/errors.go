// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package qnn

import "github.com/pkg/errors"

var (
	// ErrDuplicateOpPackage is returned (wrapped) when two op packages register the same
	// (custom op name, target) pair in one CompilationOptions.
	ErrDuplicateOpPackage = errors.New("duplicate op package")

	// ErrInvalidOptionsCombination is returned (wrapped) when option values are out of their domain or
	// conflict with each other or with the selected hardware.
	ErrInvalidOptionsCombination = errors.New("invalid options combination")
)

// invalidf returns an error wrapping ErrInvalidOptionsCombination with the formatted message.
func invalidf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidOptionsCombination, format, args...)
}
