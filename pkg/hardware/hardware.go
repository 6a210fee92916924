// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package hardware maps accelerator chipset identifiers to the description of their HTP
// (Hexagon Tensor Processor) compute unit: architecture generation and VTCM scratch memory budget.
//
// The table is a hardware fact, fixed at compile time: there is no registration and no default.
// Resolving an unknown chipset is an error, since compiling for the wrong architecture silently
// produces bad code.
package hardware

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrUnknownChipset is returned (wrapped) by Resolve when the chipset is not in the capability table.
var ErrUnknownChipset = errors.New("unknown chipset")

// Arch is the HTP architecture generation. Values are the generation numbers, so they are ordered.
type Arch int

//go:generate go tool enumer -type=Arch -trimprefix=Arch -text -yaml -output=gen_arch_enumer.go hardware.go

const (
	// ArchNone means "unresolved": it is never a valid compilation target.
	ArchNone Arch = 0
	ArchV68  Arch = 68
	ArchV69  Arch = 69
	ArchV73  Arch = 73
	ArchV75  Arch = 75
	ArchV79  Arch = 79
)

// IsResolved returns whether arch is a real architecture, as opposed to the ArchNone sentinel.
func (arch Arch) IsResolved() bool {
	return arch != ArchNone && arch.IsAArch()
}

// SupportsFP16 returns whether the HTP generation executes half-precision float graphs.
func (arch Arch) SupportsFP16() bool {
	return arch.IsResolved() && arch >= ArchV69
}

// SupportsWeightSharing returns whether several graphs compiled into multiple contexts can share
// the same weights buffer.
func (arch Arch) SupportsWeightSharing() bool {
	return arch.IsResolved() && arch >= ArchV73
}

// Chipset identifies a physical SoC variant. Values are the stable numeric SoC model codes used by
// the native runtime.
type Chipset int

//go:generate go tool enumer -type=Chipset -trimprefix=Chipset -text -yaml -output=gen_chipset_enumer.go hardware.go

const (
	// ChipsetUnknownSM is the sentinel for "no chipset selected". It is not in the capability table.
	ChipsetUnknownSM Chipset = 0
	ChipsetSM8450    Chipset = 36
	ChipsetSA8295    Chipset = 39
	ChipsetSM8475    Chipset = 42
	ChipsetSM8550    Chipset = 43
	ChipsetSXR1230P  Chipset = 45
	ChipsetSSG2115P  Chipset = 46
	ChipsetSXR2230P  Chipset = 53
	ChipsetSM8650    Chipset = 57
	ChipsetSSG2125P  Chipset = 58
	ChipsetSM8750    Chipset = 69
	ChipsetSXR2330P  Chipset = 75
)

// Info describes the HTP unit of one chipset. It is a plain value: copies are independent.
type Info struct {
	Chipset Chipset `yaml:"soc_model"`
	Arch    Arch    `yaml:"htp_arch"`

	// VTCMSizeMB is the VTCM (vector tightly coupled memory) scratch budget in megabytes.
	VTCMSizeMB int `yaml:"vtcm_size_in_mb"`
}

// VTCMBytes returns the scratch memory budget in bytes.
func (info Info) VTCMBytes() uint64 {
	return uint64(info.VTCMSizeMB) << 20
}

// Validate checks that info describes real hardware: a resolved architecture and a non-negative
// scratch budget. Info values from Resolve always validate.
func (info Info) Validate() error {
	if !info.Arch.IsResolved() {
		return errors.Errorf("htp_arch %s for chipset %s is not a resolved HTP architecture (expected one of %v)",
			info.Arch, info.Chipset, resolvedArchs())
	}
	if info.VTCMSizeMB < 0 {
		return errors.Errorf("vtcm_size_in_mb=%d for chipset %s must be >= 0", info.VTCMSizeMB, info.Chipset)
	}
	return nil
}

func resolvedArchs() []Arch {
	values := ArchValues()
	archs := make([]Arch, 0, len(values))
	for _, arch := range values {
		if arch != ArchNone {
			archs = append(archs, arch)
		}
	}
	return archs
}

// Resolve returns the Info for chipset, or an error wrapping ErrUnknownChipset if the chipset is not
// in the capability table. It never returns a default description.
func Resolve(chipset Chipset) (Info, error) {
	info, found := socTable[chipset]
	if !found {
		return Info{}, errors.Wrapf(ErrUnknownChipset, "chipset 0x%X (%s) not in capability table", int(chipset), chipset)
	}
	if klog.V(3).Enabled() {
		klog.Infof("resolved chipset %s: htp_arch=%s, vtcm=%dMB", chipset, info.Arch, info.VTCMSizeMB)
	}
	return info, nil
}

// MustResolve is like Resolve, but panics (with a stack trace) if the chipset is unknown.
// Use it only for chipsets known at compile time.
func MustResolve(chipset Chipset) Info {
	info, err := Resolve(chipset)
	if err != nil {
		exceptions.Panicf("hardware.MustResolve: %+v", err)
	}
	return info
}

// ResolveName parses a chipset name (e.g. "SM8550", case-insensitive) and resolves it.
func ResolveName(name string) (Info, error) {
	chipset, err := ChipsetString(name)
	if err != nil {
		return Info{}, errors.Wrapf(ErrUnknownChipset, "chipset %q not in capability table (known: %v)", name, Chipsets())
	}
	return Resolve(chipset)
}
