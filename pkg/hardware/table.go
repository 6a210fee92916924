// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package hardware

import (
	"maps"
	"slices"
)

// socTable is the capability table. Scratch budgets are hardware facts: 8MB for mobile/automotive
// parts, 2MB for the XR/"SSG" parts.
var socTable = map[Chipset]Info{
	ChipsetSA8295:   {Chipset: ChipsetSA8295, Arch: ArchV68, VTCMSizeMB: 8},
	ChipsetSM8450:   {Chipset: ChipsetSM8450, Arch: ArchV69, VTCMSizeMB: 8},
	ChipsetSM8475:   {Chipset: ChipsetSM8475, Arch: ArchV69, VTCMSizeMB: 8},
	ChipsetSM8550:   {Chipset: ChipsetSM8550, Arch: ArchV73, VTCMSizeMB: 8},
	ChipsetSM8650:   {Chipset: ChipsetSM8650, Arch: ArchV75, VTCMSizeMB: 8},
	ChipsetSM8750:   {Chipset: ChipsetSM8750, Arch: ArchV79, VTCMSizeMB: 8},
	ChipsetSSG2115P: {Chipset: ChipsetSSG2115P, Arch: ArchV73, VTCMSizeMB: 2},
	ChipsetSSG2125P: {Chipset: ChipsetSSG2125P, Arch: ArchV73, VTCMSizeMB: 2},
	ChipsetSXR1230P: {Chipset: ChipsetSXR1230P, Arch: ArchV73, VTCMSizeMB: 2},
	ChipsetSXR2230P: {Chipset: ChipsetSXR2230P, Arch: ArchV69, VTCMSizeMB: 8},
	ChipsetSXR2330P: {Chipset: ChipsetSXR2330P, Arch: ArchV79, VTCMSizeMB: 8},
}

// Chipsets returns the chipsets in the capability table, in ascending numeric order.
func Chipsets() []Chipset {
	return slices.Sorted(maps.Keys(socTable))
}

// Table returns the capability table ordered by chipset code. The returned slice is a copy.
func Table() []Info {
	chipsets := Chipsets()
	infos := make([]Info, len(chipsets))
	for ii, chipset := range chipsets {
		infos[ii] = socTable[chipset]
	}
	return infos
}
