// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package hardware

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResolveAllChipsets(t *testing.T) {
	chipsets := Chipsets()
	require.Len(t, chipsets, 11)
	for _, chipset := range chipsets {
		info, err := Resolve(chipset)
		require.NoError(t, err, "chipset %s", chipset)
		assert.Equal(t, chipset, info.Chipset)
		assert.NotEqual(t, ArchNone, info.Arch, "chipset %s", chipset)
		assert.Positive(t, info.VTCMSizeMB, "chipset %s", chipset)
		assert.Contains(t, []int{2, 8}, info.VTCMSizeMB)
		require.NoError(t, info.Validate())
	}
	assert.NotContains(t, chipsets, ChipsetUnknownSM)
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		chipset Chipset
		arch    Arch
		vtcmMB  int
	}{
		{ChipsetSM8550, ArchV73, 8},
		{ChipsetSA8295, ArchV68, 8},
		{ChipsetSM8450, ArchV69, 8},
		{ChipsetSM8650, ArchV75, 8},
		{ChipsetSM8750, ArchV79, 8},
		{ChipsetSSG2115P, ArchV73, 2},
		{ChipsetSXR1230P, ArchV73, 2},
		{ChipsetSXR2230P, ArchV69, 8},
	}
	for _, tc := range testCases {
		t.Run(tc.chipset.String(), func(t *testing.T) {
			info, err := Resolve(tc.chipset)
			require.NoError(t, err)
			assert.Equal(t, Info{Chipset: tc.chipset, Arch: tc.arch, VTCMSizeMB: tc.vtcmMB}, info)
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, chipset := range []Chipset{ChipsetUnknownSM, Chipset(0xFFFF), Chipset(-1)} {
		info, err := Resolve(chipset)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownChipset))
		assert.Equal(t, Info{}, info, "no default description may be returned")
	}
	_, err := Resolve(Chipset(0xFFFF))
	assert.ErrorContains(t, err, "chipset 0xFFFF")
	assert.ErrorContains(t, err, "not in capability table")

	exception := exceptions.Try(func() { _ = MustResolve(Chipset(1234)) })
	require.NotNil(t, exception)
	assert.Equal(t, ArchV75, MustResolve(ChipsetSM8650).Arch)
}

func TestResolveName(t *testing.T) {
	info, err := ResolveName("sm8550")
	require.NoError(t, err)
	assert.Equal(t, ArchV73, info.Arch)

	_, err = ResolveName("SM9999")
	require.ErrorIs(t, err, ErrUnknownChipset)

	// The sentinel parses, but is not in the table.
	_, err = ResolveName("UnknownSM")
	require.ErrorIs(t, err, ErrUnknownChipset)
}

func TestArchFeatures(t *testing.T) {
	assert.False(t, ArchNone.IsResolved())
	assert.False(t, Arch(70).IsResolved())
	assert.False(t, ArchV68.SupportsFP16())
	assert.True(t, ArchV69.SupportsFP16())
	assert.False(t, ArchV69.SupportsWeightSharing())
	assert.True(t, ArchV73.SupportsWeightSharing())
	assert.True(t, ArchV79.SupportsWeightSharing())
	assert.True(t, ArchV68 < ArchV79)
}

func TestInfo(t *testing.T) {
	info := MustResolve(ChipsetSSG2125P)
	assert.Equal(t, uint64(2*1024*1024), info.VTCMBytes())

	require.Error(t, Info{Chipset: ChipsetSM8550}.Validate())
	require.Error(t, Info{Chipset: ChipsetSM8550, Arch: ArchV73, VTCMSizeMB: -1}.Validate())

	// Table returns a copy.
	table := Table()
	table[0].VTCMSizeMB = 1000
	assert.NotEqual(t, 1000, Table()[0].VTCMSizeMB)
	assert.Equal(t, ChipsetSM8450, Table()[0].Chipset)
}

func TestInfoYAML(t *testing.T) {
	data, err := yaml.Marshal(MustResolve(ChipsetSM8550))
	require.NoError(t, err)
	assert.Contains(t, string(data), "soc_model: SM8550")
	assert.Contains(t, string(data), "htp_arch: V73")

	var info Info
	require.NoError(t, yaml.Unmarshal(data, &info))
	assert.Equal(t, MustResolve(ChipsetSM8550), info)

	require.Error(t, yaml.Unmarshal([]byte("soc_model: SM0000\n"), &info))
}
