// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package qnn

import (
	"testing"

	"github.com/gomlx/delegation/pkg/hardware"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func htpPackage(customOp string) OpPackageInfo {
	return OpPackageInfo{
		OpPackageName:     "ExampleOpPackage",
		OpPackagePath:     "/data/local/tmp/libQnnExampleOpPackage.so",
		InterfaceProvider: "ExampleOpPackageInterfaceProvider",
		Target:            OpPackageTargetHTP,
		CustomOpName:      customOp,
		QNNOpTypeName:     "ExampleCustomOp",
		Platform:          OpPackagePlatformAarch64Android,
	}
}

func TestBuildDefaults(t *testing.T) {
	opts, err := Build(hardware.ChipsetSM8550).Done()
	require.NoError(t, err)
	assert.Equal(t, hardware.MustResolve(hardware.ChipsetSM8550), opts.SoC)
	assert.Equal(t, BackendHTP, opts.Kind())
	htp := HTP(opts.Backend)
	require.NotNil(t, htp)
	assert.Equal(t, *DefaultHTPOptions(), *htp)
	assert.True(t, htp.UseConvHMX)
	assert.True(t, htp.UseFoldReLU)
	assert.Equal(t, []string{DefaultGraphName}, opts.GraphNames)
	assert.Equal(t, DefaultSaverOutputDir, opts.SaverOutputDir)
	assert.False(t, opts.Saver)
	assert.Equal(t, LogOff, opts.LogLevel)
	assert.Equal(t, ProfileOff, opts.ProfileLevel)
	assert.Zero(t, opts.OpPackages.Len())
}

func TestBuildUnknownChipset(t *testing.T) {
	_, err := Build(hardware.Chipset(0xFFFF)).GPU().Done()
	require.ErrorIs(t, err, hardware.ErrUnknownChipset)
	assert.ErrorContains(t, err, "0xFFFF")
}

func TestBuildHTP(t *testing.T) {
	htp := DefaultHTPOptions()
	htp.Precision = PrecisionFP16
	htp.PerformanceMode = PerformanceModeBurst
	opts, err := Build(hardware.ChipsetSM8650).
		HTP(htp).
		GraphNames("prefill", "decode").
		LogLevel(LogWarn).
		ProfileLevel(ProfileDetailed).
		Saver("").
		SharedBuffer(true).
		OpPackage(htpPackage("my_op")).
		Done()
	require.NoError(t, err)

	// The builder copies the options given.
	htp.Precision = PrecisionQuantized
	assert.Equal(t, PrecisionFP16, HTP(opts.Backend).Precision)
	assert.Equal(t, PerformanceModeBurst, HTP(opts.Backend).PerformanceMode)
	assert.Equal(t, []string{"prefill", "decode"}, opts.GraphNames)
	assert.True(t, opts.Saver)
	assert.Equal(t, DefaultSaverOutputDir, opts.SaverOutputDir)
	assert.Equal(t, ProfileDetailed, opts.ProfileLevel)
	assert.Equal(t, 1, opts.OpPackages.Len())
}

func TestDuplicateOpPackage(t *testing.T) {
	_, err := Build(hardware.ChipsetSM8550).
		OpPackage(htpPackage("my_op")).
		OpPackage(htpPackage("my_op")).
		Done()
	require.ErrorIs(t, err, ErrDuplicateOpPackage)
	assert.ErrorContains(t, err, `custom_op_name="my_op"`)

	// Same op name for a different target is fine.
	cpu := htpPackage("my_op")
	cpu.Target = OpPackageTargetCPU
	cpu.Platform = OpPackagePlatformX86_64
	opts, err := Build(hardware.ChipsetSM8550).
		OpPackage(htpPackage("my_op")).
		OpPackage(cpu).
		OpPackage(htpPackage("other_op")).
		Done()
	require.NoError(t, err)
	infos := opts.OpPackages.Infos()
	require.Len(t, infos, 3)
	assert.Equal(t, OpPackageTargetHTP, infos[0].Target)
	assert.Equal(t, OpPackageTargetCPU, infos[1].Target)
	assert.Equal(t, "other_op", infos[2].CustomOpName)

	// A failed Add leaves the list unchanged.
	var packages OpPackages
	require.NoError(t, packages.Add(htpPackage("a")))
	require.ErrorIs(t, packages.Add(htpPackage("a")), ErrDuplicateOpPackage)
	assert.Equal(t, 1, packages.Len())
}

func TestValidate(t *testing.T) {
	fp16 := DefaultHTPOptions()
	fp16.Precision = PrecisionFP16

	sharing := DefaultHTPOptions()
	sharing.UseWeightSharing = true

	multi := DefaultHTPOptions()
	multi.UseMultiContexts = true
	multi.UseWeightSharing = true

	badMode := DefaultHTPOptions()
	badMode.PerformanceMode = PerformanceMode(42)

	negBuf := DefaultHTPOptions()
	negBuf.MaxSFBufSize = -1

	incomplete := htpPackage("x")
	incomplete.InterfaceProvider = ""

	testCases := []struct {
		name    string
		builder *Builder
		field   string
	}{
		{"fp16-on-v68", Build(hardware.ChipsetSA8295).HTP(fp16), "precision"},
		{"weight-sharing-without-multi-contexts", Build(hardware.ChipsetSM8650).HTP(sharing), "use_multi_contexts"},
		{"multi-contexts-on-v69", Build(hardware.ChipsetSM8450).HTP(multi), "V73"},
		{"bad-performance-mode", Build(hardware.ChipsetSM8550).HTP(badMode), "performance_mode=42"},
		{"negative-sf-buffer", Build(hardware.ChipsetSM8550).HTP(negBuf), "max_sf_buf_size"},
		{"no-graphs", Build(hardware.ChipsetSM8550).GraphNames(), "graph_name"},
		{"empty-graph-name", Build(hardware.ChipsetSM8550).GraphNames("forward", ""), "graph_name[1]"},
		{"repeated-graph-name", Build(hardware.ChipsetSM8550).GraphNames("a", "a"), "graph_name[1]"},
		{"bad-log-level", Build(hardware.ChipsetSM8550).LogLevel(LogLevel(9)), "log_level"},
		{"bad-profile-level", Build(hardware.ChipsetSM8550).ProfileLevel(ProfileLevel(-1)), "profile_level"},
		{"online-prepare-from-context-binary", Build(hardware.ChipsetSM8550).OnlinePrepare(true).FromContextBinary(true), "online_prepare"},
		{"htp-op-package-on-gpu", Build(hardware.ChipsetSM8550).GPU().OpPackage(htpPackage("x")), "target=htp"},
		{"incomplete-op-package", Build(hardware.ChipsetSM8550).OpPackage(incomplete), "interface_provider"},
		{"nil-backend", Build(hardware.ChipsetSM8550).Backend(nil), "backend_options"},
		{"unresolved-soc", BuildFor(hardware.Info{Chipset: hardware.ChipsetSM8550}), "soc_info"},
		{"arch-contradicts-table",
			BuildFor(hardware.Info{Chipset: hardware.ChipsetSM8550, Arch: hardware.ArchV79, VTCMSizeMB: 8}),
			"soc_info.htp_arch=V79"},
		{"vtcm-contradicts-table",
			BuildFor(hardware.Info{Chipset: hardware.ChipsetSM8550, Arch: hardware.ArchV73, VTCMSizeMB: 64}),
			"soc_info.vtcm_size_in_mb=64"},
		{"chipset-not-in-table",
			BuildFor(hardware.Info{Chipset: hardware.ChipsetUnknownSM, Arch: hardware.ArchV73, VTCMSizeMB: 8}),
			"soc_info.soc_model"},
		{"typed-nil-gpu", Build(hardware.ChipsetSM8550).Backend((*GPUOptions)(nil)), "backend_options"},
		{"typed-nil-dsp", Build(hardware.ChipsetSM8550).Backend((*DSPOptions)(nil)), "backend_options"},
		{"typed-nil-htp", Build(hardware.ChipsetSM8550).Backend((*HTPOptions)(nil)), "backend_options"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.builder.Done()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidOptionsCombination), "got %v", err)
			assert.ErrorContains(t, err, tc.field)
		})
	}

	// Same options that are valid on newer hardware.
	_, err := Build(hardware.ChipsetSM8450).HTP(fp16).Done()
	require.NoError(t, err)
	_, err = Build(hardware.ChipsetSM8550).HTP(multi).Done()
	require.NoError(t, err)
}

func TestValidateTypedNilBackend(t *testing.T) {
	for _, backend := range []BackendOptions{(*GPUOptions)(nil), (*DSPOptions)(nil), (*HTPOptions)(nil)} {
		opts := &CompilationOptions{
			SoC:        hardware.MustResolve(hardware.ChipsetSM8550),
			Backend:    backend,
			GraphNames: []string{DefaultGraphName},
		}
		var err error
		require.NotPanics(t, func() { err = opts.Validate() }, "backend %T", backend)
		require.ErrorIs(t, err, ErrInvalidOptionsCombination)
		assert.ErrorContains(t, err, "backend_options")
		require.NotPanics(t, func() { _ = opts.Clone() }, "backend %T", backend)
	}
}

func TestSaverEmptyDir(t *testing.T) {
	opts, err := Build(hardware.ChipsetSM8550).Done()
	require.NoError(t, err)
	opts = opts.Clone()
	opts.Saver = true
	opts.SaverOutputDir = ""
	require.ErrorIs(t, opts.Validate(), ErrInvalidOptionsCombination)
}

func TestNonHTPBackends(t *testing.T) {
	for _, kind := range []BackendKind{BackendGPU, BackendDSP} {
		backend, err := NewBackendOptions(kind)
		require.NoError(t, err)
		assert.Equal(t, kind, backend.Kind())
		assert.Nil(t, HTP(backend))

		opts, err := Build(hardware.ChipsetSM8550).Backend(backend).Done()
		require.NoError(t, err)
		assert.Equal(t, kind, opts.Kind())
	}
	_, err := NewBackendOptions(BackendUndefined)
	require.ErrorIs(t, err, ErrInvalidOptionsCombination)
	assert.Equal(t, BackendUndefined, (&CompilationOptions{}).Kind())
}

func TestClone(t *testing.T) {
	opts, err := Build(hardware.ChipsetSM8550).GraphNames("a").OpPackage(htpPackage("x")).Done()
	require.NoError(t, err)
	c := opts.Clone()
	HTP(c.Backend).Precision = PrecisionFP16
	c.GraphNames[0] = "b"
	require.NoError(t, c.OpPackages.Add(htpPackage("y")))

	assert.Equal(t, PrecisionQuantized, HTP(opts.Backend).Precision)
	assert.Equal(t, "a", opts.GraphNames[0])
	assert.Equal(t, 1, opts.OpPackages.Len())
}

func TestEnumNames(t *testing.T) {
	mode, err := PerformanceModeString("sustained_high_performance")
	require.NoError(t, err)
	assert.Equal(t, PerformanceModeSustainedHighPerformance, mode)
	assert.Equal(t, "fp16", PrecisionFP16.String())
	assert.Equal(t, "htp", BackendHTP.String())
	assert.Equal(t, "aarch64_android", OpPackagePlatformAarch64Android.String())
	assert.Equal(t, "x86_64", OpPackagePlatformX86_64.String())
	assert.Equal(t, "optrace", ProfileOptrace.String())
	_, err = PrecisionString("int4")
	require.Error(t, err)
}
