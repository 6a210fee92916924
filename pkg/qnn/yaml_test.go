// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package qnn

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gomlx/delegation/pkg/hardware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseYAML(t *testing.T) {
	opts, err := ParseYAML([]byte(`
soc_info: {soc_model: SM8650}
backend_options:
  backend_type: htp
  htp_options:
    precision: fp16
    performance_mode: burst
    use_multi_contexts: true
graph_name: [prefill, decode]
log_level: warn
op_package_options:
  op_package_infos:
    - op_package_name: ExampleOpPackage
      op_package_path: /data/local/tmp/libQnnExampleOpPackage.so
      interface_provider: ExampleOpPackageInterfaceProvider
      target: htp
      custom_op_name: my_op
      platform: aarch64_android
`))
	require.NoError(t, err)
	assert.Equal(t, hardware.ArchV75, opts.SoC.Arch)
	assert.Equal(t, 8, opts.SoC.VTCMSizeMB)
	htp := HTP(opts.Backend)
	require.NotNil(t, htp)
	assert.Equal(t, PrecisionFP16, htp.Precision)
	assert.Equal(t, PerformanceModeBurst, htp.PerformanceMode)
	assert.True(t, htp.UseMultiContexts)
	// Fields not given keep their defaults.
	assert.True(t, htp.UseConvHMX)
	assert.True(t, htp.UseFoldReLU)
	assert.Equal(t, []string{"prefill", "decode"}, opts.GraphNames)
	assert.Equal(t, LogWarn, opts.LogLevel)
	assert.Equal(t, DefaultSaverOutputDir, opts.SaverOutputDir)
	require.Equal(t, 1, opts.OpPackages.Len())
	assert.Equal(t, "my_op", opts.OpPackages.Infos()[0].CustomOpName)
}

func TestParseYAMLDefaults(t *testing.T) {
	opts, err := ParseYAML([]byte("soc_info: {soc_model: sm8550}\nbackend_options: {backend_type: gpu}\n"))
	require.NoError(t, err)
	assert.Equal(t, BackendGPU, opts.Kind())
	assert.Equal(t, []string{DefaultGraphName}, opts.GraphNames)
	assert.Zero(t, opts.OpPackages.Len())
}

func TestYAMLRoundTrip(t *testing.T) {
	cpu := htpPackage("my_op")
	cpu.Target = OpPackageTargetCPU
	cpu.Platform = OpPackagePlatformX86_64
	htp := DefaultHTPOptions()
	htp.Precision = PrecisionFP16
	htp.MaxSFBufSize = 1 << 20
	htp.SkelLibraryDir = "/vendor/lib/rfsa/adsp"
	opts, err := Build(hardware.ChipsetSM8750).
		HTP(htp).
		GraphNames("forward", "prefill").
		ProfileLevel(ProfileOptrace).
		Saver("/tmp/saver").
		OpPackage(htpPackage("my_op")).
		OpPackage(cpu).
		Done()
	require.NoError(t, err)

	data, err := yaml.Marshal(opts)
	require.NoError(t, err)
	assert.Contains(t, string(data), "soc_model: SM8750")
	assert.Contains(t, string(data), "precision: fp16")

	got, err := ParseYAML(data)
	require.NoError(t, err, "yaml:\n%s", data)
	assert.Equal(t, opts, got)
}

func TestYAMLHTPOptionsSection(t *testing.T) {
	opts, err := ParseYAML([]byte(`
soc_info: {soc_model: SM8550}
backend_options:
  backend_type: htp
  htp_options: {max_sf_buf_size: 4096, use_dlbc: true, use_conv_hmx: false, pd_session: signed}
`))
	require.NoError(t, err)
	htp := HTP(opts.Backend)
	require.NotNil(t, htp)
	assert.Equal(t, 4096, htp.MaxSFBufSize)
	assert.True(t, htp.UseDLBC)
	assert.False(t, htp.UseConvHMX)
	assert.Equal(t, PDSessionSigned, htp.PDSession)
	assert.True(t, htp.UseFoldReLU)

	data, err := yaml.Marshal(opts)
	require.NoError(t, err)
	assert.Contains(t, string(data), "htp_options:")
	assert.Contains(t, string(data), "max_sf_buf_size: 4096")

	gpu, err := Build(hardware.ChipsetSM8550).GPU().Done()
	require.NoError(t, err)
	data, err = yaml.Marshal(gpu)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "htp_options")
	assert.Contains(t, string(data), "backend_type: gpu")
}

func TestParseYAMLErrors(t *testing.T) {
	testCases := []struct {
		name, yaml string
		target     error
		contains   string
	}{
		{"empty", "", ErrInvalidOptionsCombination, "soc_info"},
		{"unknown-soc", "soc_info: {soc_model: UnknownSM}\nbackend_options: {backend_type: htp}", hardware.ErrUnknownChipset, "0x0"},
		{"unknown-soc-name", "soc_info: {soc_model: SM9999}\nbackend_options: {backend_type: htp}", nil, "SM9999"},
		{"arch-mismatch", "soc_info: {soc_model: SM8550, htp_arch: V68}\nbackend_options: {backend_type: htp}", ErrInvalidOptionsCombination, "htp_arch=V68"},
		{"vtcm-mismatch", "soc_info: {soc_model: SM8550, vtcm_size_in_mb: 4}\nbackend_options: {backend_type: htp}", ErrInvalidOptionsCombination, "vtcm_size_in_mb=4"},
		{"no-backend", "soc_info: {soc_model: SM8550}", ErrInvalidOptionsCombination, "backend_type"},
		{"htp-options-on-gpu", "soc_info: {soc_model: SM8550}\nbackend_options: {backend_type: gpu, htp_options: {precision: fp16}}",
			ErrInvalidOptionsCombination, "htp_options"},
		{"fp16-on-v68", "soc_info: {soc_model: SA8295}\nbackend_options: {backend_type: htp, htp_options: {precision: fp16}}",
			ErrInvalidOptionsCombination, "precision"},
		{"bad-precision", "soc_info: {soc_model: SM8550}\nbackend_options: {backend_type: htp, htp_options: {precision: int2}}", nil, "int2"},
		{"duplicate-op-package", `
soc_info: {soc_model: SM8550}
backend_options: {backend_type: htp}
op_package_options:
  op_package_infos:
    - {op_package_name: A, op_package_path: a.so, interface_provider: P, target: htp, custom_op_name: op, platform: aarch64_android}
    - {op_package_name: B, op_package_path: b.so, interface_provider: P, target: htp, custom_op_name: op, platform: aarch64_android}
`, ErrDuplicateOpPackage, `custom_op_name="op"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.yaml))
			require.Error(t, err)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
			assert.ErrorContains(t, err, tc.contains)
		})
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("soc_info: {soc_model: SM8550}\nbackend_options: {backend_type: dsp}\n"), 0o644))
	opts, err := LoadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, BackendDSP, opts.Kind())

	_, err = LoadYAML(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "missing.yaml")
}
