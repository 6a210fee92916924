// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package qnn

import (
	"github.com/gomlx/delegation/pkg/hardware"
)

// BackendOptions holds the options specific to one backend kind. It is implemented only by
// *GPUOptions, *HTPOptions and *DSPOptions: options of one kind can't be attached to another.
type BackendOptions interface {
	// Kind of backend these options configure.
	Kind() BackendKind

	clone() BackendOptions
	validate(soc hardware.Info) error
}

// GPUOptions configures the GPU backend. It currently has no tunable fields.
type GPUOptions struct{}

// Kind implements BackendOptions.
func (*GPUOptions) Kind() BackendKind { return BackendGPU }

func (o *GPUOptions) clone() BackendOptions { c := *o; return &c }

func (*GPUOptions) validate(hardware.Info) error { return nil }

// DSPOptions configures the fixed-function DSP backend. It currently has no tunable fields.
type DSPOptions struct{}

// Kind implements BackendOptions.
func (*DSPOptions) Kind() BackendKind { return BackendDSP }

func (o *DSPOptions) clone() BackendOptions { c := *o; return &c }

func (*DSPOptions) validate(hardware.Info) error { return nil }

// HTPOptions configures the HTP (Hexagon Tensor Processor) backend.
//
// Start from DefaultHTPOptions: the zero value disables HMX convolutions and ReLU folding.
type HTPOptions struct {
	// MaxSFBufSize is the size in bytes of the spill-fill buffer, 0 lets the runtime pick.
	MaxSFBufSize int `yaml:"max_sf_buf_size"`

	PerformanceMode PerformanceMode `yaml:"performance_mode"`

	// Precision of the whole graph. It can't be changed per operator.
	Precision Precision `yaml:"precision"`

	PDSession PDSession `yaml:"pd_session"`

	// SkelLibraryDir is the device directory holding the HTP skel libraries, empty for the default search path.
	SkelLibraryDir string `yaml:"skel_library_dir"`

	// UseConvHMX enables the HMX (matrix) unit for convolutions.
	UseConvHMX bool `yaml:"use_conv_hmx"`

	// UseDLBC enables deep learning bandwidth compression of weights.
	UseDLBC bool `yaml:"use_dlbc"`

	// UseFoldReLU allows folding ReLU into the preceding convolution.
	UseFoldReLU bool `yaml:"use_fold_relu"`

	// UseMultiContexts compiles each graph into its own context.
	UseMultiContexts bool `yaml:"use_multi_contexts"`

	// UseWeightSharing shares the weights buffer across contexts. Requires UseMultiContexts.
	UseWeightSharing bool `yaml:"use_weight_sharing"`
}

// DefaultHTPOptions returns the default HTP options: quantized precision, default performance mode,
// unsigned PD, HMX convolutions and ReLU folding enabled.
func DefaultHTPOptions() *HTPOptions {
	return &HTPOptions{
		PerformanceMode: PerformanceModeDefault,
		Precision:       PrecisionQuantized,
		PDSession:       PDSessionUnsigned,
		UseConvHMX:      true,
		UseFoldReLU:     true,
	}
}

// Kind implements BackendOptions.
func (*HTPOptions) Kind() BackendKind { return BackendHTP }

func (o *HTPOptions) clone() BackendOptions { c := *o; return &c }

func (o *HTPOptions) validate(soc hardware.Info) error {
	if o.MaxSFBufSize < 0 {
		return invalidf("htp_options.max_sf_buf_size=%d must be >= 0", o.MaxSFBufSize)
	}
	if !o.PerformanceMode.IsAPerformanceMode() {
		return invalidf("htp_options.performance_mode=%d not one of %v", int(o.PerformanceMode), PerformanceModeStrings())
	}
	if !o.Precision.IsAPrecision() {
		return invalidf("htp_options.precision=%d not one of %v", int(o.Precision), PrecisionStrings())
	}
	if !o.PDSession.IsAPDSession() {
		return invalidf("htp_options.pd_session=%d not one of %v", int(o.PDSession), PDSessionStrings())
	}
	if o.Precision == PrecisionFP16 && !soc.Arch.SupportsFP16() {
		return invalidf("htp_options.precision=%s not supported by chipset %s (htp_arch %s), requires V69 or newer",
			o.Precision, soc.Chipset, soc.Arch)
	}
	if o.UseWeightSharing && !o.UseMultiContexts {
		return invalidf("htp_options.use_weight_sharing requires htp_options.use_multi_contexts")
	}
	if (o.UseWeightSharing || o.UseMultiContexts) && !soc.Arch.SupportsWeightSharing() {
		return invalidf("htp_options.use_multi_contexts/use_weight_sharing not supported by chipset %s (htp_arch %s), "+
			"requires V73 or newer", soc.Chipset, soc.Arch)
	}
	return nil
}

// NewBackendOptions returns the default options for the given kind. HTP gets DefaultHTPOptions.
func NewBackendOptions(kind BackendKind) (BackendOptions, error) {
	switch kind {
	case BackendGPU:
		return &GPUOptions{}, nil
	case BackendDSP:
		return &DSPOptions{}, nil
	case BackendHTP:
		return DefaultHTPOptions(), nil
	default:
		return nil, invalidf("backend_type=%s is not one of gpu, htp, dsp", kind)
	}
}

// isNilBackend reports whether opts is nil, or a nil pointer to one of the backend variants.
func isNilBackend(opts BackendOptions) bool {
	switch v := opts.(type) {
	case nil:
		return true
	case *GPUOptions:
		return v == nil
	case *DSPOptions:
		return v == nil
	case *HTPOptions:
		return v == nil
	}
	return false
}

// HTP returns the HTP options if opts configures the HTP backend, or nil otherwise.
func HTP(opts BackendOptions) *HTPOptions {
	htp, _ := opts.(*HTPOptions)
	return htp
}
