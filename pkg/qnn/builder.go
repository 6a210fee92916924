// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package qnn

import (
	"github.com/gomlx/delegation/pkg/hardware"
)

// Builder configures a CompilationOptions. Create it with Build or BuildFor, chain the configuration
// methods and call Done.
//
// Errors are deferred: the first one is returned by Done.
//
// Example:
//
//	opts, err := qnn.Build(hardware.ChipsetSM8550).
//		HTP(&qnn.HTPOptions{Precision: qnn.PrecisionFP16, PerformanceMode: qnn.PerformanceModeBurst}).
//		GraphNames("forward", "prefill").
//		Done()
type Builder struct {
	opts *CompilationOptions
	err  error
}

// Build starts the configuration for the given chipset, resolved through the capability table.
// An unknown chipset makes Done return an error wrapping hardware.ErrUnknownChipset.
//
// The backend defaults to HTP with DefaultHTPOptions.
func Build(chipset hardware.Chipset) *Builder {
	soc, err := hardware.Resolve(chipset)
	b := BuildFor(soc)
	b.setError(err)
	return b
}

// BuildFor starts the configuration for an already resolved hardware description.
func BuildFor(soc hardware.Info) *Builder {
	return &Builder{
		opts: &CompilationOptions{
			SoC:            soc,
			Backend:        DefaultHTPOptions(),
			GraphNames:     []string{DefaultGraphName},
			SaverOutputDir: DefaultSaverOutputDir,
		},
	}
}

func (b *Builder) setError(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Backend sets the backend options. The value is copied: later changes to opts don't affect the Builder.
func (b *Builder) Backend(opts BackendOptions) *Builder {
	if isNilBackend(opts) {
		b.setError(invalidf("backend_options must not be nil (got %T)", opts))
		return b
	}
	b.opts.Backend = opts.clone()
	return b
}

// HTP selects the HTP backend with the given options. If opts is nil, DefaultHTPOptions are used.
func (b *Builder) HTP(opts *HTPOptions) *Builder {
	if opts == nil {
		opts = DefaultHTPOptions()
	}
	return b.Backend(opts)
}

// GPU selects the GPU backend.
func (b *Builder) GPU() *Builder { return b.Backend(&GPUOptions{}) }

// DSP selects the DSP backend.
func (b *Builder) DSP() *Builder { return b.Backend(&DSPOptions{}) }

// GraphNames sets the names of the graphs compiled, replacing the default ("forward").
func (b *Builder) GraphNames(names ...string) *Builder {
	b.opts.GraphNames = append([]string(nil), names...)
	return b
}

// LibraryPath sets the path of the backend runtime library.
func (b *Builder) LibraryPath(path string) *Builder {
	b.opts.LibraryPath = path
	return b
}

// LogLevel sets the native backend log level.
func (b *Builder) LogLevel(level LogLevel) *Builder {
	b.opts.LogLevel = level
	return b
}

// ProfileLevel sets the native backend profiling level.
func (b *Builder) ProfileLevel(level ProfileLevel) *Builder {
	b.opts.ProfileLevel = level
	return b
}

// OnlinePrepare configures whether graph finalization happens on device.
func (b *Builder) OnlinePrepare(enabled bool) *Builder {
	b.opts.OnlinePrepare = enabled
	return b
}

// DumpIntermediateOutputs configures whether intermediate tensors are kept for debugging.
func (b *Builder) DumpIntermediateOutputs(enabled bool) *Builder {
	b.opts.DumpIntermediateOutputs = enabled
	return b
}

// SharedBuffer configures zero-copy shared buffers.
func (b *Builder) SharedBuffer(enabled bool) *Builder {
	b.opts.SharedBuffer = enabled
	return b
}

// FromContextBinary marks the request as loading a pre-compiled context binary.
func (b *Builder) FromContextBinary(enabled bool) *Builder {
	b.opts.IsFromContextBinary = enabled
	return b
}

// Saver enables the saver, recording backend calls into dir. If dir is empty, DefaultSaverOutputDir is used.
func (b *Builder) Saver(dir string) *Builder {
	if dir == "" {
		dir = DefaultSaverOutputDir
	}
	b.opts.Saver = true
	b.opts.SaverOutputDir = dir
	return b
}

// OpPackage registers a custom op package. Registering the same (custom op name, target) twice makes
// Done return an error wrapping ErrDuplicateOpPackage.
func (b *Builder) OpPackage(info OpPackageInfo) *Builder {
	b.setError(b.opts.OpPackages.Add(info))
	return b
}

// Done validates and returns the configured CompilationOptions.
// The Builder should not be used afterwards.
func (b *Builder) Done() (*CompilationOptions, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.opts.Validate(); err != nil {
		return nil, err
	}
	opts := b.opts
	b.opts = opts.Clone()
	return opts, nil
}
