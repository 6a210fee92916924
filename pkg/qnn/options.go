// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package qnn defines the compilation options handed to the QNN native backend at graph-compile time:
// the resolved hardware description, the backend-kind specific options, graph names, diagnostic levels
// and custom op packages.
//
// A CompilationOptions is built once per compilation request (see Build), validated, serialized (see
// package github.com/gomlx/delegation/pkg/qnn/wire) and then discarded. It must not be modified after
// Builder.Done returns it, nor shared across concurrent compilation jobs.
package qnn

import (
	"github.com/gomlx/delegation/pkg/hardware"
)

// DefaultGraphName is the graph name used when none is configured.
const DefaultGraphName = "forward"

// DefaultSaverOutputDir is the directory used by the saver when none is configured.
const DefaultSaverOutputDir = "saver_output"

// CompilationOptions is the root configuration for one compilation request.
type CompilationOptions struct {
	// SoC is the resolved description of the target hardware.
	SoC hardware.Info

	// Backend holds the options of the selected backend kind.
	Backend BackendOptions

	// GraphNames of the methods compiled in this request, in order.
	GraphNames []string

	// LibraryPath of the backend runtime library, empty for the default.
	LibraryPath string

	LogLevel LogLevel

	// OnlinePrepare defers graph finalization to the device, shipping the graph in its intermediate form.
	OnlinePrepare bool

	// DumpIntermediateOutputs makes the backend keep every intermediate tensor for debugging.
	DumpIntermediateOutputs bool

	ProfileLevel ProfileLevel

	// SharedBuffer enables zero-copy buffers shared between the host and the backend.
	SharedBuffer bool

	// IsFromContextBinary marks a request that loads a pre-compiled context binary.
	IsFromContextBinary bool

	// Saver records replayable captures of every backend call into SaverOutputDir instead of executing
	// on hardware. It is independent of ProfileLevel.
	Saver          bool
	SaverOutputDir string

	// OpPackages are the custom op packages, in load order.
	OpPackages OpPackages
}

// Kind returns the backend kind selected, or BackendUndefined if no backend options are set.
func (o *CompilationOptions) Kind() BackendKind {
	if o.Backend == nil {
		return BackendUndefined
	}
	return o.Backend.Kind()
}

// Clone returns a deep copy of o.
func (o *CompilationOptions) Clone() *CompilationOptions {
	c := *o
	if !isNilBackend(o.Backend) {
		c.Backend = o.Backend.clone()
	}
	c.GraphNames = append([]string(nil), o.GraphNames...)
	c.OpPackages = o.OpPackages.clone()
	return &c
}

// Validate checks that o can be handed to the native backend. Errors wrap ErrInvalidOptionsCombination
// (or ErrDuplicateOpPackage) and name the offending field.
func (o *CompilationOptions) Validate() error {
	if err := o.SoC.Validate(); err != nil {
		return invalidf("soc_info: %v", err)
	}
	if err := o.validateSoCAgainstTable(); err != nil {
		return err
	}
	if isNilBackend(o.Backend) {
		return invalidf("backend_options not set: backend_type must be one of gpu, htp, dsp")
	}
	if err := o.Backend.validate(o.SoC); err != nil {
		return err
	}
	if len(o.GraphNames) == 0 {
		return invalidf("graph_name must list at least one graph")
	}
	seen := make(map[string]int, len(o.GraphNames))
	for ii, name := range o.GraphNames {
		if name == "" {
			return invalidf("graph_name[%d] must not be empty", ii)
		}
		if prev, found := seen[name]; found {
			return invalidf("graph_name[%d]=%q repeats graph_name[%d]", ii, name, prev)
		}
		seen[name] = ii
	}
	if !o.LogLevel.IsALogLevel() {
		return invalidf("log_level=%d not one of %v", int(o.LogLevel), LogLevelStrings())
	}
	if !o.ProfileLevel.IsAProfileLevel() {
		return invalidf("profile_level=%d not one of %v", int(o.ProfileLevel), ProfileLevelStrings())
	}
	if o.Saver && o.SaverOutputDir == "" {
		return invalidf("saver is enabled but saver_output_dir is empty")
	}
	if o.OnlinePrepare && o.IsFromContextBinary {
		return invalidf("online_prepare can't be used with is_from_context_binary: a context binary is already prepared")
	}
	if err := o.OpPackages.Validate(); err != nil {
		return err
	}
	for ii, info := range o.OpPackages.infos {
		if info.Target == OpPackageTargetHTP && o.Kind() != BackendHTP {
			return invalidf("op_package_infos[%d].target=htp requires backend_type=htp, got %s", ii, o.Kind())
		}
	}
	return nil
}

// validateSoCAgainstTable checks the hardware description is the one the capability table holds
// for its chipset: a hand-built or decoded Info can't claim a different architecture or scratch budget.
func (o *CompilationOptions) validateSoCAgainstTable() error {
	want, err := hardware.Resolve(o.SoC.Chipset)
	if err != nil {
		return invalidf("soc_info.soc_model: %v", err)
	}
	if o.SoC.Arch != want.Arch {
		return invalidf("soc_info.htp_arch=%s conflicts with the capability table for %s (htp_arch %s)",
			o.SoC.Arch, want.Chipset, want.Arch)
	}
	if o.SoC.VTCMSizeMB != want.VTCMSizeMB {
		return invalidf("soc_info.vtcm_size_in_mb=%d conflicts with the capability table for %s (%d)",
			o.SoC.VTCMSizeMB, want.Chipset, want.VTCMSizeMB)
	}
	return nil
}
