// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package qnn

import (
	"github.com/gomlx/delegation/pkg/hardware"
	"github.com/gomlx/delegation/pkg/support/fsutil"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// yamlOptions is the file layout of CompilationOptions. Field names follow the wire schema.
//
//	soc_info: {soc_model: SM8550}
//	backend_options:
//	  backend_type: htp
//	  htp_options: {precision: fp16, performance_mode: burst}
//	graph_name: [forward]
type yamlOptions struct {
	SoCInfo                 yamlSoCInfo        `yaml:"soc_info"`
	BackendOptions          yamlBackendOptions `yaml:"backend_options"`
	GraphName               []string           `yaml:"graph_name,flow"`
	LibraryPath             string             `yaml:"library_path,omitempty"`
	LogLevel                LogLevel           `yaml:"log_level"`
	OnlinePrepare           bool               `yaml:"online_prepare"`
	DumpIntermediateOutputs bool               `yaml:"dump_intermediate_outputs"`
	ProfileLevel            ProfileLevel       `yaml:"profile_level"`
	SharedBuffer            bool               `yaml:"shared_buffer"`
	IsFromContextBinary     bool               `yaml:"is_from_context_binary"`
	Saver                   bool               `yaml:"saver"`
	SaverOutputDir          string             `yaml:"saver_output_dir"`
	OpPackageOptions        struct {
		OpPackageInfos OpPackages `yaml:"op_package_infos"`
	} `yaml:"op_package_options"`
}

// yamlSoCInfo only requires soc_model: the rest comes from the capability table. If given, it must match.
type yamlSoCInfo struct {
	SoCModel   hardware.Chipset `yaml:"soc_model"`
	HTPArch    *hardware.Arch   `yaml:"htp_arch,omitempty"`
	VTCMSizeMB *int             `yaml:"vtcm_size_in_mb,omitempty"`
}

type yamlBackendOptions struct {
	BackendType BackendKind `yaml:"backend_type"`
	HTPOptions  yaml.Node   `yaml:"htp_options,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (o *CompilationOptions) MarshalYAML() (any, error) {
	out := yamlOptions{
		SoCInfo: yamlSoCInfo{
			SoCModel:   o.SoC.Chipset,
			HTPArch:    &o.SoC.Arch,
			VTCMSizeMB: &o.SoC.VTCMSizeMB,
		},
		BackendOptions:          yamlBackendOptions{BackendType: o.Kind()},
		GraphName:               o.GraphNames,
		LibraryPath:             o.LibraryPath,
		LogLevel:                o.LogLevel,
		OnlinePrepare:           o.OnlinePrepare,
		DumpIntermediateOutputs: o.DumpIntermediateOutputs,
		ProfileLevel:            o.ProfileLevel,
		SharedBuffer:            o.SharedBuffer,
		IsFromContextBinary:     o.IsFromContextBinary,
		Saver:                   o.Saver,
		SaverOutputDir:          o.SaverOutputDir,
	}
	out.OpPackageOptions.OpPackageInfos = o.OpPackages
	if htp := HTP(o.Backend); htp != nil {
		if err := out.BackendOptions.HTPOptions.Encode(htp); err != nil {
			return nil, errors.Wrap(err, "failed to encode htp_options")
		}
	}
	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Fields not given take their defaults, the hardware
// description is resolved through the capability table, and the result is validated.
func (o *CompilationOptions) UnmarshalYAML(value *yaml.Node) error {
	in := yamlOptions{
		GraphName:      []string{DefaultGraphName},
		SaverOutputDir: DefaultSaverOutputDir,
	}
	if err := value.Decode(&in); err != nil {
		return err
	}

	soc, err := hardware.Resolve(in.SoCInfo.SoCModel)
	if err != nil {
		return errors.WithMessage(err, "soc_info.soc_model")
	}
	if in.SoCInfo.HTPArch != nil && *in.SoCInfo.HTPArch != soc.Arch {
		return invalidf("soc_info.htp_arch=%s conflicts with the capability table for %s (htp_arch %s)",
			*in.SoCInfo.HTPArch, soc.Chipset, soc.Arch)
	}
	if in.SoCInfo.VTCMSizeMB != nil && *in.SoCInfo.VTCMSizeMB != soc.VTCMSizeMB {
		return invalidf("soc_info.vtcm_size_in_mb=%d conflicts with the capability table for %s (%d)",
			*in.SoCInfo.VTCMSizeMB, soc.Chipset, soc.VTCMSizeMB)
	}

	kind := in.BackendOptions.BackendType
	htpGiven := in.BackendOptions.HTPOptions.Kind != 0
	if htpGiven && kind != BackendHTP {
		return invalidf("backend_options.htp_options given, but backend_type=%s (htp_options requires backend_type=htp)", kind)
	}
	backend, err := NewBackendOptions(kind)
	if err != nil {
		return err
	}
	if htp := HTP(backend); htp != nil && htpGiven {
		if err := in.BackendOptions.HTPOptions.Decode(htp); err != nil {
			return errors.Wrap(err, "backend_options.htp_options")
		}
	}

	parsed := CompilationOptions{
		SoC:                     soc,
		Backend:                 backend,
		GraphNames:              in.GraphName,
		LibraryPath:             in.LibraryPath,
		LogLevel:                in.LogLevel,
		OnlinePrepare:           in.OnlinePrepare,
		DumpIntermediateOutputs: in.DumpIntermediateOutputs,
		ProfileLevel:            in.ProfileLevel,
		SharedBuffer:            in.SharedBuffer,
		IsFromContextBinary:     in.IsFromContextBinary,
		Saver:                   in.Saver,
		SaverOutputDir:          in.SaverOutputDir,
		OpPackages:              in.OpPackageOptions.OpPackageInfos,
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseYAML decodes and validates CompilationOptions from YAML.
func ParseYAML(data []byte) (*CompilationOptions, error) {
	opts := &CompilationOptions{}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, err
	}
	if opts.Backend == nil {
		return nil, invalidf("empty compilation options: soc_info and backend_options are required")
	}
	return opts, nil
}

// LoadYAML reads CompilationOptions from a YAML file.
func LoadYAML(filePath string) (*CompilationOptions, error) {
	data, err := fsutil.ReadFile(filePath, "compilation options")
	if err != nil {
		return nil, err
	}
	opts, err := ParseYAML(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "compilation options file %q", filePath)
	}
	return opts, nil
}
