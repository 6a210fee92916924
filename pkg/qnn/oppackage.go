// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package qnn

import (
	"slices"

	"github.com/pkg/errors"
)

// OpPackageInfo describes a custom operator implementation to be loaded by the native backend.
type OpPackageInfo struct {
	// OpPackageName is the name the package registers itself with.
	OpPackageName string `yaml:"op_package_name"`

	// OpPackagePath is the path to the shared library.
	OpPackagePath string `yaml:"op_package_path"`

	// InterfaceProvider is the symbol of the package's interface provider function.
	InterfaceProvider string `yaml:"interface_provider"`

	Target OpPackageTarget `yaml:"target"`

	// CustomOpName is the graph operator this package implements.
	CustomOpName string `yaml:"custom_op_name"`

	// QNNOpTypeName is the operator type name inside the package, empty if equal to CustomOpName.
	QNNOpTypeName string `yaml:"qnn_op_type_name"`

	Platform OpPackagePlatform `yaml:"platform"`
}

func (info OpPackageInfo) validate(index int) error {
	required := []struct{ field, value string }{
		{"op_package_name", info.OpPackageName},
		{"op_package_path", info.OpPackagePath},
		{"interface_provider", info.InterfaceProvider},
		{"custom_op_name", info.CustomOpName},
	}
	for _, r := range required {
		if r.value == "" {
			return invalidf("op_package_infos[%d].%s must not be empty", index, r.field)
		}
	}
	if !info.Target.IsAOpPackageTarget() || info.Target == OpPackageTargetUnknown {
		return invalidf("op_package_infos[%d].target=%s must be one of cpu, htp", index, info.Target)
	}
	if !info.Platform.IsAOpPackagePlatform() || info.Platform == OpPackagePlatformUnknown {
		return invalidf("op_package_infos[%d].platform=%s must be one of x86_64, aarch64_android", index, info.Platform)
	}
	return nil
}

// OpPackages is the ordered list of op packages of one CompilationOptions. The native runtime loads
// them in order, and resolves symbols by name: a (custom op name, target) pair can only be registered once.
//
// The zero value is an empty list ready to use.
type OpPackages struct {
	infos []OpPackageInfo
}

// Add appends info to the list. It returns an error wrapping ErrDuplicateOpPackage if its
// (CustomOpName, Target) pair is already registered; the list is left unchanged in that case.
func (p *OpPackages) Add(info OpPackageInfo) error {
	for ii, existing := range p.infos {
		if existing.CustomOpName == info.CustomOpName && existing.Target == info.Target {
			return errors.Wrapf(ErrDuplicateOpPackage,
				"op_package_infos[%d]: custom_op_name=%q with target=%s already registered by op_package_infos[%d] (%q)",
				len(p.infos), info.CustomOpName, info.Target, ii, existing.OpPackageName)
		}
	}
	p.infos = append(p.infos, info)
	return nil
}

// Len returns the number of registered op packages.
func (p OpPackages) Len() int { return len(p.infos) }

// Infos returns a copy of the registered op packages, in registration (load) order.
func (p OpPackages) Infos() []OpPackageInfo { return slices.Clone(p.infos) }

// Validate checks every op package has its required fields set.
func (p OpPackages) Validate() error {
	for ii, info := range p.infos {
		if err := info.validate(ii); err != nil {
			return err
		}
	}
	return nil
}

func (p OpPackages) clone() OpPackages {
	return OpPackages{infos: slices.Clone(p.infos)}
}

// MarshalYAML implements yaml.Marshaler: the list is written as a plain sequence.
func (p OpPackages) MarshalYAML() (any, error) {
	if p.infos == nil {
		return []OpPackageInfo{}, nil
	}
	return p.infos, nil
}

// UnmarshalYAML implements the yaml obsolete Unmarshaler interface, registering packages in order
// so duplicates are reported.
func (p *OpPackages) UnmarshalYAML(unmarshal func(any) error) error {
	var infos []OpPackageInfo
	if err := unmarshal(&infos); err != nil {
		return err
	}
	*p = OpPackages{}
	for _, info := range infos {
		if err := p.Add(info); err != nil {
			return err
		}
	}
	return nil
}
