// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package wire

import (
	"math"

	"github.com/gomlx/delegation/pkg/hardware"
	"github.com/gomlx/delegation/pkg/qnn"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
	"k8s.io/klog/v2"
)

// field is one decoded field of a message: scalar fields hold varint, length-delimited ones hold bytes.
type field struct {
	path   string
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	bytes  []byte
}

// forEachField calls fn for every field of the message b. Fields of wire types not used by the schema
// are skipped, so are fields fn doesn't know.
func forEachField(b []byte, path string, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return failuref("%s: %v", path, protowire.ParseError(n))
		}
		b = b[n:]
		f := field{path: path, num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return failuref("%s field %d: %v", path, num, protowire.ParseError(n))
		}
		b = b[n:]
		if typ != protowire.VarintType && typ != protowire.BytesType {
			continue
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func (f field) want(name string, typ protowire.Type) error {
	if f.typ != typ {
		return failuref("%s.%s (field %d) has wire type %d, expected %d", f.path, name, f.num, f.typ, typ)
	}
	return nil
}

func (f field) bool(name string, v *bool) error {
	if err := f.want(name, protowire.VarintType); err != nil {
		return err
	}
	*v = protowire.DecodeBool(f.varint)
	return nil
}

func (f field) uint32(name string, v *int) error {
	if err := f.want(name, protowire.VarintType); err != nil {
		return err
	}
	if f.varint > math.MaxUint32 {
		return failuref("%s.%s=%d out of the representable range [0, %d]", f.path, name, f.varint, uint64(math.MaxUint32))
	}
	*v = int(f.varint)
	return nil
}

func (f field) string(name string, v *string) error {
	if err := f.want(name, protowire.BytesType); err != nil {
		return err
	}
	*v = string(f.bytes)
	return nil
}

// decodeEnum decodes a varint enum field, which must hold one of the declared values of T.
func decodeEnum[T ~int](f field, name string, v *T, isA func(T) bool) error {
	if err := f.want(name, protowire.VarintType); err != nil {
		return err
	}
	if f.varint > math.MaxInt32 || !isA(T(f.varint)) {
		return failuref("%s.%s=%d is not a declared enum value", f.path, name, f.varint)
	}
	*v = T(f.varint)
	return nil
}

// Decode parses options serialized by Encode. Absent fields take their schema defaults, op packages
// are registered in their serialized (load) order, and the result is validated.
func Decode(b []byte) (*qnn.CompilationOptions, error) {
	opts := &qnn.CompilationOptions{SaverOutputDir: qnn.DefaultSaverOutputDir}
	var (
		backendSeen bool
		graphNames  []string
	)
	err := forEachField(b, "compilation_options", func(f field) error {
		switch f.num {
		case fieldSoCInfo:
			if err := f.want("soc_info", protowire.BytesType); err != nil {
				return err
			}
			return decodeSoCInfo(f.bytes, &opts.SoC)
		case fieldBackendOptions:
			if err := f.want("backend_options", protowire.BytesType); err != nil {
				return err
			}
			backendSeen = true
			backend, err := decodeBackendOptions(f.bytes)
			opts.Backend = backend
			return err
		case fieldGraphName:
			var name string
			if err := f.string("graph_name", &name); err != nil {
				return err
			}
			graphNames = append(graphNames, name)
		case fieldLibraryPath:
			return f.string("library_path", &opts.LibraryPath)
		case fieldLogLevel:
			return decodeEnum(f, "log_level", &opts.LogLevel, qnn.LogLevel.IsALogLevel)
		case fieldOnlinePrepare:
			return f.bool("online_prepare", &opts.OnlinePrepare)
		case fieldDumpIntermediateOutputs:
			return f.bool("dump_intermediate_outputs", &opts.DumpIntermediateOutputs)
		case fieldProfileLevel:
			return decodeEnum(f, "profile_level", &opts.ProfileLevel, qnn.ProfileLevel.IsAProfileLevel)
		case fieldSharedBuffer:
			return f.bool("shared_buffer", &opts.SharedBuffer)
		case fieldIsFromContextBinary:
			return f.bool("is_from_context_binary", &opts.IsFromContextBinary)
		case fieldSaver:
			return f.bool("saver", &opts.Saver)
		case fieldSaverOutputDir:
			return f.string("saver_output_dir", &opts.SaverOutputDir)
		case fieldOpPackageOptions:
			if err := f.want("op_package_options", protowire.BytesType); err != nil {
				return err
			}
			return decodeOpPackageOptions(f.bytes, &opts.OpPackages)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !backendSeen {
		return nil, failuref("compilation_options.backend_options missing")
	}
	opts.GraphNames = graphNames
	if opts.GraphNames == nil {
		opts.GraphNames = []string{qnn.DefaultGraphName}
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.WithMessage(err, "decoded compilation options")
	}
	if klog.V(2).Enabled() {
		klog.Infof("decoded compilation options for %s (backend %s, %d graphs, %d op packages) from %d bytes",
			opts.SoC.Chipset, opts.Kind(), len(opts.GraphNames), opts.OpPackages.Len(), len(b))
	}
	return opts, nil
}

func decodeSoCInfo(b []byte, soc *hardware.Info) error {
	return forEachField(b, "soc_info", func(f field) error {
		switch f.num {
		case fieldSoCModel:
			return decodeEnum(f, "soc_model", &soc.Chipset, hardware.Chipset.IsAChipset)
		case fieldHTPInfo:
			if err := f.want("htp_info", protowire.BytesType); err != nil {
				return err
			}
			return forEachField(f.bytes, "soc_info.htp_info", func(f field) error {
				switch f.num {
				case fieldHTPArch:
					return decodeEnum(f, "htp_arch", &soc.Arch, hardware.Arch.IsAArch)
				case fieldVTCMSizeInMB:
					return f.uint32("vtcm_size_in_mb", &soc.VTCMSizeMB)
				}
				return nil
			})
		}
		return nil
	})
}

func decodeBackendOptions(b []byte) (qnn.BackendOptions, error) {
	kind := qnn.BackendUndefined
	var htpBytes []byte
	err := forEachField(b, "backend_options", func(f field) error {
		switch f.num {
		case fieldBackendType:
			return decodeEnum(f, "backend_type", &kind, qnn.BackendKind.IsABackendKind)
		case fieldHTPOptions:
			if err := f.want("htp_options", protowire.BytesType); err != nil {
				return err
			}
			htpBytes = f.bytes
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if kind == qnn.BackendUndefined {
		return nil, failuref("backend_options.backend_type=%s can't be compiled", kind)
	}
	if htpBytes != nil && kind != qnn.BackendHTP {
		return nil, failuref("backend_options.htp_options present for backend_type=%s", kind)
	}
	backend, err := qnn.NewBackendOptions(kind)
	if err != nil {
		return nil, err
	}
	if htp := qnn.HTP(backend); htp != nil {
		if err := decodeHTPOptions(htpBytes, htp); err != nil {
			return nil, err
		}
	}
	return backend, nil
}

func decodeHTPOptions(b []byte, htp *qnn.HTPOptions) error {
	return forEachField(b, "htp_options", func(f field) error {
		switch f.num {
		case fieldMaxSFBufSize:
			return f.uint32("max_sf_buf_size", &htp.MaxSFBufSize)
		case fieldPerformanceMode:
			return decodeEnum(f, "performance_mode", &htp.PerformanceMode, qnn.PerformanceMode.IsAPerformanceMode)
		case fieldPrecision:
			return decodeEnum(f, "precision", &htp.Precision, qnn.Precision.IsAPrecision)
		case fieldPDSession:
			return decodeEnum(f, "pd_session", &htp.PDSession, qnn.PDSession.IsAPDSession)
		case fieldSkelLibraryDir:
			return f.string("skel_library_dir", &htp.SkelLibraryDir)
		case fieldUseConvHMX:
			return f.bool("use_conv_hmx", &htp.UseConvHMX)
		case fieldUseDLBC:
			return f.bool("use_dlbc", &htp.UseDLBC)
		case fieldUseFoldReLU:
			return f.bool("use_fold_relu", &htp.UseFoldReLU)
		case fieldUseMultiContexts:
			return f.bool("use_multi_contexts", &htp.UseMultiContexts)
		case fieldUseWeightSharing:
			return f.bool("use_weight_sharing", &htp.UseWeightSharing)
		}
		return nil
	})
}

func decodeOpPackageOptions(b []byte, packages *qnn.OpPackages) error {
	return forEachField(b, "op_package_options", func(f field) error {
		if f.num != fieldOpPackageInfos {
			return nil
		}
		if err := f.want("op_package_infos", protowire.BytesType); err != nil {
			return err
		}
		var info qnn.OpPackageInfo
		err := forEachField(f.bytes, "op_package_info", func(f field) error {
			switch f.num {
			case fieldOpPackageName:
				return f.string("op_package_name", &info.OpPackageName)
			case fieldOpPackagePath:
				return f.string("op_package_path", &info.OpPackagePath)
			case fieldInterfaceProvider:
				return f.string("interface_provider", &info.InterfaceProvider)
			case fieldTarget:
				return decodeEnum(f, "target", &info.Target, qnn.OpPackageTarget.IsAOpPackageTarget)
			case fieldCustomOpName:
				return f.string("custom_op_name", &info.CustomOpName)
			case fieldQNNOpTypeName:
				return f.string("qnn_op_type_name", &info.QNNOpTypeName)
			case fieldPlatform:
				return decodeEnum(f, "platform", &info.Platform, qnn.OpPackagePlatform.IsAOpPackagePlatform)
			}
			return nil
		})
		if err != nil {
			return err
		}
		return packages.Add(info)
	})
}
