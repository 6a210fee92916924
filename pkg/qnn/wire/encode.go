// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package wire

import (
	"math"
	"unicode/utf8"

	"github.com/gomlx/delegation/pkg/hardware"
	"github.com/gomlx/delegation/pkg/qnn"
	"google.golang.org/protobuf/encoding/protowire"
	"k8s.io/klog/v2"
)

// encoder appends fields to buf, keeping the first error.
type encoder struct {
	buf []byte
	err error
}

func (e *encoder) setError(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *encoder) varint(num protowire.Number, v uint64) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, v)
}

func (e *encoder) bool(num protowire.Number, v bool) {
	e.varint(num, protowire.EncodeBool(v))
}

// uint32 encodes a non-negative integer that must fit 32 bits.
func (e *encoder) uint32(num protowire.Number, field string, v int) {
	if v < 0 || int64(v) > math.MaxUint32 {
		e.setError(failuref("%s=%d out of the representable range [0, %d]", field, v, uint64(math.MaxUint32)))
		return
	}
	e.varint(num, uint64(v))
}

// enum encodes an enumerated value, which must be one of its declared values.
func (e *encoder) enum(num protowire.Number, field string, v int, valid bool) {
	if !valid || v < 0 || v > math.MaxInt32 {
		e.setError(failuref("%s=%d is not a declared enum value", field, v))
		return
	}
	e.varint(num, uint64(v))
}

func (e *encoder) string(num protowire.Number, field, v string) {
	if !utf8.ValidString(v) {
		e.setError(failuref("%s=%q is not valid UTF-8", field, v))
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, v)
}

// message encodes a sub-message written by fn.
func (e *encoder) message(num protowire.Number, fn func(sub *encoder)) {
	sub := &encoder{}
	fn(sub)
	if sub.err != nil {
		e.setError(sub.err)
		return
	}
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, sub.buf)
}

// Encode serializes opts. It fails with an error wrapping ErrSerializationFailure if a value can't be
// represented, e.g. an enum value outside its declared values.
//
// Encode doesn't check option combinations: use options returned by qnn.Builder.Done, or call
// CompilationOptions.Validate first.
func Encode(opts *qnn.CompilationOptions) ([]byte, error) {
	if opts == nil {
		return nil, failuref("nil compilation options")
	}
	e := &encoder{}
	e.message(fieldSoCInfo, func(e *encoder) { encodeSoCInfo(e, opts.SoC) })
	e.message(fieldBackendOptions, func(e *encoder) { encodeBackendOptions(e, opts.Backend) })
	for ii, name := range opts.GraphNames {
		if name == "" {
			e.setError(failuref("graph_name[%d] is empty", ii))
		}
		e.string(fieldGraphName, "graph_name", name)
	}
	e.string(fieldLibraryPath, "library_path", opts.LibraryPath)
	e.enum(fieldLogLevel, "log_level", int(opts.LogLevel), opts.LogLevel.IsALogLevel())
	e.bool(fieldOnlinePrepare, opts.OnlinePrepare)
	e.bool(fieldDumpIntermediateOutputs, opts.DumpIntermediateOutputs)
	e.enum(fieldProfileLevel, "profile_level", int(opts.ProfileLevel), opts.ProfileLevel.IsAProfileLevel())
	e.bool(fieldSharedBuffer, opts.SharedBuffer)
	e.bool(fieldIsFromContextBinary, opts.IsFromContextBinary)
	e.bool(fieldSaver, opts.Saver)
	e.string(fieldSaverOutputDir, "saver_output_dir", opts.SaverOutputDir)
	e.message(fieldOpPackageOptions, func(e *encoder) {
		for _, info := range opts.OpPackages.Infos() {
			e.message(fieldOpPackageInfos, func(e *encoder) { encodeOpPackageInfo(e, info) })
		}
	})
	if e.err != nil {
		return nil, e.err
	}
	if klog.V(2).Enabled() {
		klog.Infof("encoded compilation options for %s (backend %s, %d graphs, %d op packages): %d bytes",
			opts.SoC.Chipset, opts.Kind(), len(opts.GraphNames), opts.OpPackages.Len(), len(e.buf))
	}
	return e.buf, nil
}

func encodeSoCInfo(e *encoder, soc hardware.Info) {
	e.enum(fieldSoCModel, "soc_info.soc_model", int(soc.Chipset), soc.Chipset.IsAChipset())
	e.message(fieldHTPInfo, func(e *encoder) {
		e.enum(fieldHTPArch, "soc_info.htp_info.htp_arch", int(soc.Arch), soc.Arch.IsAArch())
		e.uint32(fieldVTCMSizeInMB, "soc_info.htp_info.vtcm_size_in_mb", soc.VTCMSizeMB)
	})
}

func encodeBackendOptions(e *encoder, backend qnn.BackendOptions) {
	kind := qnn.BackendUndefined
	if backend != nil {
		kind = backend.Kind()
	}
	e.enum(fieldBackendType, "backend_options.backend_type", int(kind), kind.IsABackendKind())
	htp := qnn.HTP(backend)
	if htp == nil {
		return
	}
	e.message(fieldHTPOptions, func(e *encoder) {
		e.uint32(fieldMaxSFBufSize, "htp_options.max_sf_buf_size", htp.MaxSFBufSize)
		e.enum(fieldPerformanceMode, "htp_options.performance_mode", int(htp.PerformanceMode),
			htp.PerformanceMode.IsAPerformanceMode())
		e.enum(fieldPrecision, "htp_options.precision", int(htp.Precision), htp.Precision.IsAPrecision())
		e.enum(fieldPDSession, "htp_options.pd_session", int(htp.PDSession), htp.PDSession.IsAPDSession())
		e.string(fieldSkelLibraryDir, "htp_options.skel_library_dir", htp.SkelLibraryDir)
		e.bool(fieldUseConvHMX, htp.UseConvHMX)
		e.bool(fieldUseDLBC, htp.UseDLBC)
		e.bool(fieldUseFoldReLU, htp.UseFoldReLU)
		e.bool(fieldUseMultiContexts, htp.UseMultiContexts)
		e.bool(fieldUseWeightSharing, htp.UseWeightSharing)
	})
}

func encodeOpPackageInfo(e *encoder, info qnn.OpPackageInfo) {
	e.string(fieldOpPackageName, "op_package_name", info.OpPackageName)
	e.string(fieldOpPackagePath, "op_package_path", info.OpPackagePath)
	e.string(fieldInterfaceProvider, "interface_provider", info.InterfaceProvider)
	e.enum(fieldTarget, "target", int(info.Target), info.Target.IsAOpPackageTarget())
	e.string(fieldCustomOpName, "custom_op_name", info.CustomOpName)
	e.string(fieldQNNOpTypeName, "qnn_op_type_name", info.QNNOpTypeName)
	e.enum(fieldPlatform, "platform", int(info.Platform), info.Platform.IsAOpPackagePlatform())
}
