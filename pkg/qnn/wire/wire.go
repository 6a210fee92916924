// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package wire serializes qnn.CompilationOptions for the native backend boundary.
//
// The encoding is the protocol buffers wire format with stable field numbers, so the native runtime can
// decode it without Go: the field layout below is the contract and must never be renumbered.
//
//	CompilationOptions {
//	  1: soc_info {1: soc_model, 2: htp_info {1: htp_arch, 2: vtcm_size_in_mb}}
//	  2: backend_options {1: backend_type, 2: htp_options}
//	  3: repeated graph_name
//	  4: library_path           5: log_level            6: online_prepare
//	  7: dump_intermediate_outputs                      8: profile_level
//	  9: shared_buffer         10: is_from_context_binary
//	 11: saver                 12: saver_output_dir
//	 13: op_package_options {1: repeated op_package_infos}
//	}
//	htp_options {1: max_sf_buf_size, 2: performance_mode, 3: precision, 4: pd_session,
//	  5: skel_library_dir, 6: use_conv_hmx, 7: use_dlbc, 8: use_fold_relu, 9: use_multi_contexts,
//	  10: use_weight_sharing}
//	op_package_info {1: op_package_name, 2: op_package_path, 3: interface_provider, 4: target,
//	  5: custom_op_name, 6: qnn_op_type_name, 7: platform}
//
// Every scalar field is always written, so fields absent when decoding take the schema defaults
// (see qnn.DefaultHTPOptions). htp_options is only written for the HTP backend.
package wire

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// ErrSerializationFailure is returned (wrapped) when options can't be represented in, or decoded
// from, the wire format. Messages name the offending field.
var ErrSerializationFailure = errors.New("serialization failure")

func failuref(format string, args ...any) error {
	return errors.Wrapf(ErrSerializationFailure, format, args...)
}

// CompilationOptions fields.
const (
	fieldSoCInfo protowire.Number = iota + 1
	fieldBackendOptions
	fieldGraphName
	fieldLibraryPath
	fieldLogLevel
	fieldOnlinePrepare
	fieldDumpIntermediateOutputs
	fieldProfileLevel
	fieldSharedBuffer
	fieldIsFromContextBinary
	fieldSaver
	fieldSaverOutputDir
	fieldOpPackageOptions
)

// soc_info and htp_info fields.
const (
	fieldSoCModel protowire.Number = 1
	fieldHTPInfo  protowire.Number = 2

	fieldHTPArch      protowire.Number = 1
	fieldVTCMSizeInMB protowire.Number = 2
)

// backend_options fields.
const (
	fieldBackendType protowire.Number = 1
	fieldHTPOptions  protowire.Number = 2
)

// htp_options fields.
const (
	fieldMaxSFBufSize protowire.Number = iota + 1
	fieldPerformanceMode
	fieldPrecision
	fieldPDSession
	fieldSkelLibraryDir
	fieldUseConvHMX
	fieldUseDLBC
	fieldUseFoldReLU
	fieldUseMultiContexts
	fieldUseWeightSharing
)

// op_package_options and op_package_info fields.
const (
	fieldOpPackageInfos protowire.Number = 1

	fieldOpPackageName     protowire.Number = 1
	fieldOpPackagePath     protowire.Number = 2
	fieldInterfaceProvider protowire.Number = 3
	fieldTarget            protowire.Number = 4
	fieldCustomOpName      protowire.Number = 5
	fieldQNNOpTypeName     protowire.Number = 6
	fieldPlatform          protowire.Number = 7
)
