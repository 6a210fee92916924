// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package qnn

// The numeric values of the enums below are part of the wire format read by the native runtime:
// never renumber them.

// BackendKind selects which accelerator subsystem a configuration applies to.
type BackendKind int

//go:generate go tool enumer -type=BackendKind -trimprefix=Backend -transform=snake -text -yaml -output=gen_backendkind_enumer.go enums.go

const (
	// BackendUndefined is the "not selected" sentinel, never valid for compilation.
	BackendUndefined BackendKind = 0
	BackendGPU       BackendKind = 1
	BackendHTP       BackendKind = 2
	BackendDSP       BackendKind = 3
)

// PerformanceMode is the HTP power/performance vote requested while the graph executes.
type PerformanceMode int

//go:generate go tool enumer -type=PerformanceMode -trimprefix=PerformanceMode -transform=snake -text -yaml -output=gen_performancemode_enumer.go enums.go

const (
	PerformanceModeDefault                  PerformanceMode = 0
	PerformanceModeSustainedHighPerformance PerformanceMode = 1
	PerformanceModeBurst                    PerformanceMode = 2
	PerformanceModeHighPerformance          PerformanceMode = 3
	PerformanceModePowerSaver               PerformanceMode = 4
	PerformanceModeLowPowerSaver            PerformanceMode = 5
	PerformanceModeHighPowerSaver           PerformanceMode = 6
	PerformanceModeLowBalanced              PerformanceMode = 7
	PerformanceModeBalanced                 PerformanceMode = 8
)

// Precision is the numeric mode the whole HTP graph is compiled for. It is fixed per compilation.
type Precision int

//go:generate go tool enumer -type=Precision -trimprefix=Precision -transform=snake -text -yaml -output=gen_precision_enumer.go enums.go

const (
	// PrecisionQuantized executes quantized integer kernels.
	PrecisionQuantized Precision = 0

	// PrecisionFP16 executes half-precision float kernels.
	PrecisionFP16 Precision = 1
)

// PDSession is the HTP protection domain (process isolation) the graph runs in.
type PDSession int

//go:generate go tool enumer -type=PDSession -trimprefix=PDSession -transform=snake -text -yaml -output=gen_pdsession_enumer.go enums.go

const (
	PDSessionUnsigned PDSession = 0
	PDSessionSigned   PDSession = 1
)

// LogLevel of the native backend.
type LogLevel int

//go:generate go tool enumer -type=LogLevel -trimprefix=Log -transform=snake -text -yaml -output=gen_loglevel_enumer.go enums.go

const (
	LogOff     LogLevel = 0
	LogError   LogLevel = 1
	LogWarn    LogLevel = 2
	LogInfo    LogLevel = 3
	LogVerbose LogLevel = 4
	LogDebug   LogLevel = 5
)

// ProfileLevel of the native backend profiler.
type ProfileLevel int

//go:generate go tool enumer -type=ProfileLevel -trimprefix=Profile -transform=snake -text -yaml -output=gen_profilelevel_enumer.go enums.go

const (
	ProfileOff      ProfileLevel = 0
	ProfileBasic    ProfileLevel = 1
	ProfileDetailed ProfileLevel = 2
	ProfileOptrace  ProfileLevel = 3
)

// OpPackageTarget is the compute unit a custom op package is built for.
type OpPackageTarget int

//go:generate go tool enumer -type=OpPackageTarget -trimprefix=OpPackageTarget -transform=snake -text -yaml -output=gen_oppackagetarget_enumer.go enums.go

const (
	OpPackageTargetUnknown OpPackageTarget = 0
	OpPackageTargetCPU     OpPackageTarget = 1
	OpPackageTargetHTP     OpPackageTarget = 2
)

// OpPackagePlatform is the ABI a custom op package library is built for.
type OpPackagePlatform int

//go:generate go tool enumer -type=OpPackagePlatform -trimprefix=OpPackagePlatform -transform=snake -text -yaml -output=gen_oppackageplatform_enumer.go enums.go

const (
	OpPackagePlatformUnknown        OpPackagePlatform = 0
	OpPackagePlatformX86_64         OpPackagePlatform = 1
	OpPackagePlatformAarch64Android OpPackagePlatform = 2
)
