// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// qnn_inspect prints the hardware capability table, validates and converts QNN compilation options
// between their YAML and binary forms, and reports which nodes of a graph would be delegated.
//
// Examples:
//
//	qnn_inspect -chipsets
//	qnn_inspect -resolve SM8650
//	qnn_inspect -config options.yaml -encode options.bin
//	qnn_inspect -decode options.bin
//	qnn_inspect -graph model.yaml -families=-elementwise_unary -v=2
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/delegation/pkg/core/ir"
	"github.com/gomlx/delegation/pkg/hardware"
	"github.com/gomlx/delegation/pkg/partition"
	_ "github.com/gomlx/delegation/pkg/partition/rules"
	"github.com/gomlx/delegation/pkg/qnn"
	"github.com/gomlx/delegation/pkg/qnn/wire"
	"github.com/gomlx/delegation/pkg/support/fsutil"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/klog/v2"
)

// ChipsetEnv is the environment variable with the default chipset for -resolve.
const ChipsetEnv = "DELEGATION_CHIPSET"

var (
	flagChipsets = flag.Bool("chipsets", false, "Lists the hardware capability table.")
	flagResolve  = flag.String("resolve", "",
		fmt.Sprintf("Resolves the given chipset name (e.g. SM8550). Set to \"env\" to use $%s.", ChipsetEnv))
	flagConfig = flag.String("config", "", "YAML file with the compilation options to validate and print.")
	flagEncode = flag.String("encode", "", "Writes the compilation options given by -config in binary form to this file.")
	flagDecode = flag.String("decode", "", "Binary compilation options file to decode, validate and print.")
	flagGraph  = flag.String("graph", "", "YAML graph dump to partition: prints the decision for each node.")
	flagPolicy = flag.String("policy", partition.PolicyVetoWins.String(),
		fmt.Sprintf("Aggregation policy for -graph, one of %v.", partition.PolicyStrings()))
	flagFamilies = flag.String("families", "",
		"Comma-separated rule families to use with -graph. Families prefixed with \"-\" are excluded. "+
			"Empty uses the families enabled by default.")
	flagParallelism = flag.Int("parallelism", 1, "Number of nodes classified in parallel with -graph, 0 for one per CPU.")
	flagNoColor     = flag.Bool("no_color", false, "Disables colors in the output.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if !*flagChipsets && *flagResolve == "" && *flagConfig == "" && *flagDecode == "" && *flagGraph == "" {
		klog.Errorf("Nothing to do. See 'qnn_inspect -help'.")
		os.Exit(1)
	}
	err := exceptions.TryCatch[error](report)
	if err != nil {
		klog.Errorf("qnn_inspect failed: %+v", err)
		os.Exit(1)
	}
}

func report() {
	if *flagChipsets {
		listChipsets()
	}
	if *flagResolve != "" {
		name := *flagResolve
		if name == "env" {
			name = os.Getenv(ChipsetEnv)
			if name == "" {
				exceptions.Panicf("-resolve=env given, but $%s is not set", ChipsetEnv)
			}
		}
		printSoC(must.M1(hardware.ResolveName(name)))
	}
	if *flagConfig != "" {
		opts := must.M1(qnn.LoadYAML(*flagConfig))
		printOptions(*flagConfig, opts)
		if *flagEncode != "" {
			data := must.M1(wire.EncodeBinary(opts))
			must.M(fsutil.WriteFile(*flagEncode, data))
			fmt.Printf("Wrote %s to %q (signature %s)\n", humanize.IBytes(uint64(len(data))), *flagEncode,
				wire.Signature(must.M1(wire.Unwrap(data))))
		}
	} else if *flagEncode != "" {
		exceptions.Panicf("-encode requires -config")
	}
	if *flagDecode != "" {
		data := must.M1(fsutil.ReadFile(*flagDecode, "compilation options binary"))
		opts, err := wire.DecodeBinary(data)
		must.M(errors.WithMessagef(err, "decoding %q", *flagDecode))
		printOptions(*flagDecode, opts)
	}
	if *flagGraph != "" {
		partitionGraph(*flagGraph)
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func listChipsets() {
	fmt.Println(titleStyle.Render("Capability Table"))
	table := newPlainTable(lipgloss.Left, lipgloss.Right, lipgloss.Left, lipgloss.Right, lipgloss.Center)
	table.Headers("Chipset", "Code", "HTP Arch", "VTCM", "FP16", "Weight Sharing")
	for _, info := range hardware.Table() {
		table.Row(info.Chipset.String(), fmt.Sprintf("%d", int(info.Chipset)), info.Arch.String(),
			humanize.IBytes(info.VTCMBytes()), yesNo(info.Arch.SupportsFP16()), yesNo(info.Arch.SupportsWeightSharing()))
	}
	fmt.Println(table.Render())
}

func printSoC(info hardware.Info) {
	fmt.Println(titleStyle.Render("SoC " + info.Chipset.String()))
	table := newPlainTable(lipgloss.Right, lipgloss.Left)
	table.Row("htp_arch", info.Arch.String())
	table.Row("vtcm_size", humanize.IBytes(info.VTCMBytes()))
	table.Row("fp16", yesNo(info.Arch.SupportsFP16()))
	table.Row("weight_sharing", yesNo(info.Arch.SupportsWeightSharing()))
	fmt.Println(table.Render())
}

func printOptions(source string, opts *qnn.CompilationOptions) {
	fmt.Println(titleStyle.Render("Compilation Options: " + source))
	table := newPlainTable(lipgloss.Right, lipgloss.Left)
	table.Row("soc_model", opts.SoC.Chipset.String())
	table.Row("htp_arch", opts.SoC.Arch.String())
	table.Row("vtcm_size", humanize.IBytes(opts.SoC.VTCMBytes()))
	table.Row("backend_type", opts.Kind().String())
	if htp := qnn.HTP(opts.Backend); htp != nil {
		table.Row("  performance_mode", htp.PerformanceMode.String())
		table.Row("  precision", htp.Precision.String())
		table.Row("  pd_session", htp.PDSession.String())
		if htp.MaxSFBufSize > 0 {
			table.Row("  max_sf_buf_size", humanize.IBytes(uint64(htp.MaxSFBufSize)))
		}
		if htp.SkelLibraryDir != "" {
			table.Row("  skel_library_dir", htp.SkelLibraryDir)
		}
		table.Row("  use_conv_hmx", yesNo(htp.UseConvHMX))
		table.Row("  use_dlbc", yesNo(htp.UseDLBC))
		table.Row("  use_fold_relu", yesNo(htp.UseFoldReLU))
		table.Row("  use_multi_contexts", yesNo(htp.UseMultiContexts))
		table.Row("  use_weight_sharing", yesNo(htp.UseWeightSharing))
	}
	table.Row("graph_name", strings.Join(opts.GraphNames, ", "))
	if opts.LibraryPath != "" {
		table.Row("library_path", opts.LibraryPath)
	}
	table.Row("log_level", opts.LogLevel.String())
	table.Row("profile_level", opts.ProfileLevel.String())
	table.Row("online_prepare", yesNo(opts.OnlinePrepare))
	table.Row("dump_intermediate_outputs", yesNo(opts.DumpIntermediateOutputs))
	table.Row("shared_buffer", yesNo(opts.SharedBuffer))
	table.Row("is_from_context_binary", yesNo(opts.IsFromContextBinary))
	if opts.Saver {
		table.Row("saver_output_dir", opts.SaverOutputDir)
	}
	fmt.Println(table.Render())

	if opts.OpPackages.Len() == 0 {
		return
	}
	fmt.Println(titleStyle.Render("Op Packages"))
	packages := newPlainTable(lipgloss.Left)
	packages.Headers("Name", "Custom Op", "QNN Op Type", "Target", "Platform", "Path")
	for _, info := range opts.OpPackages.Infos() {
		packages.Row(info.OpPackageName, info.CustomOpName, info.QNNOpTypeName, info.Target.String(),
			info.Platform.String(), info.OpPackagePath)
	}
	fmt.Println(packages.Render())
}

// registryOptions converts the -policy, -families and -parallelism flags to partition options.
func registryOptions() []partition.Option {
	policy, err := partition.PolicyString(*flagPolicy)
	must.M(errors.WithMessagef(err, "invalid -policy"))
	options := []partition.Option{partition.WithPolicy(policy), partition.WithParallelism(*flagParallelism)}
	var with, without []string
	for _, name := range strings.Split(*flagFamilies, ",") {
		name = strings.TrimSpace(name)
		switch {
		case name == "":
		case strings.HasPrefix(name, "-"):
			without = append(without, name[1:])
		default:
			with = append(with, name)
		}
	}
	if len(with) > 0 {
		options = append(options, partition.WithFamilies(with...))
	}
	if len(without) > 0 {
		options = append(options, partition.WithoutFamilies(without...))
	}
	return options
}

func partitionGraph(graphPath string) {
	g := must.M1(ir.LoadYAML(graphPath))
	reg := prometheus.NewRegistry()
	metrics := must.M1(partition.NewMetrics(reg))
	registry := partition.Build(append(registryOptions(), partition.WithMetrics(metrics))...)
	result := registry.Partition(g)

	fmt.Println(titleStyle.Render(fmt.Sprintf("Partition of %q (policy %s)", g.Name(), registry.Policy())))
	table := newTableWithReds(lipgloss.Left)
	table.Table.Headers("Node", "Delegated", "Verdict", "Rule", "Reason")
	for _, nd := range result.Nodes {
		d := nd.Decision
		reason := d.Reason
		if len(d.Requires) > 0 {
			reason = fmt.Sprintf("%s (requires %v)", reason, d.Requires)
		}
		table.Row(d.Verdict == partition.VerdictVeto, nd.Node.String(), yesNo(nd.Delegated), d.Verdict.String(), d.Rule, reason)
	}
	fmt.Println(table.Table.Render())
	fmt.Println(result.Summary())

	if klog.V(1).Enabled() {
		families := must.M1(reg.Gather())
		for _, family := range families {
			for _, metric := range family.GetMetric() {
				var labels []string
				for _, pair := range metric.GetLabel() {
					labels = append(labels, pair.GetName()+"="+pair.GetValue())
				}
				klog.Infof("%s{%s} = %g", family.GetName(), strings.Join(labels, ","), metric.GetCounter().GetValue())
			}
		}
	}
}
