package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/buildbarn/bb-defrag/pkg/blockstore"
	"github.com/buildbarn/bb-defrag/pkg/compactor"
	"github.com/buildbarn/bb-storage/pkg/program"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"go.opentelemetry.io/otel"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// This tool compacts the blocks of a medium whose layout is described
// by a disk map: a sequence of digits that alternately denote the
// length of a file and the length of the free space following it.
//
// Compaction may either take place at the block level, where individual
// blocks of files are moved to the leftmost free block, or at the file
// level, where files are moved as a whole to the leftmost free space
// that is large enough. For each policy, a checksum of the resulting
// layout is printed.

func main() {
	policyName := pflag.String("policy", "all", "Compaction policy to apply: \"unit\", \"file\" or \"all\"")
	metricsOutput := pflag.String("metrics-output", "", "Write Prometheus metrics to this file upon completion")
	verbose := pflag.Bool("verbose", false, "Log every relocation decision made by the file compactor")
	pflag.Parse()

	program.RunMain(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if pflag.NArg() != 1 {
			return status.Error(codes.InvalidArgument, "Usage: bb_defrag [--policy=unit|file|all] [--metrics-output=path] [--verbose] input.txt")
		}

		policies := compactor.AllPolicies
		if *policyName != "all" {
			policy, err := compactor.ParsePolicy(*policyName)
			if err != nil {
				return err
			}
			policies = []compactor.Policy{policy}
		}

		inputPath := pflag.Arg(0)
		f, err := os.Open(inputPath)
		if err != nil {
			return util.StatusWrapf(err, "Failed to open %#v", inputPath)
		}
		store, err := blockstore.ReadDiskMap(f)
		f.Close()
		if err != nil {
			return util.StatusWrapf(err, "Failed to load %#v", inputPath)
		}

		logger := log.New(os.Stderr, "", log.LstdFlags)
		runner := compactor.NewRunner(
			otel.GetTracerProvider(),
			func(policy compactor.Policy) compactor.Observer {
				observer := compactor.NopObserver
				if *verbose {
					observer = compactor.NewLoggingObserver(observer, logger, policy)
				}
				return compactor.NewMetricsObserver(observer, policy)
			})
		results, err := runner.Run(ctx, store, policies)
		if err != nil {
			return err
		}
		for _, result := range results {
			fmt.Printf("%s compactor checksum: %d\n", result.Policy, result.Checksum)
		}

		if *metricsOutput != "" {
			if err := prometheus.WriteToTextfile(*metricsOutput, prometheus.DefaultGatherer); err != nil {
				return util.StatusWrapf(err, "Failed to write metrics to %#v", *metricsOutput)
			}
		}
		return nil
	})
}
