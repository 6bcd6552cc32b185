// SPDX-License-Identifier: MIT
// Command graphinfo builds a graph from flags or a TOML description and
// prints all of its representations as JSON.
//
// Usage:
//
//	graphinfo -nodes 3 -edges 0-1,1-2 -labels a,b,c -weights 0-1:5
//	graphinfo -matrix "0,1,0;1,0,1;0,1,0"
//	graphinfo -config graph.toml
//
// Flags given on the command line override values from -config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	exitOK    = 0
	exitUsage = 2
	exitBuild = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, builds the graph, and writes the JSON report to out.
// Logs go to errW. It returns the process exit code.
func run(args []string, out, errW io.Writer) int {
	flags := flag.NewFlagSet("graphinfo", flag.ContinueOnError)
	flags.SetOutput(errW)

	configFile := flags.String("config", "", "TOML graph description")
	nodes := flags.Int("nodes", 0, "number of nodes (edge-list input)")
	edges := flags.String("edges", "", "undirected edges, e.g. 0-1,1-2")
	matrixFlag := flags.String("matrix", "", "dense adjacency matrix, e.g. 0,1;1,0")
	labels := flags.String("labels", "", "node labels, e.g. a,b,c")
	weights := flags.String("weights", "", "edge weights, e.g. 0-1:5,1-2:2.5")
	directed := flags.Bool("directed", false, "report arcs instead of undirected pairs")
	logLevel := flags.String("log-level", "info", "zerolog level (debug, info, warn, error, disabled)")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(errW, "invalid -log-level %q: %v\n", *logLevel, err)
		return exitUsage
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: errW, NoColor: true}).
		Level(lvl).With().Timestamp().Str("cmd", "graphinfo").Logger()

	desc := &description{}
	if *configFile != "" {
		if desc, err = loadDescription(*configFile); err != nil {
			logger.Error().Err(err).Str("config", *configFile).Msg("load failed")
			return exitUsage
		}
		logger.Debug().Str("config", *configFile).Msg("loaded graph description")
	}

	// command-line overrides, applied only when set
	flags.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "nodes":
			desc.Nodes = *nodes
		case "directed":
			desc.Directed = *directed
		case "labels":
			desc.Labels = splitList(*labels, ",")
		case "edges":
			desc.Edges, err = parsePairs(*edges)
		case "matrix":
			desc.Matrix, err = parseMatrix(*matrixFlag)
		case "weights":
			desc.Weights, err = parseWeights(*weights)
		}
	})
	if err != nil {
		logger.Error().Err(err).Msg("invalid flags")
		return exitUsage
	}

	g, err := build(desc, logger)
	if err != nil {
		logger.Error().Err(err).Msg("build failed")
		return exitBuild
	}

	if err = writeReport(out, g); err != nil {
		logger.Error().Err(err).Msg("report failed")
		return exitBuild
	}

	return exitOK
}
