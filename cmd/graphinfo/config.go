// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/graphlib/core"
)

// description is the TOML form of a graph to build:
//
//	nodes    = 3
//	directed = false
//	labels   = ["a", "b", "c"]
//	edges    = [[0, 1], [1, 2]]
//	matrix   = [[0, 1, 0], [1, 0, 1], [0, 1, 0]]
//
//	[[weights]]
//	from   = 0
//	to     = 1
//	weight = 5.0
//
// When both matrix and edges are present, matrix wins.
type description struct {
	Nodes    int          `toml:"nodes"`
	Directed bool         `toml:"directed"`
	Labels   []string     `toml:"labels"`
	Edges    [][]int      `toml:"edges"`
	Matrix   [][]int      `toml:"matrix"`
	Weights  []weightSpec `toml:"weights"`
}

type weightSpec struct {
	From   int     `toml:"from"`
	To     int     `toml:"to"`
	Weight float64 `toml:"weight"`
}

// loadDescription decodes a TOML graph description from filename.
func loadDescription(filename string) (*description, error) {
	var desc description
	if _, err := toml.DecodeFile(filename, &desc); err != nil {
		return nil, fmt.Errorf("could not decode TOML graph description: %v", err)
	}

	return &desc, nil
}

// pairs converts the TOML edge rows into core pairs.
func (d *description) pairs() ([]core.Pair, error) {
	out := make([]core.Pair, 0, len(d.Edges))
	for i, e := range d.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("edges[%d]: want [from, to], got %v", i, e)
		}
		out = append(out, core.Pair{From: e[0], To: e[1]})
	}

	return out, nil
}

// parsePairs parses "0-1,1-2" into pairs. An empty string yields no pairs.
func parsePairs(s string) ([][]int, error) {
	var out [][]int
	for _, field := range splitList(s, ",") {
		p, err := parsePair(field)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// parsePair parses "u-v".
func parsePair(s string) ([]int, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return nil, fmt.Errorf("bad pair %q: want u-v", s)
	}
	u, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return nil, fmt.Errorf("bad pair %q: %v", s, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return nil, fmt.Errorf("bad pair %q: %v", s, err)
	}

	return []int{u, v}, nil
}

// parseMatrix parses "0,1;1,0": rows separated by ';', entries by ','.
func parseMatrix(s string) ([][]int, error) {
	var out [][]int
	for i, row := range splitList(s, ";") {
		var parsed []int
		for _, cell := range splitList(row, ",") {
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("matrix row %d: %v", i, err)
			}
			parsed = append(parsed, v)
		}
		out = append(out, parsed)
	}

	return out, nil
}

// parseWeights parses "0-1:5,1-2:2.5".
func parseWeights(s string) ([]weightSpec, error) {
	var out []weightSpec
	for _, field := range splitList(s, ",") {
		pair, raw, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("bad weight %q: want u-v:w", field)
		}
		p, err := parsePair(pair)
		if err != nil {
			return nil, err
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("bad weight %q: %v", field, err)
		}
		out = append(out, weightSpec{From: p[0], To: p[1], Weight: w})
	}

	return out, nil
}

// splitList splits s on sep, trimming blanks and dropping empty fields.
func splitList(s, sep string) []string {
	var out []string
	for _, f := range strings.Split(s, sep) {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}

	return out
}
