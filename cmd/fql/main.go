// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Command fql evaluates an FQL query against a stream of records,
// printing the fields of every matching record.
package main

import (
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/kvrecs/fql"
	"github.com/kvrecs/fql/recsparser"
)

type cliOpts struct {
	Positional struct {
		Query     string `positional-arg-name:"query"`
		InputPath string `positional-arg-name:"input-path"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts cliOpts
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "<query> [<input-path>]"

	if _, err := parser.ParseArgs(args); err != nil || opts.Positional.Query == "" {
		fmt.Fprintf(stderr, "Usage: %s\n", parser.Usage)
		return 1
	}

	query, err := fql.Parse(opts.Positional.Query)
	if err != nil {
		fmt.Fprintf(stderr, "Exception: %s\n", err)
		return 1
	}

	input := stdin
	if opts.Positional.InputPath != "" {
		f, err := os.Open(opts.Positional.InputPath)
		if err != nil {
			fmt.Fprintf(stderr, "Exception: Can not open file '%s'\n", opts.Positional.InputPath)
			return 1
		}
		defer f.Close()
		input = f
	}

	if err := drive(query, input, stdout); err != nil {
		fmt.Fprintf(stderr, "Exception: %s\n", err)
		return 1
	}
	return 0
}

// drive streams records from r, evaluates query.Where against each, and
// prints the projection of every match to w.
func drive(query *fql.Query, r io.Reader, w io.Writer) error {
	p, err := recsparser.New(r, query.InterestingFields())
	if err != nil {
		return err
	}

	for p.Next() {
		rec := p.Current()
		if !query.Where.Match(rec) {
			continue
		}
		for _, n := range query.Projection {
			v := rec.Get(n)
			if v.IsNull() {
				continue
			}
			fmt.Fprintf(w, "%s: %s\n", n.String(), v.Raw())
		}
		fmt.Fprintln(w)
	}
	return p.Err()
}
