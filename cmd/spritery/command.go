package main

import (
	"flag"
	"fmt"
	"strconv"
)

// command is the part every subcommand shares: the root settings and its
// own flag set.
type command struct {
	*root
	fs   *flag.FlagSet
	name string
}

func newCommand(r *root, name string) command {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if r != nil {
		fs.SetOutput(r.stderr)
	}
	return command{root: r, fs: fs, name: name}
}

func (c command) FlagSet() *flag.FlagSet { return c.fs }

func (c command) Program() string {
	if c.root == nil {
		return c.name
	}
	return c.subcommand(c.name)
}

// expectInts parses exactly n integer arguments for op.
func expectInts(args []string, n int, op string) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d integer arguments", op, n)
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q", op, a)
		}
		out[i] = v
	}
	return out, nil
}
