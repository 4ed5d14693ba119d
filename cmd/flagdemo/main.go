// Command flagdemo parses a small service configuration from the command line
// and prints the result as YAML. It binds flags to a struct, to entries of an
// untyped map and to plain cells, so the same parser can be watched writing
// through each kind of reference.
//
//	flagdemo -listen :9000 -owner ops -replicas 3 -- extra args
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	flag "github.com/machship/flag/v2"
)

type config struct {
	Listen   string        `flag:"listen" default:":8080" help:"listen address" yaml:"listen"`
	Timeout  time.Duration `flag:"timeout" default:"30s" help:"request timeout" yaml:"timeout"`
	Limit    flag.ByteSize `flag:"limit" default:"1MiB" help:"largest accepted request body" yaml:"limit"`
	LogLevel string        `flag:"log-level" enum:"debug,info,warn,error" default:"info" help:"log verbosity" yaml:"log_level"`
	Tags     []string      `flag:"tags" help:"comma separated service tags" yaml:"tags,omitempty"`
}

type report struct {
	Config config         `yaml:"config"`
	Labels map[string]any `yaml:"labels"`
	Set    []string       `yaml:"set"`
	Args   []string       `yaml:"args,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("flagdemo", flag.ContinueOnError)
	// Errors are reported below, in colour; help still goes to stdout.
	fs.SetOutput(io.Discard)
	fs.SetHelpOutput(stdout)

	var cfg config
	if err := fs.BindStruct(&cfg); err != nil {
		fmt.Fprintln(stderr, color.RedString("flagdemo: %v", err))
		return 2
	}
	labels := map[string]any{}
	fs.StringVar(flag.Entry[string](labels, "owner"), "owner", "nobody", "service `owner`")
	fs.IntVar(flag.Entry[int](labels, "replicas"), "replicas", 1, "number of replicas")
	all := fs.Bool("all", false, "list every flag under set, not only those given")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, color.RedString("flagdemo: %v", err))
		fmt.Fprint(stderr, fs.UsageText())
		return 2
	}

	r := report{Config: cfg, Labels: labels, Set: []string{}, Args: fs.Args()}
	visit := fs.Visit
	if all.Get() {
		visit = fs.VisitAll
	}
	visit(func(f *flag.Flag) { r.Set = append(r.Set, f.Name+"="+f.Value.String()) })

	out, err := yaml.Marshal(r)
	if err != nil {
		fmt.Fprintln(stderr, color.RedString("flagdemo: %v", err))
		return 1
	}
	stdout.Write(out)
	return 0
}
