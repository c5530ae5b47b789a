package main

//go:generate qtc -dir=templates

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/urfave/cli/v3"
)

const (
	inKey      = "in"
	outKey     = "out"
	packageKey = "package"
)

func main() {
	flag.Set("logtostderr", "true")
	// glog flags only; the command line belongs to cli
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		glog.Exit(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "modelgen",
		Usage: "Generate watchable models from a yaml description",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     inKey,
				Usage:    "yaml file describing the models",
				Required: true,
			},
			&cli.StringFlag{
				Name:     outKey,
				Usage:    "Go file to write",
				Required: true,
			},
			&cli.StringFlag{
				Name:  packageKey,
				Usage: "package name, overrides the one in the yaml file",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	in, out := cmd.String(inKey), cmd.String(outKey)

	raw, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}
	f, err := load(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if pkg := cmd.String(packageKey); pkg != "" {
		f.Package = pkg
	}

	contents, err := generate(f)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if err := os.WriteFile(out, []byte(contents), 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	glog.Infof("generated %d models into %s in %v", len(f.Models), out, time.Since(start))
	return nil
}
