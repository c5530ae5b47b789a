package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/pprof"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/livesignals/livelist"
	"github.com/delaneyj/livesignals/watchable"
	"github.com/golang/glog"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	sizesKey   = "sizes"
	itersKey   = "iters"
	seedKey    = "seed"
	profileKey = "profile"
)

func main() {
	flag.Set("logtostderr", "true")
	// glog flags only; the command line belongs to cli
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure live list propagation through operator pipelines",
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:  sizesKey,
				Usage: "Source list sizes to benchmark",
				Value: []int64{10, 100, 1_000},
			},
			&cli.IntFlag{
				Name:  itersKey,
				Usage: "Mutations per benchmark",
				Value: 100,
			},
			&cli.IntFlag{
				Name:  seedKey,
				Usage: "Random seed for the mutation sequence",
				Value: 0,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		glog.Exit(err)
	}
}

type pipeline struct {
	name  string
	build func(rs *watchable.Repository, src *livelist.Source[int]) livelist.List[int]
	// extra mutation, run after every source mutation
	poke func(i int)
	// output order depends on mutation history, so digests compare sorted values
	unordered bool
}

func pipelines(rs *watchable.Repository) []pipeline {
	factor := watchable.Var(rs, 1).Named("factor")
	other := livelist.NewSource[int]()
	for i := 0; i < 16; i++ {
		other.Add(i)
	}

	return []pipeline{
		{
			name: "select",
			build: func(rs *watchable.Repository, src *livelist.Source[int]) livelist.List[int] {
				return livelist.Select(rs, src, func(x int) int { return x * 2 })
			},
		},
		{
			name: "where",
			build: func(rs *watchable.Repository, src *livelist.Source[int]) livelist.List[int] {
				return livelist.Where(rs, src, func(x int) bool { return x%2 == 0 })
			},
		},
		{
			name: "orderBy",
			build: func(rs *watchable.Repository, src *livelist.Source[int]) livelist.List[int] {
				return livelist.OrderByDescending(rs, src, func(x int) int { return x })
			},
		},
		{
			name: "concat",
			build: func(rs *watchable.Repository, src *livelist.Source[int]) livelist.List[int] {
				return livelist.Concat[int](src, src)
			},
		},
		{
			name: "groupBy",
			build: func(rs *watchable.Repository, src *livelist.Source[int]) livelist.List[int] {
				groups := livelist.GroupBy(rs, src, func(x int) int { return x % 16 })
				return livelist.Flatten(livelist.Select(rs, groups, func(g *livelist.Group[int, int]) livelist.List[int] {
					return g
				}))
			},
			unordered: true,
		},
		{
			name: "join",
			build: func(rs *watchable.Repository, src *livelist.Source[int]) livelist.List[int] {
				return livelist.Join(rs, src, other,
					func(x int) int { return x % 16 },
					func(y int) int { return y },
					func(x, y int) int { return x*100 + y },
				)
			},
			unordered: true,
		},
		{
			name: "select var",
			build: func(rs *watchable.Repository, src *livelist.Source[int]) livelist.List[int] {
				return livelist.Select(rs, src, func(x int) int { return x * factor.Value() })
			},
			poke: func(i int) {
				factor.SetValue(i%3 + 1)
			},
		},
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Int(itersKey))
	seed := cmd.Int(seedKey)

	tbl := table.NewWriter()
	tbl.SetTitle("Live list propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"pipeline", "size", "avg", "min", "p75", "p99", "max", "digest"})

	for _, size := range cmd.IntSlice(sizesKey) {
		rs := watchable.NewRepository()
		for _, p := range pipelines(rs) {
			glog.Infof("running %s with %d elements", p.name, size)
			row, err := benchmark(rs, p, int(size), iters, seed)
			if err != nil {
				return fmt.Errorf("%s/%d: %w", p.name, size, err)
			}
			tbl.AppendRow(row)
		}
		tbl.AppendSeparator()
	}

	tbl.Render()
	return nil
}

func benchmark(rs *watchable.Repository, p pipeline, size, iters int, seed int64) (table.Row, error) {
	if size < 1 {
		return nil, fmt.Errorf("size must be positive, got %d", size)
	}
	random := rand.New(rand.NewSource(seed))
	src := livelist.NewSource[int]()
	for i := 0; i < size; i++ {
		src.Add(random.Intn(size))
	}

	manifest := livelist.NewManifest(p.build(rs, src))
	cancel := manifest.Listen(func(livelist.Change[int]) {})
	defer cancel()

	tach := tachymeter.New(&tachymeter.Config{Size: iters})
	for i := 0; i < iters; i++ {
		start := time.Now()
		src.RemoveAt(random.Intn(src.Len()))
		src.Insert(random.Intn(src.Len()+1), random.Intn(size))
		if p.poke != nil {
			p.poke(i)
		}
		tach.AddTime(time.Since(start))
	}

	incremental := digest(manifest.Items(), p.unordered)
	bootstrap := digest(livelist.ToSlice(p.build(rs, src)), p.unordered)
	if incremental != bootstrap {
		return nil, fmt.Errorf("incremental digest %016x does not match bootstrap digest %016x", incremental, bootstrap)
	}

	calc := tach.Calc()
	return table.Row{
		p.name,
		size,
		calc.Time.Avg,
		calc.Time.Min,
		calc.Time.P75,
		calc.Time.P99,
		calc.Time.Max,
		fmt.Sprintf("%016x", incremental),
	}, nil
}

func digest(values []int, unordered bool) uint64 {
	if unordered {
		values = slices.Clone(values)
		slices.Sort(values)
	}
	h := xxhash.New()
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	return h.Sum64()
}
