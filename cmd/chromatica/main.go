// Command chromatica reads an undirected graph from a file or stdin,
// computes its chromatic number, and prints the color count followed by
// one "label color" line per vertex in canonical label order.
//
// Usage:
//
//	chromatica [flags] [graph-file]
//
// Flags:
//
//	-approx          greedy upper bound only (fast, not necessarily optimal)
//	-hoffman         compute the spectral lower bound and feed it to the search
//	-timeout <dur>   soft time budget for the exact search (0 = none)
//
// Diagnostics go to stderr via klog; results go to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/chromatica/bound"
	"github.com/katalvlaran/chromatica/chromatic"
	"github.com/katalvlaran/chromatica/graphio"
	"github.com/katalvlaran/chromatica/greedy"
	"github.com/katalvlaran/chromatica/labeling"
)

var (
	approx  = flag.Bool("approx", false, "greedy upper bound only, skip the exact search")
	hoffman = flag.Bool("hoffman", false, "compute the Hoffman lower bound and use it for early exit")
	timeout = flag.Duration("timeout", 0, "soft time budget for the exact search (0 = unlimited)")
)

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "1")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	flag.Parse()
	defer klog.Flush()

	var in io.Reader = os.Stdin
	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			klog.Fatalf("open %s: %v", path, err)
		}
		defer f.Close()
		in = f
	}

	g, labels, err := graphio.Read(in)
	if err != nil {
		klog.Fatalf("read graph: %v", err)
	}
	klog.Infof("graph: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())

	var (
		colors   int
		coloring []int
	)
	if *approx {
		colors, coloring, err = greedy.UpperBound(g, greedy.Order(g))
		if err != nil {
			klog.Fatalf("greedy bound: %v", err)
		}
		klog.Infof("greedy upper bound: %d colors", colors)
	} else {
		var opts []chromatic.Option
		if *timeout > 0 {
			opts = append(opts, chromatic.WithTimeLimit(*timeout))
		}
		if *hoffman {
			lb, berr := bound.Hoffman(g)
			if berr != nil {
				klog.Warningf("hoffman bound unavailable: %v", berr)
			} else {
				klog.Infof("hoffman lower bound: %d", lb)
				opts = append(opts, chromatic.WithLowerBound(lb))
			}
		}

		start := time.Now()
		res, serr := chromatic.ChromaticNumber(g, opts...)
		switch {
		case errors.Is(serr, chromatic.ErrTimeLimit):
			klog.Warningf("time budget exhausted after %s; reporting best coloring found (%d colors, not proven optimal)",
				time.Since(start), res.Colors)
		case serr != nil:
			klog.Fatalf("exact search: %v", serr)
		default:
			klog.Infof("chromatic number %d proven in %s", res.Colors, time.Since(start))
		}
		colors, coloring = res.Colors, res.Coloring
	}

	pairs, err := labeling.Assemble(labels, coloring)
	if err != nil {
		klog.Fatalf("assemble result: %v", err)
	}

	fmt.Println(colors)
	for _, vc := range pairs {
		fmt.Printf("%s %d\n", vc.Label, vc.Color)
	}
}
