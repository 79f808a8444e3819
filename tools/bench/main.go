// Command bench measures vec.Array against other growable containers
// on an append-then-scan workload and a middle-insert workload. Every
// backend digests its enumeration output so a mismatch in element
// order across containers fails the run. Results are printed as JSON
// entries suitable for plotting.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"time"

	"github.com/benbjohnson/immutable"
	"github.com/docker/go-units"
	"github.com/felixge/fgprof"
	"github.com/gernest/vec"
	"github.com/gernest/vec/internal/checksum"
	"github.com/google/btree"
	"golang.org/x/sync/errgroup"
)

type model struct {
	Name    string  `json:"name"`
	Unit    string  `json:"unit"`
	Step    float64 `json:"step"`
	Entries []entry `json:"entries"`
}

type entry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type workload struct {
	name string
	run  func(n int) uint64 // returns the enumeration digest
}

func main() {
	n := flag.Int("n", 1<<20, "elements for the append workload")
	inserts := flag.Int("inserts", 1<<14, "elements for the middle-insert workload")
	parallel := flag.Int("parallel", 8, "independent array instances for the isolation pass")
	profile := flag.String("profile", "", "write an fgprof profile to this file")
	flag.Parse()

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			slog.Error("creating profile", "path", *profile, "err", err)
			os.Exit(1)
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				slog.Error("stopping profile", "err", err)
			}
			f.Close()
		}()
	}

	appendScan := []workload{
		{"vec", appendVec},
		{"slice", appendSlice},
		{"immutable", appendImmutable},
		{"btree", appendBtree},
	}
	midInsert := []workload{
		{"vec", midInsertVec},
		{"slice", midInsertSlice},
	}

	out := []model{
		measure("append-scan", "ms", *n, appendScan),
		measure("mid-insert", "ms", *inserts, midInsert),
	}

	if err := isolation(*parallel, *n); err != nil {
		slog.Error("isolation pass", "err", err)
		os.Exit(1)
	}

	json.NewEncoder(os.Stdout).Encode(out)
}

// measure runs each workload sequentially so per-case allocation
// deltas stay attributable, and fails the run on any digest mismatch.
func measure(name, unit string, n int, cases []workload) model {
	m := model{Name: name, Unit: unit, Step: 50}
	var want uint64
	for i, c := range cases {
		runtime.GC()
		var m0, m1 runtime.MemStats
		runtime.ReadMemStats(&m0)
		start := time.Now()
		digest := c.run(n)
		elapsed := time.Since(start)
		runtime.ReadMemStats(&m1)

		if i == 0 {
			want = digest
		} else if digest != want {
			slog.Error("digest mismatch", "workload", name, "case", c.name)
			os.Exit(1)
		}
		slog.Info("measured",
			"workload", name,
			"case", c.name,
			"elapsed", elapsed,
			"alloc", units.BytesSize(float64(m1.TotalAlloc-m0.TotalAlloc)),
		)
		m.Entries = append(m.Entries, entry{
			Name:  c.name,
			Value: float64(elapsed) / float64(time.Millisecond),
		})
	}
	return m
}

// isolation builds k arrays concurrently, one per goroutine. Instances
// are fully independent; only sharing a single instance needs caller
// serialization.
func isolation(k, n int) error {
	want := appendVec(n)
	g := new(errgroup.Group)
	for range k {
		g.Go(func() error {
			if got := appendVec(n); got != want {
				return fmt.Errorf("instance digest %x, want %x", got, want)
			}
			return nil
		})
	}
	return g.Wait()
}

func appendVec(n int) uint64 {
	a := vec.New[uint64]()
	for i := range uint64(n) {
		a.PushBack(i)
	}
	return checksum.Uint64s(a.Values())
}

func appendSlice(n int) uint64 {
	var s []uint64
	for i := range uint64(n) {
		s = append(s, i)
	}
	return checksum.Uint64s(slices.Values(s))
}

func appendImmutable(n int) uint64 {
	l := immutable.NewList[uint64]()
	for i := range uint64(n) {
		l = l.Append(i)
	}
	return checksum.Uint64s(func(yield func(uint64) bool) {
		itr := l.Iterator()
		for !itr.Done() {
			if _, v := itr.Next(); !yield(v) {
				return
			}
		}
	})
}

func appendBtree(n int) uint64 {
	tr := btree.NewOrderedG[uint64](32)
	for i := range uint64(n) {
		tr.ReplaceOrInsert(i)
	}
	// Keys are sequential, so ascending order equals insertion order.
	return checksum.Uint64s(func(yield func(uint64) bool) {
		tr.Ascend(func(v uint64) bool { return yield(v) })
	})
}

func midInsertVec(n int) uint64 {
	a := vec.New[uint64]()
	for i := range uint64(n) {
		a.Insert(a.Len()/2, i)
	}
	return checksum.Uint64s(a.Values())
}

func midInsertSlice(n int) uint64 {
	var s []uint64
	for i := range uint64(n) {
		s = slices.Insert(s, len(s)/2, i)
	}
	return checksum.Uint64s(slices.Values(s))
}
