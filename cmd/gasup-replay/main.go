package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/gasup/replay"
	"github.com/lixenwraith/gasup/store"
)

func main() {
	var (
		logPath = flag.String("log", "", "replay log to verify (.jsonl.zst)")
		dbPath  = flag.String("db", "", "score database to list runs from (optional)")
		top     = flag.Int("top", 10, "number of runs to list with -db")
	)
	flag.Parse()

	if *logPath == "" && *dbPath == "" {
		fmt.Fprintln(os.Stderr, "missing -log or -db")
		os.Exit(2)
	}

	if *logPath != "" {
		os.Exit(verify(*logPath))
	}
	os.Exit(listRuns(*dbPath, *top))
}

func verify(path string) int {
	r, err := replay.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open:", err)
		return 1
	}
	defer r.Close()

	h := r.Header
	fmt.Printf("replay v%d seed=%d best=%.2f\n", h.Version, h.Seed, h.Best)

	n, err := replay.Verify(r)
	var mismatch *replay.MismatchError
	switch {
	case errors.As(err, &mismatch):
		fmt.Printf("DIVERGED after %d ticks: %v\n", n, mismatch)
		return 1
	case err != nil:
		fmt.Fprintln(os.Stderr, "verify:", err)
		return 1
	}
	fmt.Printf("OK ticks=%d\n", n)
	return 0
}

func listRuns(path string, top int) int {
	st, err := store.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer st.Close()

	ctx := context.Background()
	best, err := st.Best(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	runs, err := st.Runs(ctx, top)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Printf("best altitude %.2f\n", best)
	for i, r := range runs {
		fmt.Printf("%3d  %8.2f  %-13s ticks=%-7d seed=%d  %s\n",
			i+1, r.Altitude, r.Reason, r.Ticks, r.Seed, r.EndedAt.Format("2006-01-02 15:04:05"))
	}
	return 0
}
