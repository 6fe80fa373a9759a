// Command probe checks connectivity to the backing store and to a deployed
// /api/projects handler, printing a human-readable report.
//
//	probe -store
//	probe -endpoint https://scout-interest.example.app/api/projects
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alanyang/scout-interest/internal/config"
)

func main() {
	store := flag.Bool("store", false, "ping the configured backing store and list projects")
	endpoint := flag.String("endpoint", "", "URL of a deployed /api/projects handler to call")
	timeout := flag.Duration("timeout", 15*time.Second, "overall timeout for all probes")
	flag.Parse()

	if !*store && *endpoint == "" {
		fmt.Fprintln(os.Stderr, "nothing to probe: pass -store and/or -endpoint")
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	failed := false
	if *store {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stdout, "config: FAIL %v\n", err)
			os.Exit(1)
		}
		if err := probeStore(ctx, cfg, os.Stdout); err != nil {
			fmt.Fprintf(os.Stdout, "store: FAIL %v\n", err)
			failed = true
		}
	}
	if *endpoint != "" {
		if err := probeEndpoint(ctx, http.DefaultClient, *endpoint, os.Stdout); err != nil {
			fmt.Fprintf(os.Stdout, "endpoint: FAIL %v\n", err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
