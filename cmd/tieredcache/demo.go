package main

import (
	"context"
	"errors"
	"fmt"
	tieredcache "github.com/Borislavv/go-tiered-cache"
	"github.com/Borislavv/go-tiered-cache/internal/metrics"
	"github.com/Borislavv/go-tiered-cache/model"
	"github.com/Borislavv/go-tiered-cache/payload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"net/http"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"
)

type demoOpts struct {
	iterations  int
	maxRows     int
	metricsAddr string
}

func newDemoCmd(a *app) *cobra.Command {
	o := &demoOpts{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the producer/renderer payload hand-off through the cache",
		Long: `Each iteration a producer stage builds a table of rows and stashes it,
then a renderer stage resolves the returned metadata back into rows.
Small tables travel inline, big ones go through the cache by key.

Examples:
  tieredcache demo --iterations 50 --max-rows 200
  tieredcache demo --metrics-addr :9090`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemo(cmd.Context(), o)
		},
	}
	cmd.Flags().IntVarP(&o.iterations, "iterations", "n", 20, "number of producer/renderer rounds")
	cmd.Flags().IntVar(&o.maxRows, "max-rows", 100, "upper bound of rows per generated table")
	cmd.Flags().StringVar(&o.metricsAddr, "metrics-addr", "", "serve prometheus /metrics on this address and wait for a signal")
	return cmd
}

func (a *app) runDemo(ctx context.Context, o *demoOpts) error {
	if o.iterations < 0 || o.maxRows < 1 {
		return fmt.Errorf("iterations must be >= 0 and max-rows >= 1, got %d and %d", o.iterations, o.maxRows)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	c := tieredcache.New(ctx, cfg, a.cacheLogger())
	defer c.Close()
	handoff := payload.New(c, cfg.Payload)

	var rendered, empty int
	for i := 0; i < o.iterations; i++ {
		meta := handoff.Stash(medalTable(i, 1+(i*37)%o.maxRows))
		a.log.Debug().
			Str("store_key", meta.StoreKey).
			Str("store_type", string(meta.StoreType)).
			Int("row_count", meta.RowCount).
			Msg("payload stashed")

		rows, ok := handoff.Fetch(meta)
		if !ok {
			empty++
			a.log.Warn().Str("store_key", meta.StoreKey).Msg("no data to render")
			continue
		}
		rendered++
		a.log.Info().
			Str("store_type", string(meta.StoreType)).
			Int("rows", len(rows)).
			Msg("table rendered")
	}
	a.log.Info().Int("rendered", rendered).Int("empty", empty).Msg("demo finished")

	if err = a.printStats(c.Metrics(), c.Fallbacks()); err != nil {
		return err
	}

	if o.metricsAddr == "" {
		return nil
	}
	return a.serveMetrics(ctx, o.metricsAddr, c)
}

func (a *app) printStats(stats []model.TierStats, fallbacks int64) error {
	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIER\tENTRIES\tCAPACITY\tHITS\tMISSES\tSETS\tEVICTIONS\tEXPIRATIONS")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			s.Tier, s.Entries, s.Capacity, s.Hits, s.Misses, s.Sets, s.Evictions, s.Expirations)
	}
	fmt.Fprintf(w, "unknown tier fallbacks: %d\n", fallbacks)
	return w.Flush()
}

func (a *app) serveMetrics(ctx context.Context, addr string, src metrics.Source) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(metrics.NewCollector(src)); err != nil {
		return fmt.Errorf("register cache collector: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	a.log.Info().Str("addr", addr).Msg("serving metrics, interrupt to stop")

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve metrics: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown metrics server: %w", err)
	}
	return nil
}

var countries = []string{"NO", "DE", "US", "SE", "AT", "CA", "CH", "FR", "NL", "JP"}

// medalTable builds a deterministic table in the shape the chart renderers expect.
func medalTable(seed, n int) []map[string]any {
	rows := make([]map[string]any, n)
	for i := range rows {
		rows[i] = map[string]any{
			"country": countries[(seed+i)%len(countries)],
			"gold":    (seed*7 + i*3) % 17,
			"silver":  (seed*5 + i*2) % 13,
			"bronze":  (seed*3 + i) % 11,
		}
	}
	return rows
}
