package main

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"runway-engine/internal/handler"
	"runway-engine/internal/logging"
	"runway-engine/internal/memo"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = a.cfg.Port
			}
			log := logging.New("server")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cache := memo.New(nil, a.cfg.CacheEntries)
			h := handler.New(cache.Compute, a.cfg.MaxParallel).WithBaseContext(ctx)
			srv := &fasthttp.Server{
				Handler: h.Serve,
				Name:    "runway-engine",
			}

			errc := make(chan error, 1)
			go func() {
				log.Info("runway engine starting", "port", port)
				errc <- srv.ListenAndServe(":" + strconv.Itoa(port))
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}

			hits, misses := cache.Stats()
			log.Info("shutting down", "cache_hits", hits, "cache_misses", misses)
			return srv.ShutdownWithContext(context.Background())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default from PORT, else 8080)")
	return cmd
}
