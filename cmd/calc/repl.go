package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/core"
	"github.com/comalice/calcx/internal/extensibility"
	"github.com/comalice/calcx/internal/logfields"
	"github.com/comalice/calcx/internal/metrics"
	"github.com/comalice/calcx/internal/production"
)

// ReplCmd implements the 'repl' command.
type ReplCmd struct {
	MetricsListen string `help:"Serve Prometheus metrics on this address (overrides config)"`
}

// Run executes the repl command. It returns when stdin is exhausted or the
// process is interrupted.
func (r *ReplCmd) Run(g *Globals) error {
	sess, err := g.setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	listen := sess.cfg.Metrics.Listen
	if r.MetricsListen != "" {
		listen = r.MetricsListen
	}
	if listen != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.HTTPHandler(reg))
		srv := &http.Server{Addr: listen, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				sess.logger.Error("metrics server failed", logfields.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	src := extensibility.NewReaderEventSource(ctx, g.In,
		extensibility.WithSourceLogger(sess.logger),
		extensibility.WithLineErrorHandler(func(line string, err error) {
			fmt.Fprintf(g.ErrOut, "? %v\n", err)
		}))

	changes := make(chan production.PublishedChange, 256)
	calc := calcx.New()
	m := core.NewMachine(calc,
		core.WithEventSource(src),
		core.WithPublisher(production.NewChannelPublisher(changes)),
		core.WithRecorder(recorder),
		core.WithLogger(sess.logger),
		core.WithQueueSize(sess.cfg.QueueSize),
	)
	unsubscribe := calc.Subscribe(extensibility.LoggingObserver(sess.logger, nil))
	defer unsubscribe()

	fmt.Fprintln(g.Out, sess.formatter.Render(calc.State()))

	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for change := range changes {
			if change.Metadata.Changed {
				fmt.Fprintln(g.Out, sess.formatter.Render(change.State))
			}
		}
	}()

	if err := m.Start(); err != nil {
		return err
	}
	waitErr := m.Wait(ctx)
	if err := m.Stop(); err != nil {
		return err
	}
	<-printed

	if waitErr != nil && !errors.Is(waitErr, context.Canceled) {
		return waitErr
	}
	if err := src.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
