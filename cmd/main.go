package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	httpapi "github.com/SRAVANTAMARANA/astro-ict-charting-panel/api/http"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/candle"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/client/finnhub"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/client/twelvedata"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/detector"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/domain"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/infra"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/infra/broker"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/infra/ws"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/signals"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := infra.SetConfig("./.env")

	store, err := signals.NewStore(conf.Signals.File)
	if err != nil {
		log.WithError(err).Fatal("init signal store")
	}
	events := broker.NewInMemory()
	signalService := signals.NewService(store, events)

	cache, err := candle.NewCache(conf.Cache.Dir)
	if err != nil {
		log.WithError(err).Fatal("init candle cache")
	}

	timeout := time.Duration(conf.Provider.TimeoutSeconds) * time.Second
	var providers []domain.CandleProvider
	if conf.Provider.TwelveDataKey != "" {
		providers = append(providers, twelvedata.New(conf.Provider.TwelveDataKey, timeout))
	}
	if conf.Provider.FinnhubKey != "" {
		providers = append(providers, finnhub.New(conf.Provider.FinnhubKey, timeout))
	}
	candleService := candle.NewService(providers, cache)
	if candleService.Synthetic() {
		log.Warn("no provider key configured, serving synthetic candles")
	}

	detectorService := detector.NewService(candleService, signalService)
	scheduler := detector.NewScheduler(detectorService)

	hub := ws.NewHub()
	hub.SubscribeSignals(events)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		hub.Run(ctx)
		return nil
	})

	server := httpapi.NewServer(
		conf,
		candleService,
		signalService,
		detectorService,
		scheduler,
		hub,
	)
	server.Start(ctx)

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	<-signalCh

	scheduler.Stop()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	server.Stop(shutdownCtx)

	cancel()
	_ = group.Wait()
}
