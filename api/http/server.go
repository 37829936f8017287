package http

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/api/http/handler"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/candle"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/detector"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/infra"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/infra/ws"
	"github.com/SRAVANTAMARANA/astro-ict-charting-panel/signals"
)

type Server struct {
	srv http.Server
}

// NewRouter assembles the facade. Only /signals/add mutates state and only it
// sits behind the shared-secret check.
func NewRouter(
	conf infra.Config,
	candleService *candle.Service,
	signalService *signals.Service,
	detectorService *detector.Service,
	scheduler *detector.Scheduler,
	hub *ws.Hub,
) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestID, RequestLogger)

	candleHandler := handler.NewCandleHandler(
		candleService,
		conf.Provider.TwelveDataKey != "",
		conf.Provider.FinnhubKey != "",
	)
	signalHandler := handler.NewSignalHandler(signalService)
	detectHandler := handler.NewDetectHandler(detectorService, scheduler)

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	router.HandleFunc("/config", candleHandler.GetConfig).Methods(http.MethodGet)
	router.HandleFunc("/candles", candleHandler.GetCandles).Methods(http.MethodGet)
	router.HandleFunc("/maxmin", candleHandler.GetMaxMin).Methods(http.MethodGet)
	router.HandleFunc("/signals", signalHandler.List).Methods(http.MethodGet)
	router.Handle(
		"/signals/add",
		Auth(conf.Signals.Token)(http.HandlerFunc(signalHandler.Add)),
	).Methods(http.MethodPost)
	router.HandleFunc("/detect", detectHandler.Detect).Methods(http.MethodPost)
	router.HandleFunc("/scheduler/start", detectHandler.SchedulerStart).Methods(http.MethodPost)
	router.HandleFunc("/scheduler/stop", detectHandler.SchedulerStop).Methods(http.MethodPost)
	router.HandleFunc("/ws/signals", hub.ServeWS)

	return CORS(router)
}

func NewServer(
	conf infra.Config,
	candleService *candle.Service,
	signalService *signals.Service,
	detectorService *detector.Service,
	scheduler *detector.Scheduler,
	hub *ws.Hub,
) *Server {
	return &Server{
		srv: http.Server{
			Addr: fmt.Sprintf(":%d", conf.HTTP.Port),
			Handler: NewRouter(
				conf,
				candleService,
				signalService,
				detectorService,
				scheduler,
				hub,
			),
		},
	}
}

func (s *Server) Start(ctx context.Context) {
	s.srv.BaseContext = func(listener net.Listener) context.Context {
		return ctx
	}
	go func() {
		log.WithField("addr", s.srv.Addr).Info("http server started")
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("http server stopped")
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	if err := s.srv.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("http server shutdown")
	}
}
