// Package coach initializes and runs the context enrichment service: the
// geolocation → weather → chat-completion pipeline behind one HTTP endpoint.
package coach

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/hydrohabit/internal/coach/config"
	"github.com/dmitrijs2005/hydrohabit/internal/coach/encourage"
	"github.com/dmitrijs2005/hydrohabit/internal/coach/geo"
	"github.com/dmitrijs2005/hydrohabit/internal/coach/weather"
	"github.com/dmitrijs2005/hydrohabit/internal/coach/web"
	"github.com/dmitrijs2005/hydrohabit/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	svc    *encourage.Service
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	g := geo.NewClient(c.GeoEndpoint, c.RequestTimeout)
	w := weather.NewClient(c.WeatherEndpoint, c.RequestTimeout)
	chat := encourage.NewOpenAIChat(c.OpenAIKey, c.OpenAIModel)

	svc := encourage.NewService(g, w, chat)

	return &App{config: c, logger: logger, svc: svc}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := web.NewServer(app.config.EndpointAddrHTTP, app.logger, app.svc, app.config.AllowedOrigin)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
