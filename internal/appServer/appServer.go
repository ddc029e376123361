// launching the server, word pool, AI clients and event publisher
package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/word-blender/config"
	"github.com/ds124wfegd/word-blender/internal/pkg/openai"
	"github.com/ds124wfegd/word-blender/internal/pkg/together"
	"github.com/ds124wfegd/word-blender/internal/service"
	"github.com/ds124wfegd/word-blender/internal/transport"
	"github.com/ds124wfegd/word-blender/internal/wordpool"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// App holds everything NewServer wires together.
type App struct {
	Handler   http.Handler
	Events    *service.EventEmitter
	Publisher service.EventPublisher
}

// Build wires the word pool, AI clients, services and routes from configuration.
func Build(cfg *config.Config) (*App, error) {
	for _, key := range cfg.MissingCredentials() {
		logrus.WithField("env", key).Warn("API key not set; dependent requests will fail")
	}

	words := cfg.Words.Pool
	if len(words) == 0 {
		words = wordpool.DefaultWords()
	}
	pool, err := wordpool.New(words)
	if err != nil {
		return nil, err
	}
	if pool.Len() < cfg.App.WordsPerRound {
		logrus.WithFields(logrus.Fields{
			"pool_size":       pool.Len(),
			"words_per_round": cfg.App.WordsPerRound,
		}).Warn("word pool is smaller than one round; /words will fail")
	}

	chat := openai.NewClient(openai.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
		MaxTokens:   cfg.OpenAI.MaxTokens,
	})
	images := together.NewClient(together.Config{
		APIKey:        cfg.Image.APIKey,
		BaseURL:       cfg.Image.BaseURL,
		Model:         cfg.Image.Model,
		Width:         cfg.Image.Width,
		Height:        cfg.Image.Height,
		Steps:         cfg.Image.Steps,
		VerifyPayload: cfg.Image.VerifyPayload,
	})

	publisher := newEventPublisher(cfg.Events)
	events := service.NewEventEmitter(publisher, cfg.Events.Timeout)

	handler := transport.NewGameHandler(
		service.NewWordService(pool, cfg.App.WordsPerRound),
		service.NewBlendService(chat, events),
		service.NewImageService(images, events, &service.ImageServiceConfig{Styles: cfg.Image.Styles}),
	)

	router := transport.InitRoutes(handler, transport.Options{
		TemplatesDir:  existingDir(cfg.Web.TemplatesDir),
		StaticDir:     existingDir(cfg.Web.StaticDir),
		GzipMinLength: cfg.App.GzipMinLength,
	})

	return &App{Handler: router, Events: events, Publisher: publisher}, nil
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(new(logrus.JSONFormatter))
	if level, err := logrus.ParseLevel(cfg.Server.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := Build(cfg)
	if err != nil {
		logrus.Fatalf("error occured while building app: %s", err.Error())
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, app.Handler); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.WithField("port", cfg.Server.Port).Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}

	app.Events.Wait()
	if err := app.Publisher.Close(); err != nil {
		logrus.Errorf("error occured on event publisher closing: %s", err.Error())
	}
}

// existingDir returns dir if it is a directory, otherwise "" so the route is skipped.
func existingDir(dir string) string {
	if dir == "" {
		return ""
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logrus.WithField("dir", dir).Warn("web directory not found; route disabled")
		return ""
	}
	return dir
}
