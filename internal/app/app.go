package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/mattbran/cinema-ticket-service/internal/booking"
	"github.com/mattbran/cinema-ticket-service/internal/domain"
	"github.com/mattbran/cinema-ticket-service/internal/payment"
	"github.com/mattbran/cinema-ticket-service/internal/ticketing"
	appvalidator "github.com/mattbran/cinema-ticket-service/internal/validator"
	"github.com/mattbran/cinema-ticket-service/internal/vcs"
	"github.com/stripe/stripe-go/v82"
)

var (
	version = vcs.Version()
)

type application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate

	ticketService *ticketing.TicketService
}

type config struct {
	port int
	env  string

	stripe struct {
		secretKey string
		currency  string
	}

	booking struct {
		url     string
		timeout time.Duration
	}
}

func Run() error {
	var cfg config

	flag.IntVar(&cfg.port, "port", 3000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.stripe.secretKey, "stripe-key", "", "Stripe secret key (payments are accepted without charging when empty)")
	flag.StringVar(&cfg.stripe.currency, "stripe-currency", "gbp", "Stripe payment currency")

	flag.StringVar(&cfg.booking.url, "booking-url", "http://localhost:8081", "Seat booking gateway base URL")
	flag.DurationVar(&cfg.booking.timeout, "booking-timeout", 10*time.Second, "Seat booking gateway request timeout")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	validator := appvalidator.NewValidator()

	var paymentService domain.PaymentService
	if cfg.stripe.secretKey != "" {
		stripe.Key = cfg.stripe.secretKey
		paymentService = payment.NewStripeGateway(cfg.stripe.currency)
	} else {
		paymentService = payment.NewNoopGateway(logger)
	}

	reservationService := booking.NewClient(cfg.booking.url, cfg.booking.timeout)

	app := &application{
		config:        cfg,
		logger:        logger,
		validator:     validator,
		ticketService: ticketing.NewTicketService(paymentService, reservationService),
	}

	return app.run()
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)

	r.Get("/health", app.GetHealth)
	r.Post("/purchases", app.CreatePurchaseHandler)

	return r
}
