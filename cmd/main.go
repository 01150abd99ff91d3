package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminSessionHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/admin_session"
	createReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_availability"
	getQuoteHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_quote"
	getReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_reservations"
	reservationActionsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/reservation_actions"
	selectDatesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/select_dates"
	validatePromoHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/validate_promo"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	"github.com/m04kA/SMC-RentalService/internal/infra/events"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	sessionStore "github.com/m04kA/SMC-RentalService/internal/infra/storage/session"
	"github.com/m04kA/SMC-RentalService/internal/integrations/authservice"
	"github.com/m04kA/SMC-RentalService/internal/integrations/mailer"
	"github.com/m04kA/SMC-RentalService/internal/integrations/promoservice"
	"github.com/m04kA/SMC-RentalService/internal/integrations/smoobu"
	"github.com/m04kA/SMC-RentalService/internal/integrations/stripe"
	"github.com/m04kA/SMC-RentalService/internal/service/access"
	"github.com/m04kA/SMC-RentalService/internal/service/availability"
	"github.com/m04kA/SMC-RentalService/internal/service/pricing"
	"github.com/m04kA/SMC-RentalService/internal/service/promo"
	"github.com/m04kA/SMC-RentalService/internal/service/reservations"
	"github.com/m04kA/SMC-RentalService/internal/service/session"
	createReservationUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
	getQuoteUC "github.com/m04kA/SMC-RentalService/internal/usecase/get_quote"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RentalService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis (сессии оператора и события)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	cancelPing()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Репозиторий бронирований (с метриками или без)
	var reservationRepository *reservationRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
	}

	// Инициализируем интеграционных клиентов
	smoobuClient := smoobu.NewClient(
		cfg.Smoobu.URL,
		cfg.Smoobu.APIKey,
		cfg.Smoobu.ApartmentID,
		cfg.Smoobu.ChannelID,
		time.Duration(cfg.Smoobu.Timeout)*time.Second,
		log,
	)
	stripeClient := stripe.NewClient(
		cfg.Stripe.URL,
		cfg.Stripe.SecretKey,
		cfg.Stripe.SuccessURL,
		time.Duration(cfg.Stripe.Timeout)*time.Second,
		log,
	)
	promoClient := promoservice.NewClient(
		cfg.Promo.URL,
		time.Duration(cfg.Promo.Timeout)*time.Second,
		log,
	)
	mail := mailer.New(mailer.Settings{
		Host:          cfg.Mail.Host,
		Port:          cfg.Mail.Port,
		Username:      cfg.Mail.Username,
		Password:      cfg.Mail.Password,
		FromName:      cfg.Mail.FromName,
		OperatorEmail: cfg.Mail.OperatorEmail,
		PublicURL:     cfg.Server.PublicURL,
	}, log)
	if !mail.Enabled() {
		log.Warn("SMTP is not configured, emails will only be logged")
	}
	authService := authservice.NewService(
		cfg.Auth.JWTSecret,
		cfg.Auth.AdminPasswordHash,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)
	publisher := events.NewPublisher(redisClient, cfg.Redis.EventsChannel, log)
	log.Info("Integration clients initialized (Smoobu=%s, Stripe=%s, Promo=%s)",
		cfg.Smoobu.URL, cfg.Stripe.URL, cfg.Promo.URL)

	// Инициализируем сервисы
	availabilitySvc := availability.NewService(smoobuClient, availability.NewIndex(), log)
	pricingEngine := pricing.NewEngine(cfg.Pricing.ToDomain())
	promoValidator := promo.NewValidator(promoClient, log)

	sessionTimeout := time.Duration(cfg.Session.TimeoutSeconds) * time.Second
	sessionGuard := session.NewGuard(
		sessionStore.NewStore(redisClient),
		session.RealTimeProvider{},
		sessionTimeout,
		time.Duration(cfg.Session.WarningSeconds)*time.Second,
		log,
	)
	accessGuard := access.NewGuard(reservationRepository, authService, sessionGuard, log)

	reservationSvc := reservations.NewService(
		reservationRepository,
		stripeClient,
		mail,
		smoobuClient,
		publisher,
		metricsCollector,
		&reservations.RealTimeProvider{},
		cfg.Pricing.Currency,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		availabilitySvc,
		availabilitySvc.Index(),
		pricingEngine,
		promoValidator,
		mail,
		publisher,
		log,
	)
	getQuoteUseCase := getQuoteUC.NewUseCase(
		availabilitySvc,
		availabilitySvc.Index(),
		pricingEngine,
		promoValidator,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	selectDates := selectDatesHandler.NewHandler(availabilitySvc.Index(), log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	validatePromo := validatePromoHandler.NewHandler(promoValidator, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	reservationActions := reservationActionsHandler.NewHandler(reservationSvc, log)
	adminSession := adminSessionHandler.NewHandler(
		authService,
		sessionGuard,
		adminSessionHandler.CookieSettings{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure},
		sessionTimeout,
		log,
	)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/selection/click", selectDates.Handle).Methods(http.MethodPost)
	api.HandleFunc("/quotes", getQuote.Handle).Methods(http.MethodPost)
	api.HandleFunc("/promo-codes/validate", validatePromo.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Вход и таймаут бездействия оператора (bearer проверяется в handler)
	api.HandleFunc("/admin/login", adminSession.Login).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", adminSession.Logout).Methods(http.MethodPost)
	api.HandleFunc("/admin/session", adminSession.Status).Methods(http.MethodGet)
	api.HandleFunc("/admin/session/activity", adminSession.Activity).Methods(http.MethodPost)
	api.HandleFunc("/admin/session/extend", adminSession.Extend).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (токен ссылки из письма или сессия оператора)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Access(accessGuard, cfg.Session.CookieName))

	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/approve", reservationActions.Approve).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/reject", reservationActions.Reject).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/mark-paid", reservationActions.MarkPaid).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/resend-payment", reservationActions.ResendPayment).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/status", reservationActions.UpdateStatus).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
