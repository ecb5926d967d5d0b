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

	"github.com/alexedwards/scs/v2"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/DaySeven-BookingService/internal/api/handlers/create_booking"
	getBlockedDatesHandler "github.com/m04kA/DaySeven-BookingService/internal/api/handlers/get_blocked_dates"
	getQuoteHandler "github.com/m04kA/DaySeven-BookingService/internal/api/handlers/get_quote"
	getSiteInfoHandler "github.com/m04kA/DaySeven-BookingService/internal/api/handlers/get_site_info"
	getSuiteHandler "github.com/m04kA/DaySeven-BookingService/internal/api/handlers/get_suite"
	listBookingsHandler "github.com/m04kA/DaySeven-BookingService/internal/api/handlers/list_bookings"
	listSuitesHandler "github.com/m04kA/DaySeven-BookingService/internal/api/handlers/list_suites"
	wizardHandler "github.com/m04kA/DaySeven-BookingService/internal/api/handlers/wizard"
	"github.com/m04kA/DaySeven-BookingService/internal/api/middleware"
	"github.com/m04kA/DaySeven-BookingService/internal/catalog"
	"github.com/m04kA/DaySeven-BookingService/internal/config"
	bookingRepo "github.com/m04kA/DaySeven-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/DaySeven-BookingService/internal/infra/storage/uploads"
	mpesaClient "github.com/m04kA/DaySeven-BookingService/internal/integrations/mpesa"
	resendClient "github.com/m04kA/DaySeven-BookingService/internal/integrations/resend"
	smtpClient "github.com/m04kA/DaySeven-BookingService/internal/integrations/smtpmail"
	bookingsService "github.com/m04kA/DaySeven-BookingService/internal/service/bookings"
	notificationService "github.com/m04kA/DaySeven-BookingService/internal/service/notification"
	createBookingUC "github.com/m04kA/DaySeven-BookingService/internal/usecase/create_booking"
	getQuoteUC "github.com/m04kA/DaySeven-BookingService/internal/usecase/get_quote"
	"github.com/m04kA/DaySeven-BookingService/pkg/dbmetrics"
	"github.com/m04kA/DaySeven-BookingService/pkg/logger"
	"github.com/m04kA/DaySeven-BookingService/pkg/metrics"
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

	log.Info("Starting %s booking service...", cfg.App.Name)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог номеров
	images := catalog.Images{
		Nomad:      cfg.Images.NomadSuite,
		Minimalist: cfg.Images.MinimalistSuite,
		Wellness:   cfg.Images.WellnessSuite,
		Pause:      cfg.Images.PauseSuite,
	}
	suites := catalog.Default(images)
	if cfg.Catalog.File != "" {
		suites, err = catalog.LoadFile(cfg.Catalog.File, images)
		if err != nil {
			log.Fatal("Failed to load catalog: %v", err)
		}
	}
	suiteCatalog, err := catalog.New(suites)
	if err != nil {
		log.Fatal("Invalid catalog: %v", err)
	}
	log.Info("Catalog loaded: %d suites", len(suiteCatalog.All()))

	// Все необязательные зависимости передаются в use case как nil интерфейсы,
	// типизированный nil указатель считался бы подключенной зависимостью
	var (
		createRepo    createBookingUC.BookingRepository
		readRepo      bookingsService.BookingRepository
		payments      createBookingUC.PaymentClient
		notifier      createBookingUC.Notifier
		bookingMetric createBookingUC.MetricsRecorder
	)

	if metricsCollector != nil {
		bookingMetric = metricsCollector
	}

	// Подключаемся к базе данных (если настроена)
	if cfg.Database.Enabled() {
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

		var repository *bookingRepo.Repository
		if cfg.Metrics.Enabled {
			repository = bookingRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			repository = bookingRepo.NewRepository(db)
		}
		createRepo = repository
		readRepo = repository
	} else {
		log.Warn("Database is not configured: bookings will not be stored")
	}

	// M-Pesa
	if cfg.Mpesa.Enabled() {
		payments = mpesaClient.NewClient(
			mpesaClient.BaseURLFor(cfg.Mpesa.IsProduction()),
			mpesaClient.Credentials{
				ConsumerKey:    cfg.Mpesa.ConsumerKey,
				ConsumerSecret: cfg.Mpesa.ConsumerSecret,
				Shortcode:      cfg.Mpesa.Shortcode,
				Passkey:        cfg.Mpesa.Passkey,
				CallbackURL:    cfg.Mpesa.CallbackURL,
			},
			time.Duration(cfg.Mpesa.Timeout)*time.Second,
			log,
		)
		log.Info("M-Pesa payments enabled (env=%s)", cfg.Mpesa.Env)
	} else {
		log.Warn("M-Pesa is not configured: payments are skipped")
	}

	// Почта: Resend, иначе SMTP
	var (
		sender    notificationService.EmailSender
		fromEmail string
	)
	switch {
	case cfg.Resend.Enabled():
		sender = resendClient.NewClient(cfg.Resend.BaseURL, cfg.Resend.APIKey,
			time.Duration(cfg.Resend.Timeout)*time.Second, log)
		fromEmail = cfg.Resend.FromEmail
		log.Info("Email notifications enabled via Resend")
	case cfg.SMTP.Enabled():
		sender = smtpClient.NewClient(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username,
			cfg.SMTP.Password, cfg.SMTP.FromEmail, log)
		fromEmail = cfg.SMTP.FromEmail
		log.Info("Email notifications enabled via SMTP (host=%s)", cfg.SMTP.Host)
	default:
		log.Warn("Email is not configured: notifications are skipped")
	}
	if sender != nil {
		notifier = notificationService.NewService(sender, notificationService.Settings{
			From:       fromEmail,
			OwnerEmail: cfg.Business.Email,
			AppName:    cfg.App.Name,
		}, log)
	}

	// Хранилище документов гостей
	documents, err := uploads.NewStorage(cfg.Uploads.Dir, cfg.Uploads.MaxFileSize)
	if err != nil {
		log.Fatal("Failed to prepare uploads dir: %v", err)
	}

	// Инициализируем сервисы и use cases
	bookingSvc := bookingsService.NewService(readRepo, log)
	createBookingUseCase := createBookingUC.NewUseCase(createRepo, payments, notifier, bookingMetric, log)
	getQuoteUseCase := getQuoteUC.NewUseCase(suiteCatalog, log)

	// Сессии мастера бронирования
	sessions := scs.New()
	sessions.Lifetime = time.Duration(cfg.Session.Lifetime) * time.Minute
	sessions.Cookie.Name = cfg.Session.CookieName
	sessions.Cookie.Secure = cfg.Session.Secure
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.SameSite = http.SameSiteLaxMode

	// Инициализируем handlers
	getSiteInfo := getSiteInfoHandler.NewHandler(getSiteInfoHandler.FromConfig(cfg), log)
	listSuites := listSuitesHandler.NewHandler(suiteCatalog, log)
	getSuite := getSuiteHandler.NewHandler(suiteCatalog, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	getBlockedDates := getBlockedDatesHandler.NewHandler(bookingSvc, suiteCatalog, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	wizard := wizardHandler.NewHandler(sessions, suiteCatalog, documents, createBookingUseCase, log)

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

	api.HandleFunc("/site", getSiteInfo.Handle).Methods(http.MethodGet)

	// --- Номера ---
	api.HandleFunc("/suites", listSuites.Handle).Methods(http.MethodGet)
	api.HandleFunc("/suites/{suiteId}", getSuite.Handle).Methods(http.MethodGet)
	api.HandleFunc("/suites/{suiteId}/quote", getQuote.Handle).Methods(http.MethodGet)
	api.HandleFunc("/suites/{suiteId}/blocked-dates", getBlockedDates.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// --- Мастер бронирования (состояние в сессии) ---
	wz := api.PathPrefix("/wizard").Subrouter()
	wz.Use(sessions.LoadAndSave)

	wz.HandleFunc("", wizard.GetState).Methods(http.MethodGet)
	wz.HandleFunc("/suite", wizard.SelectSuite).Methods(http.MethodPost)
	wz.HandleFunc("/dates", wizard.SetDates).Methods(http.MethodPost)
	wz.HandleFunc("/hours", wizard.SetHours).Methods(http.MethodPost)
	wz.HandleFunc("/guest", wizard.UpdateGuest).Methods(http.MethodPost)
	wz.HandleFunc("/guest/validate", wizard.ValidateGuestField).Methods(http.MethodPost)
	wz.HandleFunc("/guest/id-document", wizard.UploadIDDocument).Methods(http.MethodPost)
	wz.HandleFunc("/guest/rules", wizard.SetRulesAgreement).Methods(http.MethodPost)
	wz.HandleFunc("/next", wizard.NextStep).Methods(http.MethodPost)
	wz.HandleFunc("/previous", wizard.PreviousStep).Methods(http.MethodPost)
	wz.HandleFunc("/step", wizard.GoToStep).Methods(http.MethodPost)
	wz.HandleFunc("/reset", wizard.Reset).Methods(http.MethodPost)
	wz.HandleFunc("/submit", wizard.Submit).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	if cfg.Admin.Enabled() {
		admin := api.PathPrefix("/admin").Subrouter()
		admin.Use(middleware.AdminAuth(cfg.Admin.Token))
		admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
		log.Info("Admin dashboard enabled")
	} else {
		log.Warn("Admin token is not set: admin routes are disabled")
	}

	// CORS и восстановление после паники
	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.AdminTokenHeader}),
		gorillaHandlers.AllowCredentials(),
	)(r)
	handler = gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(true))(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
