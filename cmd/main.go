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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/get_available_slots"
	getDoctorHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/get_doctor"
	getDoctorsHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/get_doctors"
	getSpecialtiesHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/get_specialties"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/appointment"
	doctorRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/doctor"
	specialtyRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/specialty"
	doctorsService "github.com/m04kA/SMC-ClinicService/internal/service/doctors"
	specialtiesService "github.com/m04kA/SMC-ClinicService/internal/service/specialties"
	createAppointmentUC "github.com/m04kA/SMC-ClinicService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-ClinicService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicService/pkg/logger"
	"github.com/m04kA/SMC-ClinicService/pkg/metrics"
	"github.com/m04kA/SMC-ClinicService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ClinicService/pkg/txmanager"
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

	log.Info("Starting SMC-ClinicService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled: service=%s, path=%s", cfg.Metrics.ServiceName, cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории и transaction manager.
	// При включенных метриках запросы идут через обёртку dbmetrics.
	var (
		doctorRepository      *doctorRepo.Repository
		specialtyRepository   *specialtyRepo.Repository
		appointmentRepository *appointmentRepo.Repository
		txManager             createAppointmentUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		doctorRepository = doctorRepo.NewRepository(wrappedDB)
		specialtyRepository = specialtyRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txManager = txmanager.NewTransactionManager(wrappedDB)
	} else {
		doctorRepository = doctorRepo.NewRepository(db)
		specialtyRepository = specialtyRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txManager = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	doctorsSvc := doctorsService.NewService(doctorRepository, log)
	specialtiesSvc := specialtiesService.NewService(specialtyRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		doctorRepository,
		specialtyRepository,
		appointmentRepository,
		txManager,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		doctorRepository,
		specialtyRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSpecialties := getSpecialtiesHandler.NewHandler(specialtiesSvc, log)
	getDoctors := getDoctorsHandler.NewHandler(doctorsSvc, log)
	getDoctor := getDoctorHandler.NewHandler(doctorsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Запись на приём ---
	// Получение доступных слотов по специальности и дате
	api.HandleFunc("/appointments/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Список специальностей
	api.HandleFunc("/appointments/specialties", getSpecialties.Handle).Methods(http.MethodGet)

	// Создание приёма
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// --- Врачи ---
	// Список врачей
	api.HandleFunc("/doctors", getDoctors.Handle).Methods(http.MethodGet)

	// Карточка врача
	api.HandleFunc("/doctors/{doctorId}", getDoctor.Handle).Methods(http.MethodGet)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
