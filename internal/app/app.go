package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/soportesistemas80-alt/historial-clima-tiendas/docs"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/config"
	exporthandler "github.com/soportesistemas80-alt/historial-clima-tiendas/internal/handlers/export"
	historyhandler "github.com/soportesistemas80-alt/historial-clima-tiendas/internal/handlers/history"
	rankinghandler "github.com/soportesistemas80-alt/historial-clima-tiendas/internal/handlers/ranking"
	weatherhandler "github.com/soportesistemas80-alt/historial-clima-tiendas/internal/handlers/weather"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/locations"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/repository"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/services/logger"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/services/metrics"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/services/ranking"
	serviceWeather "github.com/soportesistemas80-alt/historial-clima-tiendas/internal/services/weather"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/sweeper"
	pkgLogger "github.com/soportesistemas80-alt/historial-clima-tiendas/pkg/logger"
)

const (
	timeoutDuration = 5 * time.Second

	fileMode = 0o644
)

type App struct {
	cfg config.Config
	log *log.Logger
}

type ServiceContainer struct {
	Registry       *locations.Registry
	WeatherService *serviceWeather.Service
	Geocoder       *serviceWeather.GeocoderClient
	Ranker         *ranking.Aggregator
	History        repository.HistoryRepository
	Sweeper        *sweeper.Sweeper

	Router *gin.Engine
	Srv    *http.Server

	redisClient *redis.Client
}

func New(cfg config.Config, logger *log.Logger) *App {
	return &App{
		cfg: cfg,
		log: logger,
	}
}

func (a *App) Init() (ServiceContainer, error) {
	a.log.Println("Initializing application on", a.cfg.Server.Address)

	registry := locations.NewRegistry()

	fileLogger, err := newFileLogger(a.cfg.RequestLogsPath)
	if err != nil {
		return ServiceContainer{}, err
	}

	httpLogClient := &http.Client{
		Timeout:   time.Duration(a.cfg.Upstream.TimeoutSeconds) * time.Second,
		Transport: logger.NewRoundTripper(fileLogger),
	}

	serviceMetrics := metrics.NewMetrics("clima")

	archiveClient := serviceWeather.NewArchiveClient(a.cfg.Upstream.ArchiveURL, httpLogClient, a.log)
	breakerClient := serviceWeather.NewBreakerClient("open-meteo-archive", archiveClient)
	meteredClient := serviceWeather.NewMetricsClient(breakerClient, serviceMetrics)
	weatherService := serviceWeather.NewService(a.log, meteredClient)

	geocoder := serviceWeather.NewGeocoderClient(
		a.cfg.Upstream.GeoapifyKey,
		a.cfg.Upstream.GeoapifyURL,
		httpLogClient,
		a.log,
	)

	ranker := ranking.NewAggregator(a.log, weatherService)

	collector := metrics.NewPromCollector("clima")

	var history repository.HistoryRepository
	var redisClient *redis.Client
	if a.cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr: a.cfg.Redis.Host + ":" + a.cfg.Redis.Port,
		})
		history = repository.NewRedisHistoryRepository(
			redisClient,
			a.log,
			time.Duration(a.cfg.Redis.LiveTimeHours)*time.Hour,
		)
	} else {
		history = repository.NewMemoryHistoryRepository()
	}
	history = repository.NewMetricsDecorator(history, collector)

	sweepLogger, err := pkgLogger.NewLogger(a.cfg.LogsPath, "clima-sweeper")
	if err != nil {
		return ServiceContainer{}, err
	}

	router := gin.Default()
	router.Use(serviceMetrics.HTTPMiddleware())

	apiServer := &http.Server{
		Addr:        a.cfg.Server.Address,
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		Registry:       registry,
		WeatherService: weatherService,
		Geocoder:       geocoder,
		Ranker:         ranker,
		History:        history,
		Sweeper:        sweeper.New(ranker, registry.All(), sweepLogger),

		Router: router,
		Srv:    apiServer,

		redisClient: redisClient,
	}, nil
}

func (a *App) Start(srvContainer ServiceContainer) error {
	a.log.Println("Starting server on", a.cfg.Server.Address)

	weatherHandler := weatherhandler.NewHandler(
		srvContainer.WeatherService,
		srvContainer.Geocoder,
		srvContainer.Registry,
		srvContainer.History,
	)
	rankingHandler := rankinghandler.NewHandler(srvContainer.Ranker, srvContainer.Registry)
	exportHandler := exporthandler.NewHandler()
	historyHandler := historyhandler.NewHandler(srvContainer.History)

	api := srvContainer.Router.Group("/api")
	{
		api.GET("/locations", weatherHandler.GetLocations)
		api.GET("/weather", weatherHandler.GetWeather)
		api.GET("/ranking", rankingHandler.GetRanking)
		api.POST("/export/pdf", exportHandler.ExportPDF)
		api.POST("/export/csv", exportHandler.ExportCSV)
		api.POST("/export/xlsx", exportHandler.ExportXLSX)
		api.GET("/history", historyHandler.GetHistory)
		api.DELETE("/history", historyHandler.ClearHistory)
	}
	srvContainer.Router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	srvContainer.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	srvContainer.Router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))

	if err := srvContainer.Sweeper.Start(a.cfg.Sweep.Spec); err != nil {
		return err
	}

	if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Stop(srvContainer ServiceContainer) error {
	a.log.Println("Stopping application…")

	srvContainer.Sweeper.Stop()
	a.log.Println("Sweeper stopped")

	ctx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
	defer cancel()

	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		a.log.Println("HTTP shutdown error:", err)
	} else {
		a.log.Println("HTTP server stopped")
	}

	if srvContainer.redisClient != nil {
		if err := srvContainer.redisClient.Close(); err != nil {
			a.log.Println("Redis close error:", err)
		} else {
			a.log.Println("Redis closed")
		}
	}

	a.log.Println("Shutdown complete")
	return nil
}

func newFileLogger(filePath string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(filepath.Clean(filePath)), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(filepath.Clean(filePath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, err
	}

	writer := zapcore.AddSync(file)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		writer,
		zap.InfoLevel,
	)
	return zap.New(core), nil
}
