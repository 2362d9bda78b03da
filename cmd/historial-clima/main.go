package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/app"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/config"
)

// @title Historial Clima Tiendas API
// @version 1.0
// @description Historical daily weather for the store network: queries, day filtering, store ranking and report downloads
// @host localhost:8080
// @BasePath /api/
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panic(err)
	}

	logger := log.New(log.Writer(), "HistorialClima: ", log.LstdFlags)

	application := app.New(*cfg, logger)

	container, err := application.Init()
	if err != nil {
		log.Panic(err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Start(container)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Panic(err)
		}
	case sig := <-quit:
		logger.Println("received signal:", sig)
	}

	if err := application.Stop(container); err != nil {
		log.Panicf("failed to shutdown application: %v", err)
	}
	logger.Println("Application shutdown successfully")
}
