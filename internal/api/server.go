package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/atelier-manager-api/internal/api/handler"
	"github.com/vfg2006/atelier-manager-api/internal/api/handler/router"
	"github.com/vfg2006/atelier-manager-api/internal/config"
	"github.com/vfg2006/atelier-manager-api/internal/scheduler"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/certifying"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/clienting"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/customering"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/inventorying"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/selling"
	"github.com/vfg2006/atelier-manager-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	clientService clienting.ClientService,
	customerService customering.CustomerService,
	inventoryService inventorying.InventoryService,
	sellingService selling.SellingService,
	certificateService certifying.CertificateService,
	authenticator authenticating.Authenticator,
	salesSyncService *scheduler.SalesSyncService,
	instrumentsSyncService *scheduler.InstrumentsSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SalesSyncService:       salesSyncService,
		InstrumentsSyncService: instrumentsSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Clients(clientService)...),
		router.WithRoutes(handler.Customers(customerService)...),
		router.WithRoutes(handler.Instruments(inventoryService)...),
		router.WithRoutes(handler.Sales(sellingService)...),
		router.WithRoutes(handler.Certificates(certificateService)...),
		router.WithRoutes(handler.LegacyFeeds(sellingService, inventoryService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
