package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/atelier-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/atelier-manager-api/infrastructure/integrator/legacystore"
	"github.com/vfg2006/atelier-manager-api/infrastructure/integrator/legacystore/legacyclient"
	"github.com/vfg2006/atelier-manager-api/infrastructure/repository"
	"github.com/vfg2006/atelier-manager-api/internal/api"
	"github.com/vfg2006/atelier-manager-api/internal/config"
	"github.com/vfg2006/atelier-manager-api/internal/scheduler"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/certifying"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/clienting"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/customering"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/inventorying"
	"github.com/vfg2006/atelier-manager-api/internal/usecases/selling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	instrumentRepo := repository.NewInstrumentRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	certificateRepo := repository.NewCertificateRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	legacyStoreClient := legacyclient.NewClient(cfg)
	legacyStoreIntegrator := legacystore.New(cfg, legacyStoreClient)

	clientService := clienting.NewService(clientRepo)
	inventoryService := inventorying.NewService(instrumentRepo)
	sellingService := selling.NewService(saleRepo, clientRepo, instrumentRepo)
	customerService := customering.NewService(clientRepo, saleRepo, instrumentRepo)
	certificateService := certifying.NewService(cfg, certificateRepo, instrumentRepo, clientRepo)

	// Agendadores que espelham os feeds do sistema antigo para o banco local
	salesSyncService := scheduler.NewSalesSyncService(saleRepo, clientRepo, instrumentRepo, legacyStoreIntegrator, cfg)
	instrumentsSyncService := scheduler.NewInstrumentsSyncService(instrumentRepo, legacyStoreIntegrator, cfg)

	if err := salesSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de vendas")
	} else {
		logrus.Info("Agendador de sincronização de vendas iniciado com sucesso")
	}

	if err := instrumentsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de estoque")
	} else {
		logrus.Info("Agendador de sincronização de estoque iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		clientService,
		customerService,
		inventoryService,
		sellingService,
		certificateService,
		authenticator,
		salesSyncService,
		instrumentsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
