package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adsmaster-api/infrastructure/database/postgres"
	"github.com/vfg2006/adsmaster-api/infrastructure/repository"
	"github.com/vfg2006/adsmaster-api/internal/api"
	"github.com/vfg2006/adsmaster-api/internal/api/handler"
	"github.com/vfg2006/adsmaster-api/internal/config"
	"github.com/vfg2006/adsmaster-api/internal/scheduler"
	"github.com/vfg2006/adsmaster-api/internal/usecases/dashboard"
	"github.com/vfg2006/adsmaster-api/internal/usecases/ingesting"
	"github.com/vfg2006/adsmaster-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.AutoMigrate {
		if err := postgres.MigrateUp(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	observer := metrics.New(registry)

	accountRepo := repository.NewAccountRepository(pgConn)
	campaignMetricRepo := repository.NewCampaignMetricRepository(pgConn)

	ingester := ingesting.NewService(accountRepo, campaignMetricRepo, observer)
	dashboardReader := dashboard.NewService(campaignMetricRepo, cfg.App.Location)

	freshnessMonitor := scheduler.NewFreshnessMonitorService(accountRepo, observer, cfg)
	if err := freshnessMonitor.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor de atualização das contas")
	} else {
		logrus.Info("Monitor de atualização das contas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		ingester,
		dashboardReader,
		observer.Handler(),
		handler.CronJobServices{
			handler.CronJobTypeFreshness: freshnessMonitor,
		},
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
	_ = os.Chdir(dir)

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

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
