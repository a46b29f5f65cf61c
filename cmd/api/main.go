package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-projection-api/infrastructure/database"
	"github.com/vfg2006/brand-projection-api/infrastructure/migration"
	"github.com/vfg2006/brand-projection-api/infrastructure/repository"
	"github.com/vfg2006/brand-projection-api/internal/api"
	"github.com/vfg2006/brand-projection-api/internal/config"
	"github.com/vfg2006/brand-projection-api/internal/scheduler"
	"github.com/vfg2006/brand-projection-api/internal/usecases/authenticating"
	"github.com/vfg2006/brand-projection-api/internal/usecases/branding"
	"github.com/vfg2006/brand-projection-api/internal/usecases/projecting"
	"github.com/vfg2006/brand-projection-api/pkg/log"
)

func main() {
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Apply(ctx, conn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	userRepo := repository.NewUserRepository(conn)
	brandRepo := repository.NewBrandRepository(conn)
	settingsRepo := repository.NewSettingsRepository(conn)
	snapshotRepo := repository.NewProjectionSnapshotRepository(conn)

	authenticator := authenticating.NewService(userRepo, cfg)
	if err := authenticator.EnsureDefaultUsers(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar usuários padrão")
	}

	brandService := branding.NewService(brandRepo, settingsRepo)
	projector := projecting.NewService(brandService, settingsRepo, snapshotRepo, cfg)

	snapshotSyncService := scheduler.NewProjectionSnapshotSyncService(projector, cfg)
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de projeção")
	} else {
		logrus.Info("Agendador de snapshots de projeção iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		conn,
		authenticator,
		brandService,
		projector,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn abre a conexão com o banco configurado
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
