package gorm

import (
	"log/slog"
	"os"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"github.com/sunthewhat/easy-cred-api/common"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

func gormLogger() gormlogger.Interface {
	return slogGorm.New(
		slogGorm.WithHandler(slog.Default().Handler()),
		slogGorm.WithSlowThreshold(100*time.Millisecond),
	)
}

func InitGorm() {
	db, connectionErr := gorm.Open(dialector(*common.Config.Postgres), &gorm.Config{
		Logger: gormLogger(),
	})
	if connectionErr != nil {
		slog.Error("Failed to connect to database", "error", connectionErr)
		os.Exit(1)
	}

	if replicas := replicaDialectors(common.Config.PostgresReplicas); len(replicas) > 0 {
		// Reads (verification, listings) go to replicas; writes and
		// transactions stay on the primary.
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			slog.Error("Failed to register read replicas", "error", err)
			os.Exit(1)
		}
		slog.Info("GORM read replicas registered", "count", len(replicas))
	}

	slog.Info("GORM Connected!")

	common.Gorm = db
}

func dialector(dsn string) gorm.Dialector {
	return postgres.New(
		postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		},
	)
}

func replicaDialectors(dsns []*string) []gorm.Dialector {
	var out []gorm.Dialector
	for _, dsn := range dsns {
		if dsn == nil || *dsn == "" {
			continue
		}
		out = append(out, dialector(*dsn))
	}
	return out
}
