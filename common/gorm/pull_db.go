package gorm

import (
	"log/slog"
	"os"

	"github.com/sunthewhat/easy-cred-api/common"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// Pull_db generates typed query helpers for the models into
// type/shared/query, using the live schema for column types.
func Pull_db() {
	db, err := gorm.Open(dialector(*common.Config.Postgres), &gorm.Config{
		Logger: gormLogger(),
	})
	if err != nil {
		slog.Error("PullDB failed to connect to database", "error", err)
		os.Exit(1)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./type/shared/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})
	g.UseDB(db)
	g.ApplyBasic(Models()...)
	g.Execute()

	slog.Info("PullDB generated query package", "models", len(Models()))
}
