package gorm

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/sunthewhat/easy-cred-api/common"
	"github.com/sunthewhat/easy-cred-api/type/shared/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table owned by the API, in dependency order.
func Models() []any {
	return []any{
		new(model.Organization),
		new(model.Recipient),
		new(model.Template),
		new(model.Credential),
		new(model.OrganizationCredential),
		new(model.RecipientCredential),
	}
}

func Push_db() {
	lg := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             100 * time.Millisecond,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector(*common.Config.Postgres), &gorm.Config{
		Logger: lg,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	slog.Info("Database migration completed successfully")
}
