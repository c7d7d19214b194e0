package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sunthewhat/easy-cred-api/api"
	bounddatamodel "github.com/sunthewhat/easy-cred-api/api/model/boundDataModel"
	credentialmodel "github.com/sunthewhat/easy-cred-api/api/model/credentialModel"
	organizationmodel "github.com/sunthewhat/easy-cred-api/api/model/organizationModel"
	recipientmodel "github.com/sunthewhat/easy-cred-api/api/model/recipientModel"
	templatemodel "github.com/sunthewhat/easy-cred-api/api/model/templateModel"
	"github.com/sunthewhat/easy-cred-api/api/routes"
	"github.com/sunthewhat/easy-cred-api/common"
	"github.com/sunthewhat/easy-cred-api/common/config"
	"github.com/sunthewhat/easy-cred-api/common/gorm"
	"github.com/sunthewhat/easy-cred-api/common/logger"
	"github.com/sunthewhat/easy-cred-api/common/mongo"
	"github.com/sunthewhat/easy-cred-api/common/util"
	"github.com/sunthewhat/easy-cred-api/internal/fonts"
	"github.com/sunthewhat/easy-cred-api/internal/issuance"
	"github.com/sunthewhat/easy-cred-api/internal/layout"
	"github.com/sunthewhat/easy-cred-api/internal/renderer"
	"github.com/sunthewhat/easy-cred-api/type/shared"
)

func main() {
	isPushDB := flag.Bool("PushDB", false, "Run database migration")
	isPullDB := flag.Bool("PullDB", false, "Run database pulling")
	isRunAfter := flag.Bool("Run", false, "Run after db process")
	configPath := flag.String("Config", "", "Path to config.yml or config.toml")
	flag.Parse()

	config.LoadConfig(*configPath)
	cfg := common.Config

	logFile := logger.InitLogger(logger.Options{
		Debug:     !shared.Or(cfg.Environment, false),
		File:      shared.Or(cfg.LogFile, ""),
		MaxSizeMB: shared.Or(cfg.LogMaxSizeMB, 0),
	})
	defer logFile.Close()

	if *isPushDB || *isPullDB {
		if *isPullDB {
			gorm.Pull_db()
		}
		if *isPushDB {
			gorm.Push_db()
		}
		if !*isRunAfter {
			return
		}
	}

	gorm.InitGorm()
	mongo.InitMongo()
	util.InitDialer()

	minioClient, err := util.NewMinIOClient(util.MinIOConfig{
		Endpoint:  *cfg.MinIoEndpoint,
		AccessKey: *cfg.MinIoAccessKey,
		SecretKey: *cfg.MinIoSecretKey,
		Secure:    shared.Or(cfg.MinIoSecure, false),
	})
	if err != nil {
		slog.Error("Failed to initialize MinIO", "error", err)
		os.Exit(1)
	}
	common.MinIOClient = minioClient

	fontRegistry, err := fonts.NewRegistry(fonts.Config{
		Family:       shared.Or(cfg.FontFamily, layout.DefaultFontFamily),
		SystemLookup: shared.Or(cfg.FontSystemLookup, true),
		Fallback:     shared.Or(cfg.FontFallback, true),
	})
	if err != nil {
		slog.Error("Failed to initialize fonts", "error", err)
		os.Exit(1)
	}

	signer, err := renderer.NewPDFSigner(renderer.SigningConfig{
		Enabled:  shared.Or(cfg.SigningEnabled, false),
		CertPath: shared.Or(cfg.SigningCertPath, ""),
		KeyPath:  shared.Or(cfg.SigningKeyPath, ""),
		Issuer:   "EasyCred",
	})
	if err != nil {
		slog.Error("Failed to initialize PDF signer", "error", err)
		os.Exit(1)
	}

	organizations := organizationmodel.NewOrganizationRepository(common.Gorm)
	templates := templatemodel.NewTemplateRepository(common.Gorm)
	credentials := credentialmodel.NewCredentialRepository(common.Gorm)
	storage := util.NewObjectStorage(minioClient)

	engine := issuance.NewEngine(issuance.Dependencies{
		Templates:     templates,
		Credentials:   credentials,
		Organizations: organizations,
		Recipients:    recipientmodel.NewRecipientRepository(common.Gorm),
		BoundData:     bounddatamodel.NewBoundDataRepository(common.Mongo),
		Blobs:         storage,
		Fonts:         fontRegistry,
		Notifier:      util.NewMailNotifier(common.Dialer, *cfg.MailUser),
		Fetcher:       util.NewRemoteFetcher(),
	}, issuance.Config{
		ResourceBucket:   *cfg.BucketResource,
		CredentialBucket: *cfg.BucketCredential,
		VerifyHost:       *cfg.VerifyHost,
		Render: renderer.Options{
			Width:          shared.Or(cfg.RenderWidth, 0),
			Height:         shared.Or(cfg.RenderHeight, 0),
			Format:         shared.Or(cfg.RenderFormat, renderer.FormatPNG),
			JPEGQuality:    shared.Or(cfg.JPEGQuality, 90),
			ThumbnailWidth: shared.Or(cfg.ThumbnailWidth, 480),
			MaxPixels:      shared.Or(cfg.MaxBackgroundPx, renderer.DefaultMaxPixels),
		},
		Signer: signer,
	})

	templateExists := func(ctx context.Context, id string) (bool, error) {
		tmpl, err := templates.GetById(ctx, id)
		return tmpl != nil, err
	}
	util.StartOrphanCleanupJob(context.Background(), storage, []util.OrphanRule{
		{Bucket: *cfg.BucketResource, Prefix: "backgrounds/", Exists: templateExists},
		{Bucket: *cfg.BucketResource, Prefix: "thumbnails/", Exists: templateExists},
		{Bucket: *cfg.BucketCredential, Prefix: "credentials/", Exists: func(ctx context.Context, id string) (bool, error) {
			cred, err := credentials.GetById(ctx, id)
			return cred != nil, err
		}},
	}, 24*time.Hour, time.Hour)

	api.InitFiber(routes.Dependencies{
		Service:       engine,
		Organizations: organizations,
		JWTSecret:     *cfg.JWTSecret,
	})
}
