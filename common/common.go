package common

import (
	"github.com/minio/minio-go/v7"
	"github.com/sunthewhat/easy-cred-api/type/shared"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

var Config *shared.Config
var Gorm *gorm.DB
var Mongo *mongo.Database
var Dialer *gomail.Dialer
var MinIOClient *minio.Client
