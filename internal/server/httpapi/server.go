// Package httpapi exposes the gallery over HTTP: credential endpoints,
// the authenticated image catalog, and the static upload directory.
// Handlers validate input and translate service errors to status codes;
// all catalog and credential logic lives in the services layer.
package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/avoronova/imagevault/internal/logging"
	"github.com/avoronova/imagevault/internal/server/config"
	"github.com/avoronova/imagevault/internal/server/models"
	"github.com/avoronova/imagevault/internal/server/storage"
)

// Catalog is the image-catalog surface the handlers need.
type Catalog interface {
	ListImages(ctx context.Context, searchTerm string) ([]models.APIImage, error)
	RenameImage(ctx context.Context, imageID string, newName string) (int64, error)
	GetImageOwner(ctx context.Context, imageID string) (string, error)
	CreateImage(ctx context.Context, src, name, authorID string) (*models.Image, error)
}

// CredentialStore is the account surface the handlers need.
type CredentialStore interface {
	Register(ctx context.Context, username, password string) (bool, error)
	VerifyPassword(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	catalog     Catalog
	credentials CredentialStore
	files       storage.FileStore
	config      *config.Config
	logger      logging.Logger
}

func NewServer(catalog Catalog, credentials CredentialStore, files storage.FileStore, cfg *config.Config, logger logging.Logger) *Server {
	return &Server{
		catalog:     catalog,
		credentials: credentials,
		files:       files,
		config:      cfg,
		logger:      logger,
	}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	auth := r.Group("/auth")
	auth.POST("/register", s.register)
	auth.POST("/login", s.login)

	api := r.Group("/api", s.authRequired())
	api.GET("/images", s.listImages)
	api.PUT("/images/:id/name", s.renameImage)
	api.POST("/images", s.uploadImage)

	if s.config.StorageBackend == config.StorageBackendDisk {
		r.Static("/uploads", s.config.UploadDir)
	}

	if s.config.StaticDir != "" {
		r.NoRoute(s.serveFrontend)
	}

	return r
}
