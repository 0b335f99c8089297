package projects

import (
	projectstore "github.com/rohithbabu/foliohub/internal/app/store/projects"
	"github.com/rohithbabu/foliohub/internal/app/system/diaglog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the projects API.
type Handler struct {
	Store *projectstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a projects Handler.
func NewHandler(db *mongo.Database, diag *diaglog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Store: projectstore.New(db, diag),
		Log:   logger,
	}
}
