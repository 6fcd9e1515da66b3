package adaptor

import (
	"net/http"
	"strings"

	"product-catalog/internal/usecase"
	"product-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Product   *ProductHandler
	Category  *CategoryHandler
	Search    *SearchHandler
	Inventory *InventoryHandler
	Report    *ReportHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Product:   NewProductHandler(service.Product, config.Upload.Dir, log),
		Category:  NewCategoryHandler(service.Category, log),
		Search:    NewSearchHandler(service.Search, log),
		Inventory: NewInventoryHandler(service.Inventory, log),
		Report:    NewReportHandler(service.Report, log),
	}
}

// handleServiceError maps a service error message to an HTTP status. Services
// return stable message prefixes, so matching on substrings is sufficient.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid credentials"):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "deactivated"):
		log.Warn(operation+" rejected - deactivated account",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "required"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "already exists"):
		log.Warn(operation+" failed - duplicate",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
