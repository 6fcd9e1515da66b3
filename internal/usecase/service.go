package usecase

import (
	"product-catalog/internal/data/repository"
	"product-catalog/pkg/cache"
	"product-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Token     TokenService
	Auth      AuthService
	User      UserService
	Product   ProductService
	Category  CategoryService
	Search    SearchService
	Inventory InventoryService
	Report    ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, c *cache.Cache, log *zap.Logger) *Service {
	tokens := NewTokenService(config.JWT)

	return &Service{
		Token:     tokens,
		Auth:      NewAuthService(repo.User, tokens, log),
		User:      NewUserService(repo.User, log),
		Product:   NewProductService(repo, c, log),
		Category:  NewCategoryService(repo, c, log),
		Search:    NewSearchService(repo, log),
		Inventory: NewInventoryService(repo, log),
		Report:    NewReportService(repo, c, log),
	}
}
