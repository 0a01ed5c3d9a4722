package service

import (
	"github.com/MKhiriev/go-recipe-box/internal/config"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/store"
	"github.com/MKhiriev/go-recipe-box/internal/utils"
	"github.com/MKhiriev/go-recipe-box/models"
)

type Services struct {
	AuthService     AuthService
	RecipeService   RecipeService
	FavoriteService FavoriteService
	ContactService  ContactService
	UploadService   UploadService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		RecipeService:   NewRecipeService(storages.RecipeRepository, storages.ReviewRepository, logger),
		FavoriteService: NewFavoriteService(storages.FavoriteRepository, storages.ReviewRepository, logger),
		ContactService:  NewContactService(storages.ContactRepository, logger),
		UploadService:   NewUploadService(storages.FileStorage, utils.NewUUIDGenerator(), logger),
		AppInfoService:  NewAppInfoService(buildInfo, cfg.Storage.Files.FrontendDir, storages.Pool, logger),
	}
}
