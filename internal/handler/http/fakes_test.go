package http

import (
	"context"
	"io"
	"testing"

	"github.com/MKhiriev/go-recipe-box/internal/config"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/service"
	"github.com/MKhiriev/go-recipe-box/models"
)

// ─────────────────────────────────────────────
// Function-field fakes for the service layer.
// A nil field panics, which withRecover turns into a 500.
// ─────────────────────────────────────────────

type fakeAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	verifyFn       func(ctx context.Context, tokenString string, requireAdmin bool) (models.Identity, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return f.registerUserFn(ctx, credentials)
}

func (f *fakeAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return f.loginFn(ctx, credentials)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) Verify(ctx context.Context, tokenString string, requireAdmin bool) (models.Identity, error) {
	return f.verifyFn(ctx, tokenString, requireAdmin)
}

type fakeRecipeService struct {
	listRecipesFn  func(ctx context.Context, category string) ([]models.Recipe, error)
	getRecipeFn    func(ctx context.Context, recipeID int64) (models.Recipe, error)
	createRecipeFn func(ctx context.Context, author models.Identity, input models.RecipeInput) (models.Recipe, error)
	updateRecipeFn func(ctx context.Context, recipeID int64, input models.RecipeInput) (models.Recipe, error)
	deleteRecipeFn func(ctx context.Context, recipeID int64) error
	addReviewFn    func(ctx context.Context, recipeID int64, input models.ReviewInput) (models.Review, error)
	rateRecipeFn   func(ctx context.Context, recipeID int64, input models.RatingInput) (models.Ratings, error)
}

func (f *fakeRecipeService) ListRecipes(ctx context.Context, category string) ([]models.Recipe, error) {
	return f.listRecipesFn(ctx, category)
}

func (f *fakeRecipeService) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	return f.getRecipeFn(ctx, recipeID)
}

func (f *fakeRecipeService) CreateRecipe(ctx context.Context, author models.Identity, input models.RecipeInput) (models.Recipe, error) {
	return f.createRecipeFn(ctx, author, input)
}

func (f *fakeRecipeService) UpdateRecipe(ctx context.Context, recipeID int64, input models.RecipeInput) (models.Recipe, error) {
	return f.updateRecipeFn(ctx, recipeID, input)
}

func (f *fakeRecipeService) DeleteRecipe(ctx context.Context, recipeID int64) error {
	return f.deleteRecipeFn(ctx, recipeID)
}

func (f *fakeRecipeService) AddReview(ctx context.Context, recipeID int64, input models.ReviewInput) (models.Review, error) {
	return f.addReviewFn(ctx, recipeID, input)
}

func (f *fakeRecipeService) RateRecipe(ctx context.Context, recipeID int64, input models.RatingInput) (models.Ratings, error) {
	return f.rateRecipeFn(ctx, recipeID, input)
}

type fakeFavoriteService struct {
	listFavoritesFn   func(ctx context.Context, userID int64) ([]models.Recipe, error)
	listFavoriteIDsFn func(ctx context.Context, userID int64) ([]int64, error)
	toggleFavoriteFn  func(ctx context.Context, userID, recipeID int64) (models.FavoriteToggle, error)
}

func (f *fakeFavoriteService) ListFavorites(ctx context.Context, userID int64) ([]models.Recipe, error) {
	return f.listFavoritesFn(ctx, userID)
}

func (f *fakeFavoriteService) ListFavoriteIDs(ctx context.Context, userID int64) ([]int64, error) {
	return f.listFavoriteIDsFn(ctx, userID)
}

func (f *fakeFavoriteService) ToggleFavorite(ctx context.Context, userID, recipeID int64) (models.FavoriteToggle, error) {
	return f.toggleFavoriteFn(ctx, userID, recipeID)
}

type fakeContactService struct {
	sendMessageFn func(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
}

func (f *fakeContactService) SendMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	return f.sendMessageFn(ctx, msg)
}

type fakeUploadService struct {
	uploadFn func(ctx context.Context, originalName, contentType string, r io.Reader) (models.UploadedFile, error)
}

func (f *fakeUploadService) Upload(ctx context.Context, originalName, contentType string, r io.Reader) (models.UploadedFile, error) {
	return f.uploadFn(ctx, originalName, contentType, r)
}

type fakeAppInfoService struct {
	version string
	health  models.Health
}

func (f *fakeAppInfoService) Version() string {
	return f.version
}

func (f *fakeAppInfoService) Health(_ context.Context) models.Health {
	return f.health
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

var (
	adminIdentity = models.Identity{ID: 1, Email: "admin@example.com", IsAdmin: true}
	userIdentity  = models.Identity{ID: 2, Email: "user@example.com"}
)

// tokenAuth resolves adminToken and userToken the way the real verifier
// resolves signed tokens.
func tokenAuth() *fakeAuthService {
	return &fakeAuthService{
		verifyFn: func(_ context.Context, tokenString string, requireAdmin bool) (models.Identity, error) {
			switch tokenString {
			case "":
				return models.Identity{}, service.ErrNoToken
			case adminToken:
				return adminIdentity, nil
			case userToken:
				if requireAdmin {
					return models.Identity{}, service.ErrAdminOnly
				}
				return userIdentity, nil
			default:
				return models.Identity{}, service.ErrInvalidToken
			}
		},
	}
}

// testConfig points the file settings at fresh temporary directories.
func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()

	return &config.StructuredConfig{
		Storage: config.Storage{
			Files: config.Files{
				UploadsDir:    t.TempDir(),
				FrontendDir:   t.TempDir(),
				MaxUploadSize: 5 << 20,
				MaxBodySize:   10 << 20,
			},
		},
	}
}

// newTestHandler builds a Handler over the given services. Missing
// AuthService and AppInfoService fields are filled with defaults.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	if services.AuthService == nil {
		services.AuthService = tokenAuth()
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{version: "test-version"}
	}

	return NewHandler(services, testConfig(t), logger.Nop())
}
