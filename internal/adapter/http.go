package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// Config holds the client settings.
type Config struct {
	// Address is the server base URL. A missing scheme defaults to http.
	Address string
	Timeout time.Duration
}

type httpRecipeBoxClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRecipeBoxClient constructs the REST implementation of
// [RecipeBoxClient]. It returns an error if cfg.Address is empty or is not a
// valid URL.
func NewHTTPRecipeBoxClient(cfg Config, logger *logger.Logger) (RecipeBoxClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpRecipeBoxClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host in %q", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRecipeBoxClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRecipeBoxClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRecipeBoxClient) Register(ctx context.Context, creds models.Credentials) (models.Identity, error) {
	var out models.RegisterResponse
	resp, err := h.request(ctx).
		SetBody(creds).
		SetResult(&out).
		Post("/api/auth/register")
	if err != nil {
		return models.Identity{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	return out.User, nil
}

func (h *httpRecipeBoxClient) Login(ctx context.Context, creds models.Credentials) (models.Identity, error) {
	var out models.LoginResponse
	resp, err := h.request(ctx).
		SetBody(models.Credentials{Email: creds.Email, Password: creds.Password}).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return models.Identity{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	if out.Token == "" {
		return models.Identity{}, fmt.Errorf("login: %w: empty token", ErrUnauthorized)
	}

	h.SetToken(out.Token)
	h.logger.Debug().Int64("user_id", out.User.ID).Msg("logged in")
	return out.User, nil
}

func (h *httpRecipeBoxClient) ListRecipes(ctx context.Context, category string) ([]models.Recipe, error) {
	req := h.request(ctx)
	if category != "" {
		req.SetQueryParam("category", category)
	}

	var recipes []models.Recipe
	resp, err := req.SetResult(&recipes).Get("/api/recipes")
	if err != nil {
		return nil, fmt.Errorf("list recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return recipes, nil
}

func (h *httpRecipeBoxClient) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	var recipe models.Recipe
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(recipeID, 10)).
		SetResult(&recipe).
		Get("/api/recipes/{id}")
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

func (h *httpRecipeBoxClient) ToggleFavorite(ctx context.Context, recipeID int64) (models.FavoriteToggle, error) {
	var toggle models.FavoriteToggle
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(recipeID, 10)).
		SetResult(&toggle).
		Post("/api/favorites/{id}")
	if err != nil {
		return models.FavoriteToggle{}, fmt.Errorf("toggle favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FavoriteToggle{}, err
	}

	return toggle, nil
}

func (h *httpRecipeBoxClient) Health(ctx context.Context) (models.Health, error) {
	var health models.Health
	resp, err := h.request(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.Health{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Health{}, err
	}

	return health, nil
}

// request starts a request carrying the stored token, if any.
func (h *httpRecipeBoxClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
