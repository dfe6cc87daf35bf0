package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"electronics-store/internal/adaptor"
	"electronics-store/internal/data/repository"
	"electronics-store/internal/usecase"
	"electronics-store/pkg/middleware"
	"electronics-store/pkg/token"
	"electronics-store/pkg/utils"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	mail usecase.Dispatcher,
	tokens *token.Issuer,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, mail, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	tokens *token.Issuer,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAccounts(r, handler.Auth, tokens, logger)
	wireCatalog(r, handler.Category, handler.Product)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
