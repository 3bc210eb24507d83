package wire

import (
	"net/http"

	"filling-station/internal/adaptor"
	"filling-station/internal/data/repository"
	"filling-station/internal/usecase"
	"filling-station/pkg/database"
	"filling-station/pkg/middleware"
	"filling-station/pkg/sms"
	"filling-station/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router.
func Wiring(
	repo *repository.Repository,
	sender sms.Sender,
	db database.PgxIface,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, sender, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, db, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, db database.PgxIface, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireRegistration(r, handler.Registration)
	wireOrders(r, handler.Order)

	// Liveness with a database ping
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			logger.Error("Health check: database unreachable", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("database unreachable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
