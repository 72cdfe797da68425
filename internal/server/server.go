//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/label"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/labelitem"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/storedcards"
)

type Storage interface {
	OrderLabels(ctx context.Context, siteID, orderID int64) ([]label.ItemView, error)
	RequestRefund(ctx context.Context, siteID, orderID, labelID int64) error
	RequestReprint(ctx context.Context, siteID, orderID, labelID int64) error
	OpenDetails(ctx context.Context, siteID, orderID, labelID int64) error
	CopyTracking(ctx context.Context, siteID, orderID, labelID int64) error
	StoredCards(userID string) storedcards.State
	RefreshStoredCards(ctx context.Context, userID string) (storedcards.State, error)
	DeleteStoredCard(ctx context.Context, userID, id string) error
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	storage  Storage
	userRepo UserRepo
	logger   *zap.Logger
	server   *http.Server
}

func New(port string, storage Storage, userRepo UserRepo, logger *zap.Logger) *Server {
	s := &Server{
		storage:  storage,
		userRepo: userRepo,
		logger:   logger,
	}
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.setupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Run serves until Shutdown. A Shutdown that lands first makes Run return
// nil without listening.
func (s *Server) Run() error {
	s.logger.Info("HTTP server starting", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()
	router.Use(s.requestLogMiddleware)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/").Subrouter()
	api.Use(s.basicAuthMiddleware)

	labels := api.PathPrefix("/sites/{siteID:[0-9]+}/orders/{orderID:[0-9]+}/labels").Subrouter()
	labels.HandleFunc("", s.handleListLabels).Methods(http.MethodGet)
	labels.HandleFunc("/{labelID:[0-9]+}/refund", s.handleLabelAction(actionRefund)).Methods(http.MethodPost)
	labels.HandleFunc("/{labelID:[0-9]+}/reprint", s.handleLabelAction(actionReprint)).Methods(http.MethodPost)
	labels.HandleFunc("/{labelID:[0-9]+}/details", s.handleLabelAction(actionDetails)).Methods(http.MethodPost)
	labels.HandleFunc("/{labelID:[0-9]+}/tracking/copy", s.handleLabelAction(actionCopyTracking)).Methods(http.MethodPost)

	api.HandleFunc("/stored-cards", s.handleListStoredCards).Methods(http.MethodGet)
	api.HandleFunc("/stored-cards/status", s.handleStoredCardsStatus).Methods(http.MethodGet)
	api.HandleFunc("/stored-cards/refresh", s.handleRefreshStoredCards).Methods(http.MethodPost)
	api.HandleFunc("/stored-cards/{id}", s.handleGetStoredCard).Methods(http.MethodGet)
	api.HandleFunc("/stored-cards/{id}", s.handleDeleteStoredCard).Methods(http.MethodDelete)

	return router
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) respondStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrObjectNotFound), errors.Is(err, storedcards.ErrCardNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, labelitem.ErrActionNotOffered):
		respondError(w, http.StatusConflict, "Action is not available for this label")
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
