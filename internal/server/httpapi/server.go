// Package httpapi binds the server's services to JSON-over-HTTP endpoints
// and gates the ownership operations behind bearer-token authentication.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/critterkeep/internal/logging"
	"github.com/dmitrijs2005/critterkeep/internal/server/models"
)

// UserProvider is the slice of the user service the HTTP layer needs.
type UserProvider interface {
	Register(ctx context.Context, email string, password string) (*models.User, error)
	Login(ctx context.Context, email string, password string) (string, error)
}

// CatchProvider is the slice of the catch service the HTTP layer needs.
type CatchProvider interface {
	Catch(ctx context.Context, userID string, name string) (*models.OwnedCreature, error)
	Release(ctx context.Context, userID string, recordID string) error
	List(ctx context.Context, userID string) ([]*models.OwnedCreature, error)
}

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     UserProvider
	catches   CatchProvider
	jwtSecret []byte
	dbPing    func(ctx context.Context) error
}

func NewHTTPServer(address string, logger logging.Logger, users UserProvider, catches CatchProvider, secretKey string, dbPing func(ctx context.Context) error) *HTTPServer {
	return &HTTPServer{
		address:   address,
		logger:    logger.With("module", "http_server"),
		users:     users,
		catches:   catches,
		jwtSecret: []byte(secretKey),
		dbPing:    dbPing,
	}
}

// routes assembles the endpoint table. Ownership operations are wrapped in
// requireAuth so that an invalid token is rejected before any domain logic.
func (s *HTTPServer) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/catch", s.requireAuth(s.handleCatch))
	mux.HandleFunc("GET /api/catch", s.requireAuth(s.handleList))
	mux.HandleFunc("DELETE /api/catch/{id}", s.requireAuth(s.handleRelease))
	mux.HandleFunc("GET /api/healthz", s.handleHealthz)

	return mux
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
