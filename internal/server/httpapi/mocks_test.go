package httpapi

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrijs2005/critterkeep/internal/logging"
	"github.com/dmitrijs2005/critterkeep/internal/server/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type stubUserProvider struct {
	registerUser *models.User
	registerErr  error
	loginToken   string
	loginErr     error

	lastEmail    string
	lastPassword string
}

func (s *stubUserProvider) Register(ctx context.Context, email string, password string) (*models.User, error) {
	s.lastEmail, s.lastPassword = email, password
	return s.registerUser, s.registerErr
}

func (s *stubUserProvider) Login(ctx context.Context, email string, password string) (string, error) {
	s.lastEmail, s.lastPassword = email, password
	return s.loginToken, s.loginErr
}

type stubCatchProvider struct {
	catchResult *models.OwnedCreature
	catchErr    error
	releaseErr  error
	listResult  []*models.OwnedCreature
	listErr     error

	lastUserID   string
	lastName     string
	lastRecordID string
}

func (s *stubCatchProvider) Catch(ctx context.Context, userID string, name string) (*models.OwnedCreature, error) {
	s.lastUserID, s.lastName = userID, name
	return s.catchResult, s.catchErr
}

func (s *stubCatchProvider) Release(ctx context.Context, userID string, recordID string) error {
	s.lastUserID, s.lastRecordID = userID, recordID
	return s.releaseErr
}

func (s *stubCatchProvider) List(ctx context.Context, userID string) ([]*models.OwnedCreature, error) {
	s.lastUserID = userID
	return s.listResult, s.listErr
}

func testServer(users *stubUserProvider, catches *stubCatchProvider) *HTTPServer {
	return NewHTTPServer(":0", testLogger(), users, catches, "test-secret", nil)
}

func caughtAt() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}
