package http_test

import (
	"context"
	"net/http/httptest"

	api "movierental-backend/internal/api/http"
	"movierental-backend/internal/domain"
	"movierental-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

const testSecret = "test-secret-key-minimum-32-chars"

type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) Checkout(ctx context.Context, customerID, movieID int32) (*domain.Rental, error) {
	args := m.Called(ctx, customerID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) Return(ctx context.Context, customerID, movieID int32) (*domain.Rental, error) {
	args := m.Called(ctx, customerID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

type MockGenreService struct {
	mock.Mock
}

func (m *MockGenreService) CreateGenre(ctx context.Context, name string) (*domain.Genre, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *MockGenreService) GetGenre(ctx context.Context, id int32) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *MockGenreService) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Genre), args.Error(1)
}

func (m *MockGenreService) UpdateGenre(ctx context.Context, id int32, name string) (*domain.Genre, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *MockGenreService) DeleteGenre(ctx context.Context, id int32) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

// newTestServer wires a router around the given mocks with a real token
// manager so middleware behavior is exercised end to end.
func newTestServer(svcs api.Services) (*httptest.Server, security.TokenManager) {
	tokens := security.NewTokenManager(testSecret, 60)
	router := api.NewRouter(svcs, tokens)
	return httptest.NewServer(router), tokens
}
