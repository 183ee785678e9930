package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "pharmacy/internal/errors"
	"pharmacy/internal/handler"
	"pharmacy/internal/model"
)

// MockManagerService is a mock implementation of ManagerService.
type MockManagerService struct {
	mock.Mock
}

func (m *MockManagerService) Register(ctx context.Context, name, pharmacyName string) (*model.Manager, error) {
	args := m.Called(ctx, name, pharmacyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Manager), args.Error(1)
}

func (m *MockManagerService) Login(ctx context.Context, name string) (*model.Manager, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Manager), args.Error(1)
}

func (m *MockManagerService) List(ctx context.Context) ([]model.Manager, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Manager), args.Error(1)
}

// MockInventoryService is a mock implementation of InventoryService.
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) AddMedicine(ctx context.Context, name string, quantity int) (*model.Medicine, error) {
	args := m.Called(ctx, name, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medicine), args.Error(1)
}

func (m *MockInventoryService) ListMedicines(ctx context.Context) ([]model.Medicine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medicine), args.Error(1)
}

func (m *MockInventoryService) DeleteMedicine(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func newServer(ms *MockManagerService, is *MockInventoryService) *echo.Echo {
	e := echo.New()
	Register(e, handler.NewManagerHandler(ms), handler.NewMedicineHandler(is))
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(newServer(new(MockManagerService), new(MockInventoryService)), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestManagerRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setupMock  func(*MockManagerService)
		statusCode int
		contains   string
	}{
		{
			name:   "register",
			method: http.MethodPost,
			path:   "/api/managers",
			body:   `{"name":"Alice","pharmacy_name":"CityPharm"}`,
			setupMock: func(m *MockManagerService) {
				m.On("Register", mock.Anything, "Alice", "CityPharm").Return(&model.Manager{ID: 1, Name: "Alice", PharmacyName: "CityPharm"}, nil)
			},
			statusCode: http.StatusCreated,
			contains:   `"pharmacy_name":"CityPharm"`,
		},
		{
			name:       "register missing pharmacy",
			method:     http.MethodPost,
			path:       "/api/managers",
			body:       `{"name":"Alice"}`,
			setupMock:  func(m *MockManagerService) {},
			statusCode: http.StatusBadRequest,
			contains:   `"code":"INVALID_INPUT"`,
		},
		{
			name:       "login malformed body",
			method:     http.MethodPost,
			path:       "/api/managers/login",
			body:       `{"name":`,
			setupMock:  func(m *MockManagerService) {},
			statusCode: http.StatusBadRequest,
			contains:   `"code":"INVALID_INPUT"`,
		},
		{
			name:   "login known",
			method: http.MethodPost,
			path:   "/api/managers/login",
			body:   `{"name":"Alice"}`,
			setupMock: func(m *MockManagerService) {
				m.On("Login", mock.Anything, "Alice").Return(&model.Manager{ID: 1, Name: "Alice"}, nil)
			},
			statusCode: http.StatusOK,
			contains:   `"logged_in":true`,
		},
		{
			name:   "login unknown",
			method: http.MethodPost,
			path:   "/api/managers/login",
			body:   `{"name":"Bob"}`,
			setupMock: func(m *MockManagerService) {
				m.On("Login", mock.Anything, "Bob").Return(nil, apperrors.ErrManagerNotFound)
			},
			statusCode: http.StatusUnauthorized,
			contains:   "MANAGER_NOT_FOUND",
		},
		{
			name:   "list store down",
			method: http.MethodGet,
			path:   "/api/managers",
			setupMock: func(m *MockManagerService) {
				m.On("List", mock.Anything).Return(nil, apperrors.NewStoreError("list managers", errors.New("gone")))
			},
			statusCode: http.StatusServiceUnavailable,
			contains:   "STORE_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := new(MockManagerService)
			tt.setupMock(ms)

			rec := do(newServer(ms, new(MockInventoryService)), tt.method, tt.path, tt.body)

			assert.Equal(t, tt.statusCode, rec.Code)
			if tt.contains != "" {
				assert.Contains(t, rec.Body.String(), tt.contains)
			}
			ms.AssertExpectations(t)
		})
	}
}

func TestMedicineRoutes_AddAndList(t *testing.T) {
	is := new(MockInventoryService)
	added := &model.Medicine{ID: 1, Name: "Paracetamol", Quantity: 0, AddedDate: time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), AddedBy: model.DefaultAddedBy}
	is.On("AddMedicine", mock.Anything, "Paracetamol", 0).Return(added, nil)
	is.On("ListMedicines", mock.Anything).Return([]model.Medicine{*added}, nil)
	e := newServer(new(MockManagerService), is)

	rec := do(e, http.MethodPost, "/api/medicines", `{"name":"Paracetamol","quantity":0}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodGet, "/api/medicines", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Paracetamol", list[0]["name"])
	assert.Nil(t, list[0]["price"])
	is.AssertExpectations(t)
}

func TestMedicineRoutes_AddRequiresQuantity(t *testing.T) {
	e := newServer(new(MockManagerService), new(MockInventoryService))

	rec := do(e, http.MethodPost, "/api/medicines", `{"name":"Paracetamol"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INVALID_INPUT"`)
	assert.Contains(t, rec.Body.String(), "invalid input: validation")
}

func TestMedicineRoutes_Delete(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(*MockInventoryService)
		statusCode int
		deleted    float64
	}{
		{
			name: "existing",
			path: "/api/medicines/1",
			setupMock: func(m *MockInventoryService) {
				m.On("DeleteMedicine", mock.Anything, uint(1)).Return(int64(1), nil)
			},
			statusCode: http.StatusOK,
			deleted:    1,
		},
		{
			name: "never assigned",
			path: "/api/medicines/9999",
			setupMock: func(m *MockInventoryService) {
				m.On("DeleteMedicine", mock.Anything, uint(9999)).Return(int64(0), nil)
			},
			statusCode: http.StatusOK,
			deleted:    0,
		},
		{
			name:       "non numeric id",
			path:       "/api/medicines/abc",
			setupMock:  func(m *MockInventoryService) {},
			statusCode: http.StatusBadRequest,
		},
		{
			name:       "negative id",
			path:       "/api/medicines/-1",
			setupMock:  func(m *MockInventoryService) {},
			statusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := new(MockInventoryService)
			tt.setupMock(is)

			rec := do(newServer(new(MockManagerService), is), http.MethodDelete, tt.path, "")

			assert.Equal(t, tt.statusCode, rec.Code)
			if tt.statusCode == http.StatusOK {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.deleted, body["deleted"])
			} else {
				assert.Contains(t, rec.Body.String(), `"code":"INVALID_INPUT"`)
			}
			is.AssertExpectations(t)
		})
	}
}
