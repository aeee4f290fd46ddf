package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-food-ordering/helpers"
	"go-food-ordering/middleware"
	"go-food-ordering/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var caller = models.Principal{ID: primitive.NewObjectID(), Username: "ana", Email: "ana@example.com"}

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (models.Principal, error) {
	if token == "valid" {
		return caller, nil
	}
	return models.Principal{}, helpers.Unauthorized("token inválido")
}

type mockOrderService struct{ mock.Mock }

func (m *mockOrderService) AddOrder(ctx context.Context, p models.Principal, input models.OrderInput) (*models.Order, error) {
	args := m.Called(p, input)
	if o := args.Get(0); o != nil {
		return o.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderService) GetOrderByID(ctx context.Context, p models.Principal, id string) (*models.Order, error) {
	args := m.Called(p, id)
	if o := args.Get(0); o != nil {
		return o.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderService) UpdateOrder(ctx context.Context, p models.Principal, id string, patch models.OrderPatch) (*models.Order, error) {
	args := m.Called(p, id, patch)
	if o := args.Get(0); o != nil {
		return o.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderService) DeleteOrder(ctx context.Context, p models.Principal, id string) error {
	return m.Called(p, id).Error(0)
}

func (m *mockOrderService) GetAllOrders(ctx context.Context, p models.Principal) ([]models.Order, error) {
	args := m.Called(p)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockOrderService) GetOrdersPage(ctx context.Context, p models.Principal, page, limit int64) (*models.OrderPage, error) {
	args := m.Called(p, page, limit)
	return args.Get(0).(*models.OrderPage), args.Error(1)
}

func (m *mockOrderService) GetOrdersByUser(ctx context.Context, p models.Principal, userID string) ([]models.Order, error) {
	args := m.Called(p, userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockOrderService) GetCompletedOrdersByUser(ctx context.Context, p models.Principal, userID string) ([]models.Order, error) {
	args := m.Called(p, userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockOrderService) GetOrdersByRestaurant(ctx context.Context, p models.Principal, restaurantID string) ([]models.Order, error) {
	args := m.Called(p, restaurantID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func orderRouter(svc OrderService) *gin.Engine {
	h := NewOrderController(svc, 0)
	router := gin.New()
	api := router.Group("/api", middleware.Authentication(stubVerifier{}))
	api.POST("/orders", h.CreateOrder())
	api.GET("/orders", h.GetOrders())
	api.GET("/orders/:order_id", h.GetOrder())
	api.PUT("/orders/:order_id", h.UpdateOrder())
	api.DELETE("/orders/:order_id", h.DeleteOrder())
	return router
}

func send(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOrderController_CreateOrder(t *testing.T) {
	restaurantID := primitive.NewObjectID().Hex()
	productID := primitive.NewObjectID().Hex()

	tests := []struct {
		name      string
		body      string
		setupMock func(*mockOrderService)
		wantCode  int
		wantBody  string
	}{
		{
			name: "created",
			body: `{"restauranteId":"` + restaurantID + `","productsIds":["` + productID + `"]}`,
			setupMock: func(m *mockOrderService) {
				m.On("AddOrder", caller, models.OrderInput{RestauranteID: restaurantID, ProductsIDs: []string{productID}}).
					Return(&models.Order{OrderID: "o-1", Total: 199, Estado: models.OrderPending}, nil).Once()
			},
			wantCode: http.StatusCreated,
			wantBody: `"total":199`,
		},
		{
			name:      "unknown field",
			body:      `{"restauranteId":"x","productsIds":["y"],"total":1}`,
			setupMock: func(m *mockOrderService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed json",
			body:      `{invalid}`,
			setupMock: func(m *mockOrderService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing products",
			body: `{"restauranteId":"` + restaurantID + `","productsIds":["` + productID + `"]}`,
			setupMock: func(m *mockOrderService) {
				m.On("AddOrder", caller, mock.Anything).Return(nil, helpers.NotFound("Algunos productos no fueron encontrados")).Once()
			},
			wantCode: http.StatusNotFound,
			wantBody: "Algunos productos no fueron encontrados",
		},
		{
			name: "driver failure",
			body: `{"restauranteId":"` + restaurantID + `","productsIds":["` + productID + `"]}`,
			setupMock: func(m *mockOrderService) {
				m.On("AddOrder", caller, mock.Anything).Return(nil, errors.New("connection reset")).Once()
			},
			wantCode: http.StatusInternalServerError,
			wantBody: "error interno del servidor",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockOrderService)
			tc.setupMock(svc)

			w := send(orderRouter(svc), http.MethodPost, "/api/orders", tc.body)

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantBody != "" {
				assert.Contains(t, w.Body.String(), tc.wantBody)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestOrderController_UpdateCompletedOrder(t *testing.T) {
	svc := new(mockOrderService)
	status := models.OrderCancelled
	svc.On("UpdateOrder", caller, "abc", models.OrderPatch{Estado: &status}).
		Return(nil, helpers.Conflict("No se pueden modificar órdenes en estado Completed")).Once()

	w := send(orderRouter(svc), http.MethodPut, "/api/orders/abc", `{"estado":"Cancelled"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "No se pueden modificar órdenes en estado Completed", body["error"])
	svc.AssertExpectations(t)
}

func TestOrderController_GetOrdersPagination(t *testing.T) {
	svc := new(mockOrderService)
	svc.On("GetOrdersPage", caller, int64(2), int64(10)).Return(&models.OrderPage{Total: 25, CurrentPage: 2, TotalPages: 3, Orders: []models.Order{}}, nil).Once()
	svc.On("GetAllOrders", caller).Return([]models.Order{}, nil).Once()
	router := orderRouter(svc)

	w := send(router, http.MethodGet, "/api/orders?page=2&limit=10", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPages":3`)

	w = send(router, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	svc.AssertExpectations(t)
}

func TestOrderController_GetOrderPassesCaller(t *testing.T) {
	svc := new(mockOrderService)
	svc.On("GetOrderByID", caller, "abc").Return(&models.Order{OrderID: "o-1"}, nil).Once()
	svc.On("GetOrderByID", caller, "other").Return(nil, helpers.Forbidden("no tienes permiso sobre esta orden")).Once()
	router := orderRouter(svc)

	w := send(router, http.MethodGet, "/api/orders/abc", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"orderId":"o-1"`)
	assert.Equal(t, http.StatusForbidden, send(router, http.MethodGet, "/api/orders/other", "").Code)
	svc.AssertExpectations(t)
}

func TestOrderController_DeleteOrder(t *testing.T) {
	svc := new(mockOrderService)
	svc.On("DeleteOrder", caller, "abc").Return(nil).Once()
	svc.On("DeleteOrder", caller, "other").Return(helpers.Forbidden("no tienes permiso sobre esta orden")).Once()
	router := orderRouter(svc)

	assert.Equal(t, http.StatusOK, send(router, http.MethodDelete, "/api/orders/abc", "").Code)
	assert.Equal(t, http.StatusForbidden, send(router, http.MethodDelete, "/api/orders/other", "").Code)
	svc.AssertExpectations(t)
}

func TestOrderController_RequiresToken(t *testing.T) {
	svc := new(mockOrderService)
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	orderRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "GetAllOrders")
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{helpers.NotFound("x"), http.StatusNotFound},
		{helpers.Conflict("x"), http.StatusConflict},
		{helpers.Validation("x"), http.StatusBadRequest},
		{helpers.Unauthorized("x"), http.StatusUnauthorized},
		{helpers.Forbidden("x"), http.StatusForbidden},
		{errors.Wrap(helpers.NotFound("x"), "lookup"), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		respondError(c, tc.err)
		assert.Equal(t, tc.wantCode, w.Code, tc.err.Error())
	}
}
