package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"parts_office/internal/auth"
	"parts_office/internal/config"
	"parts_office/internal/model"
	"parts_office/internal/service"
)

type testApp struct {
	r     *gin.Engine
	db    *gorm.DB
	token string
	admin *model.Admin
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One pooled connection: every :memory: connection is its own database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.Admin{}, &model.Client{}, &model.Category{}, &model.StoreLocation{},
		&model.Product{}, &model.Contract{}, &model.ContractItem{}, &model.ContractEvent{},
	))

	tokens := auth.NewTokens("test-secret", time.Hour)
	admins := service.NewAdminService(db, tokens)

	admin, token, err := admins.Create(service.CreateAdminInput{
		Fname: "Ali", Lname: "Valiyev", Username: "ali", Password: "secret1", Super: true,
	}, "")
	require.NoError(t, err)

	r := gin.New()
	Setup(r, Deps{
		DB:        db,
		Tokens:    tokens,
		Cfg:       config.AppConfig{},
		Admins:    admins,
		Clients:   service.NewClientService(db),
		Products:  service.NewProductService(db),
		Contracts: service.NewContractService(db, nil, nil),
	})

	return &testApp{r: r, db: db, token: token, admin: admin}
}

func (a *testApp) do(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out.Data
}

func (a *testApp) seedCatalog(t *testing.T, count, price int64) (productID string) {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/categories", gin.H{"name": "Motors"}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	categoryID := dataOf(t, w)["id"].(string)

	w = a.do(t, http.MethodPost, "/api/products", gin.H{
		"marka": "Toyota", "count": count, "price": price, "category": categoryID,
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return dataOf(t, w)["id"].(string)
}

func (a *testApp) seedClient(t *testing.T, phone string) {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/clients", gin.H{
		"fname": "John", "phone_number": phone, "firma": "ABC Corp",
		"type": "customer", "location": "Tashkent",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestLoginAndGuard(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "ali", "password": "secret1"}, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, dataOf(t, w)["token"])

	w = app.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "ali", "password": "nope"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Mutating routes are closed without a token.
	w = app.do(t, http.MethodPost, "/api/contracts", gin.H{}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSuperGuard(t *testing.T) {
	app := newTestApp(t)

	// Register an ordinary admin, then act with its token.
	w := app.do(t, http.MethodPost, "/api/admins", gin.H{
		"fname": "Vali", "lname": "Aliyev", "username": "vali", "password": "secret1",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	ordinary := &testApp{r: app.r, db: app.db, token: created.Token}
	w = ordinary.do(t, http.MethodPost, "/api/admins", gin.H{
		"fname": "X", "lname": "Y", "username": "x", "password": "secret1",
	}, true)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestContractLifecycle(t *testing.T) {
	app := newTestApp(t)
	productID := app.seedCatalog(t, 1, 100)
	app.seedClient(t, "+998901234567")

	// Create: count 1 -> 0, price 100 with 10% discount -> 90.
	w := app.do(t, http.MethodPost, "/api/contracts", gin.H{
		"product": []string{productID}, "client": "+998901234567",
		"discount": 10, "paytype": "cash",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	contract := dataOf(t, w)
	contractID := contract["id"].(string)
	assert.Equal(t, float64(90), contract["price"])

	var prod model.Product
	require.NoError(t, app.db.First(&prod, "id = ?", productID).Error)
	assert.Equal(t, int64(0), prod.Count)

	// Second sale of the exhausted product fails and reports it.
	w = app.do(t, http.MethodPost, "/api/contracts", gin.H{
		"product": []string{productID}, "client": "+998901234567",
	}, true)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var oos struct {
		Product *model.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &oos))
	require.NotNil(t, oos.Product)
	assert.Equal(t, productID, oos.Product.ID)

	// Round trip.
	w = app.do(t, http.MethodGet, "/api/contracts/"+contractID, nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	got := dataOf(t, w)
	assert.Equal(t, float64(90), got["price"])
	assert.Equal(t, "cash", got["paytype"])

	// Invalid payment type on update leaves the row untouched.
	w = app.do(t, http.MethodPatch, "/api/contracts/"+contractID, gin.H{"paytype": "bitcoin"}, true)
	require.Equal(t, http.StatusBadRequest, w.Code)
	w = app.do(t, http.MethodGet, "/api/contracts/"+contractID, nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cash", dataOf(t, w)["paytype"])

	// Delete answers with a message and the contract is gone.
	w = app.do(t, http.MethodDelete, "/api/contracts/"+contractID, nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "contract deleted successfully", dataOf(t, w)["message"])

	w = app.do(t, http.MethodGet, "/api/contracts/"+contractID, nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContractValidationFailures(t *testing.T) {
	app := newTestApp(t)
	productID := app.seedCatalog(t, 2, 100)
	app.seedClient(t, "+998901234567")

	cases := []struct {
		name string
		body gin.H
		code int
	}{
		{"unknown client", gin.H{"product": []string{productID}, "client": "+998000000000"}, http.StatusNotFound},
		{"negative discount", gin.H{"product": []string{productID}, "client": "+998901234567", "discount": -5}, http.StatusBadRequest},
		{"bad paytype", gin.H{"product": []string{productID}, "client": "+998901234567", "paytype": "bitcoin"}, http.StatusBadRequest},
		{"malformed product id", gin.H{"product": []string{"nope"}, "client": "+998901234567"}, http.StatusBadRequest},
		{"missing products", gin.H{"client": "+998901234567"}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := app.do(t, http.MethodPost, "/api/contracts", tc.body, true)
			assert.Equal(t, tc.code, w.Code, w.Body.String())
		})
	}

	// None of the failures may leak a decrement.
	var prod model.Product
	require.NoError(t, app.db.First(&prod, "id = ?", productID).Error)
	assert.Equal(t, int64(2), prod.Count)
}

func TestClientPhoneConflict(t *testing.T) {
	app := newTestApp(t)
	app.seedClient(t, "+998901234567")

	w := app.do(t, http.MethodPost, "/api/clients", gin.H{
		"fname": "Other", "phone_number": "+998901234567", "firma": "Z",
		"type": "customer", "location": "Samarkand",
	}, true)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProductSearch(t *testing.T) {
	app := newTestApp(t)
	app.seedCatalog(t, 1, 100)

	w := app.do(t, http.MethodGet, "/api/products/search?marka=Toyo", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Data []model.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Data, 1)

	w = app.do(t, http.MethodGet, "/api/products/search?marka=Kamaz", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Empty(t, out.Data)
}

func TestStockEndpointFallsBackToDB(t *testing.T) {
	app := newTestApp(t)
	productID := app.seedCatalog(t, 7, 100)

	w := app.do(t, http.MethodGet, fmt.Sprintf("/api/stock/%s", productID), nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(7), dataOf(t, w)["stock"])

	w = app.do(t, http.MethodGet, "/api/stock/60d0fe4f-5311-4361-88a1-09cafe00beef", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
