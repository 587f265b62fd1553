package controllers_test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"boutic/constants"
	"boutic/models"
	"boutic/routes"
	"boutic/services"
	"boutic/services/logger"
	"boutic/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.FlashSaleService, *storage.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Write(constants.CollectionProducts, []models.Product{
		{ID: "p1", Name: "Savon de Marseille", Price: 100},
		{ID: "p2", Name: "Huile d'argan", Price: 49.99},
	}))

	svc := services.NewFlashSaleService(services.FlashSaleServiceOptions{
		Store:  store,
		Logger: logger.NewDefaultLogger(logger.ErrorLevel),
	})

	router := gin.New()
	routes.SetupRoutes(router, svc, nil)
	return router, svc, store
}

// token forge un JWT non signé au format attendu par le middleware.
func token(t *testing.T, role string) string {
	t.Helper()
	payload, err := json.Marshal(map[string]string{"userId": "u1", "role": role})
	require.NoError(t, err)
	return "e30." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func do(router *gin.Engine, method, path, body, auth string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", "Bearer "+auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createBody(discount int, start, end time.Time, productIDs string) string {
	return fmt.Sprintf(`{
		"title": "Vente éclair",
		"description": "Promo du week-end",
		"discount": %d,
		"startDate": %q,
		"endDate": %q,
		"productIds": %s
	}`, discount, start.Format(time.RFC3339), end.Format(time.RFC3339), productIDs)
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Code int                    `json:"code"`
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestGetActiveReturns404WhenNone(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/flash-sales/active", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodGet, "/api/flash-sales/active-all", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	router, _, _ := newTestRouter(t)
	body := createBody(20, time.Now().Add(-time.Hour), time.Now().Add(time.Hour), `["p1"]`)

	w := do(router, http.MethodPost, "/api/flash-sales/", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodPost, "/api/flash-sales/", body, token(t, constants.RoleClient))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(router, http.MethodGet, "/api/flash-sales/", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	router, _, _ := newTestRouter(t)
	admin := token(t, constants.RoleAdmin)

	w := do(router, http.MethodPost, "/api/flash-sales/", `{"title": "Sans remise"}`, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := createBody(120, time.Now(), time.Now().Add(time.Hour), `["p1"]`)
	w = do(router, http.MethodPost, "/api/flash-sales/", body, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateStripsHTMLFromInputs(t *testing.T) {
	router, _, _ := newTestRouter(t)
	admin := token(t, constants.RoleAdmin)

	body := fmt.Sprintf(`{
		"title": "<b>Promo</b>",
		"discount": 10,
		"startDate": %q,
		"endDate": %q
	}`, time.Now().Format(time.RFC3339), time.Now().Add(time.Hour).Format(time.RFC3339))

	w := do(router, http.MethodPost, "/api/flash-sales/", body, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Promo", dataField(t, w)["title"])
}

func TestCreateAcceptsObjectShapedProductIDs(t *testing.T) {
	router, _, _ := newTestRouter(t)
	admin := token(t, constants.RoleAdmin)

	body := createBody(20, time.Now().Add(-time.Hour), time.Now().Add(time.Hour), `{"0": "p1", "1": "p2"}`)
	w := do(router, http.MethodPost, "/api/flash-sales/", body, admin)
	require.Equal(t, http.StatusOK, w.Code)

	ids := dataField(t, w)["productIds"].([]interface{})
	assert.Equal(t, []interface{}{"p1", "p2"}, ids)
}

func TestFlashSaleLifecycleOverHTTP(t *testing.T) {
	router, _, _ := newTestRouter(t)
	admin := token(t, constants.RoleAdmin)

	// Création : inactive par défaut.
	body := createBody(30, time.Now().Add(-24*time.Hour), time.Now().Add(24*time.Hour), `["p1"]`)
	w := do(router, http.MethodPost, "/api/flash-sales/", body, admin)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	id := data["id"].(string)
	assert.Equal(t, false, data["isActive"])

	// Pas encore active.
	w = do(router, http.MethodGet, "/api/flash-sales/active", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Activation.
	w = do(router, http.MethodPost, "/api/flash-sales/"+id+"/activate", "", admin)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/flash-sales/active", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, dataField(t, w)["id"])

	// Bannière : prix remisé de 30%.
	w = do(router, http.MethodGet, "/api/flash-sales/banniere-products", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var bannerEnvelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bannerEnvelope))
	require.Len(t, bannerEnvelope.Data, 1)
	assert.Equal(t, "p1", bannerEnvelope.Data[0]["id"])
	assert.Equal(t, 70.0, bannerEnvelope.Data[0]["flashSalePrice"])

	// Produits de la vente.
	w = do(router, http.MethodGet, "/api/flash-sales/"+id+"/products", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	// Désactivation.
	w = do(router, http.MethodPost, "/api/flash-sales/"+id+"/deactivate", "", admin)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(router, http.MethodGet, "/api/flash-sales/active", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Suppression définitive.
	w = do(router, http.MethodDelete, "/api/flash-sales/"+id, "", admin)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(router, http.MethodGet, "/api/flash-sales/"+id, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownIDReturns404(t *testing.T) {
	router, _, _ := newTestRouter(t)
	admin := token(t, constants.RoleAdmin)

	for _, tc := range []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/flash-sales/inconnue", ""},
		{http.MethodPost, "/api/flash-sales/inconnue/activate", ""},
		{http.MethodPost, "/api/flash-sales/inconnue/deactivate", ""},
		{http.MethodPut, "/api/flash-sales/inconnue", `{"title": "X"}`},
		{http.MethodDelete, "/api/flash-sales/inconnue", ""},
		{http.MethodGet, "/api/flash-sales/inconnue/products", ""},
	} {
		w := do(router, tc.method, tc.path, tc.body, admin)
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRateLimitCapsRequests(t *testing.T) {
	router, _, _ := newTestRouter(t)

	last := 0
	for i := 0; i < 101; i++ {
		w := do(router, http.MethodGet, "/api/flash-sales/active", "", "")
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
