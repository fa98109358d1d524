package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"studioportal/internal/domain"
	"studioportal/internal/handler"
	"studioportal/internal/pricing"
	"studioportal/internal/router"
	"studioportal/mocks"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func setupRouter() (*gin.Engine, *mocks.MockPackageService) {
	gin.SetMode(gin.TestMode)
	svc := new(mocks.MockPackageService)
	r := router.Setup(handler.NewPackageHandler(svc), handler.NewHealthHandler(okPinger{}), []string{"http://localhost:3000"})
	return r, svc
}

func TestRouter_Health(t *testing.T) {
	r, _ := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_TierRoutes(t *testing.T) {
	r, svc := setupRouter()
	packageID, itemID := uuid.New(), uuid.New()

	svc.On("InsertTierBelow", mock.Anything, packageID, itemID, 2).Return([]pricing.TierView{}, nil)
	svc.On("DescribeTiers", mock.Anything, packageID, itemID).Return(nil, domain.ErrItemNotFound)

	base := "/api/v1/packages/" + packageID.String() + "/items/" + itemID.String() + "/tiers"

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, base+"/2/insert-below", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, base, http.NoBody)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	svc.AssertExpectations(t)
}
