package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Hashimp6/broperty/internal/database"
	"github.com/Hashimp6/broperty/internal/http/middleware"
	"github.com/Hashimp6/broperty/internal/model"
	"github.com/Hashimp6/broperty/internal/repository/memory"
	"github.com/Hashimp6/broperty/internal/search"
	"github.com/Hashimp6/broperty/internal/service"
	"github.com/Hashimp6/broperty/internal/storage"
)

var created = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func listing(id string, lng, lat float64, age time.Duration) model.Property {
	return model.Property{
		ID:           id,
		Title:        "Listing " + id,
		PropertyType: model.PropertyTypeApartment,
		ListingType:  model.ListingTypeSale,
		Status:       model.PropertyStatusAvailable,
		Price:        5000000,
		Address:      model.Address{City: "Thiruvananthapuram", State: "Kerala", ZipCode: "695001"},
		Location:     model.NewGeoPoint(lng, lat),
		Features:     model.Features{Bedrooms: 2, Bathrooms: 1, Area: 950, AreaUnit: "sqft"},
		OwnerID:      "seller-1",
		AgentID:      "agent-1",
		CreatedAt:    created.Add(-age),
		UpdatedAt:    created.Add(-age),
	}
}

func newMemoryApp(props ...model.Property) *fiber.App {
	users := memory.NewUserMemory(
		model.User{UserSummary: model.UserSummary{ID: "seller-1", Name: "Anil"}, Role: model.RoleSeller},
		model.User{UserSummary: model.UserSummary{ID: "agent-1", Name: "Meera"}, Role: model.RoleAgent},
		model.User{UserSummary: model.UserSummary{ID: "buyer-1", Name: "Ravi"}, Role: model.RoleBuyer},
	)
	propRepo := memory.NewPropertyMemory(props...)

	app := newApp()
	RegisterRoutes(app, Dependencies{
		Store:      database.PingFunc(func(ctx context.Context) error { return nil }),
		Properties: service.NewPropertyService(propRepo, users, storage.Unavailable{}, search.DefaultDefaults, nil, zap.NewNop()),
		Showings:   service.NewShowingService(memory.NewShowingMemory(), propRepo, users),
	})
	return app
}

func getResult(t *testing.T, app *fiber.App, target string) (*http.Response, search.Result) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)

	var res search.Result
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	}
	return resp, res
}

func TestSearchEndToEnd(t *testing.T) {
	a := listing("A", 76.95, 8.52, 2*time.Hour)
	b := listing("B", 76.96, 8.53, time.Hour)
	app := newMemoryApp(a, b)

	t.Run("proximity within 5 km", func(t *testing.T) {
		resp, res := getResult(t, app, "/properties?lat=8.52&lng=76.95&radius=5")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, res.Properties, 2)
		assert.Equal(t, "A", res.Properties[0].ID)
		assert.Equal(t, "B", res.Properties[1].ID)
		require.NotNil(t, res.Properties[1].Distance)
		assert.InDelta(t, 1560, *res.Properties[1].Distance, 15)
		require.NotNil(t, res.Properties[0].Owner)
		assert.Equal(t, "Anil", res.Properties[0].Owner.Name)
		assert.Equal(t, 2, res.Total)
		assert.Equal(t, 1, res.Pages)
	})

	t.Run("radius excludes the farther listing", func(t *testing.T) {
		resp, res := getResult(t, app, "/properties?lat=8.52&lng=76.95&radius=1")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, res.Properties, 1)
		assert.Equal(t, "A", res.Properties[0].ID)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("recency without a point", func(t *testing.T) {
		resp, res := getResult(t, app, "/properties")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, res.Properties, 2)
		assert.Equal(t, "B", res.Properties[0].ID)
		assert.Nil(t, res.Properties[0].Distance)
		require.NotNil(t, res.Properties[0].Agent)
		assert.Equal(t, "Meera", res.Properties[0].Agent.Name)
	})

	t.Run("proximity mode without a point", func(t *testing.T) {
		resp, _ := getResult(t, app, "/properties?mode=proximity")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, resp).Error.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/properties/nope", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestSearchEndToEnd_Pagination(t *testing.T) {
	props := make([]model.Property, 0, 15)
	for i := 0; i < 15; i++ {
		props = append(props, listing(fmt.Sprintf("apt-%02d", i), 76.95, 8.52, time.Duration(i)*time.Hour))
	}
	app := newMemoryApp(props...)

	resp, res := getResult(t, app, "/properties?propertyType=apartment&page=2&limit=10")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, res.Properties, 5)
	assert.Equal(t, 15, res.Total)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, 2, res.Page)

	_, again := getResult(t, app, "/properties?propertyType=apartment&page=2&limit=10")
	assert.Equal(t, res, again)
}

func TestSearchEndToEnd_PageBeyondAddressableRange(t *testing.T) {
	app := newMemoryApp(listing("A", 76.95, 8.52, time.Hour), listing("B", 76.96, 8.53, 2*time.Hour))

	for _, target := range []string{
		"/properties?page=922337203685477580&limit=100",
		"/properties?lat=8.52&lng=76.95&page=922337203685477580&limit=100",
	} {
		resp, res := getResult(t, app, target)

		require.Equal(t, http.StatusOK, resp.StatusCode, target)
		assert.NotNil(t, res.Properties)
		assert.Empty(t, res.Properties)
		assert.Equal(t, 922337203685477580, res.Page)
		assert.Equal(t, 2, res.Total)
		assert.Equal(t, 1, res.Pages)
	}
}

func TestShowingEndToEnd(t *testing.T) {
	app := newMemoryApp(listing("A", 76.95, 8.52, time.Hour))

	book := func(at string) *http.Response {
		body := fmt.Sprintf(`{"propertyId":"A","scheduledDate":%q}`, at)
		req := jsonRequest(http.MethodPost, "/showings", body)
		req.Header.Set(middleware.UserIDHeader, "buyer-1")
		req.Header.Set(middleware.UserRoleHeader, "buyer")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := book("2030-03-10T10:00:00Z")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var sh model.Showing
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sh))
	assert.Equal(t, "agent-1", sh.AgentID)
	assert.Equal(t, model.ShowingStatusPending, sh.Status)

	conflict := book("2030-03-10T10:45:00Z")
	assert.Equal(t, http.StatusConflict, conflict.StatusCode)

	free := book("2030-03-10T11:01:00Z")
	assert.Equal(t, http.StatusCreated, free.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/showings", nil)
	req.Header.Set(middleware.UserIDHeader, "agent-1")
	req.Header.Set(middleware.UserRoleHeader, "agent")
	listResp, err := app.Test(req)
	require.NoError(t, err)

	var items []model.Showing
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&items))
	assert.Len(t, items, 2)
}
