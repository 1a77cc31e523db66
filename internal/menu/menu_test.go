package menu

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/middleware"
	"storefront/internal/options"
)

const tenant = "tenant-1"

func seed(t *testing.T) (*Service, *MenuItem, *options.Option, *options.Choice) {
	t.Helper()
	ctx := context.Background()
	svc := NewService(NewInMemoryRepository())

	item, err := svc.CreateItem(ctx, tenant, "Milk Tea", 20000)
	require.NoError(t, err)

	size, err := svc.AddOption(ctx, tenant, options.Option{
		MenuItemID:    item.ID,
		Label:         "Size",
		SelectionType: options.ExactlyOne,
		MaxSelections: 4,
		IsRequired:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, size.MaxSelections)

	large, err := svc.AddChoice(ctx, tenant, options.Choice{
		OptionID: size.ID, Name: "Large", AdditionalPrice: 5000, IsAvailable: true,
	})
	require.NoError(t, err)

	_, err = svc.AddChoice(ctx, tenant, options.Choice{
		OptionID: size.ID, Name: "Jumbo", AdditionalPrice: 9000, IsAvailable: false,
	})
	require.NoError(t, err)

	return svc, item, size, large
}

func TestService_CatalogDropsUnavailable(t *testing.T) {
	svc, item, _, large := seed(t)

	cat, err := svc.Catalog(context.Background(), tenant, item.ID)
	require.NoError(t, err)
	require.Len(t, cat.Options, 1)
	require.Len(t, cat.Options[0].Choices, 1)
	assert.Equal(t, large.ID, cat.Options[0].Choices[0].ID)
}

func TestService_LookupKeepsUnavailable(t *testing.T) {
	svc, _, size, _ := seed(t)

	lookup, err := svc.Lookup(context.Background(), tenant)
	require.NoError(t, err)
	require.Contains(t, lookup, size.ID)
	assert.Equal(t, "Size", lookup[size.ID].Label)
	assert.Len(t, lookup[size.ID].Items, 2)

	other, err := svc.Lookup(context.Background(), "tenant-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestService_TenantIsolation(t *testing.T) {
	svc, item, size, large := seed(t)
	ctx := context.Background()

	_, err := svc.Catalog(ctx, "tenant-2", item.ID)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)

	_, err = svc.AddChoice(ctx, "tenant-2", options.Choice{OptionID: size.ID, Name: "Small"})
	assert.ErrorIs(t, err, ErrOptionNotFound)

	err = svc.SetChoiceAvailability(ctx, "tenant-2", large.ID, false)
	assert.ErrorIs(t, err, ErrChoiceNotFound)
}

func TestService_Validation(t *testing.T) {
	svc, item, _, _ := seed(t)
	ctx := context.Background()

	_, err := svc.AddOption(ctx, tenant, options.Option{MenuItemID: item.ID, Label: "Toppings", SelectionType: options.UpToN})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.AddOption(ctx, tenant, options.Option{MenuItemID: item.ID, Label: "x", SelectionType: "MANY"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.AddChoice(ctx, tenant, options.Choice{Name: " ", AdditionalPrice: 1})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.CreateItem(ctx, tenant, "Broken", -1)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestBuildSnapshot_SelectableFlags(t *testing.T) {
	tops := options.Option{ID: "tops", Label: "Toppings", SelectionType: options.UpToN, MaxSelections: 1}
	boba := options.Choice{ID: "boba", OptionID: "tops", Name: "Boba", IsAvailable: true}
	jelly := options.Choice{ID: "jelly", OptionID: "tops", Name: "Jelly", IsAvailable: true}
	cat := options.Catalog{Options: []options.OptionWithChoices{{Option: tops, Choices: []options.Choice{boba, jelly}}}}

	set := options.Select(options.NewSelectionSet(), tops, boba)
	snap := BuildSnapshot(MenuItem{ID: "i"}, cat, set)

	require.Len(t, snap.Options[0].Choices, 2)
	assert.True(t, snap.Options[0].Choices[0].Selectable)
	assert.False(t, snap.Options[0].Choices[1].Selectable)
}

// --------------------------------------------------
// Handlers
// --------------------------------------------------

func withTenant(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.KeyTenantID, id)
		c.Next()
	}
}

func setupMenuTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(withTenant(tenant))

	h := NewHandler(svc)
	admin := NewAdminHandler(svc)

	r.GET("/menu-items/:id/options", h.Options)
	r.POST("/admin/menu-items", admin.CreateItem)
	r.POST("/admin/menu-items/:id/options", admin.CreateOption)
	r.POST("/admin/options/:id/choices", admin.CreateChoice)
	r.PATCH("/admin/choices/:id/availability", admin.SetAvailability)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_AdminFlow(t *testing.T) {
	r := setupMenuTestRouter(NewService(NewInMemoryRepository()))

	w := doJSON(r, http.MethodPost, "/admin/menu-items", gin.H{"name": "Latte", "base_price": 30000})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))

	w = doJSON(r, http.MethodPost, "/admin/menu-items/"+item.ID+"/options", gin.H{
		"label": "Sugar", "selection_type": "AT_MOST_ONE",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var opt options.Option
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opt))

	w = doJSON(r, http.MethodPost, "/admin/options/"+opt.ID+"/choices", gin.H{"name": "Less Sugar"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var choice options.Choice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &choice))
	assert.True(t, choice.IsAvailable)

	w = doJSON(r, http.MethodPatch, "/admin/choices/"+choice.ID+"/availability", gin.H{"is_available": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, "/menu-items/"+item.ID+"/options", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	require.Len(t, snap.Options, 1)
	assert.Empty(t, snap.Options[0].Choices)
}

func TestHandler_Errors(t *testing.T) {
	r := setupMenuTestRouter(NewService(NewInMemoryRepository()))

	w := doJSON(r, http.MethodGet, "/menu-items/missing/options", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/admin/menu-items/missing/options", gin.H{
		"label": "Sugar", "selection_type": "AT_MOST_ONE",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPost, "/admin/menu-items", gin.H{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPatch, "/admin/choices/x/availability", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
