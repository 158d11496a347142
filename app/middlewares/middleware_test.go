package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bepasal/bazar/app/helpers"
	"github.com/bepasal/bazar/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withPrincipal(r *http.Request, principal helpers.Principal) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), helpers.ContextKeyPrincipal, principal))
}

func TestTenantMiddleware(t *testing.T) {
	var got *models.Tenant
	handler := TenantMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = helpers.CurrentTenant(r)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/site/products/", nil)
	r.Header.Set("X-Tenant-ID", "t-1")
	r.Header.Set("X-Tenant-Name", "bepasal")
	r.Header.Set("X-Tenant-Apps", "ecommerce, crm")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	require.NotNil(t, got)
	assert.Equal(t, "t-1", got.ID)
	assert.Equal(t, "bepasal", got.Name)
	assert.Equal(t, []string{"ecommerce", "crm"}, got.Apps)
	assert.True(t, got.HasApp("ecommerce"))
	assert.False(t, got.HasApp("billing"))
}

func TestTenantMiddleware_NoHeaders(t *testing.T) {
	called := false
	handler := TenantMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Nil(t, helpers.CurrentTenant(r))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}

func TestAdminOrReadOnlyMiddleware(t *testing.T) {
	handler := AdminOrReadOnlyMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Anonymous reads pass.
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/site/products/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Anonymous writes are rejected.
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/site/products/", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "permission")

	// Authenticated non-staff writes are rejected too.
	w = httptest.NewRecorder()
	r := withPrincipal(httptest.NewRequest(http.MethodPost, "/api/site/products/", nil),
		helpers.Principal{ID: "u-1", IsAuthenticated: true})
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Staff writes pass.
	w = httptest.NewRecorder()
	r = withPrincipal(httptest.NewRequest(http.MethodPost, "/api/site/products/", nil),
		helpers.Principal{ID: "u-2", IsAuthenticated: true, IsStaff: true})
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnlyMiddleware(t *testing.T) {
	handler := AdminOnlyMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Reads are gated as well on the system surface.
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/system/products/", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	r := withPrincipal(httptest.NewRequest(http.MethodGet, "/api/system/products/", nil),
		helpers.Principal{ID: "u-2", IsAuthenticated: true, IsStaff: true})
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}
