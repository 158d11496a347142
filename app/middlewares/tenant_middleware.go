package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/bepasal/bazar/app/helpers"
	"github.com/bepasal/bazar/app/models"
)

const (
	tenantIDHeader   = "X-Tenant-ID"
	tenantNameHeader = "X-Tenant-Name"
	tenantAppsHeader = "X-Tenant-Apps"
)

// TenantMiddleware reads the tenant the upstream router already resolved.
// This service performs no tenant lookup of its own; every request arrives
// scoped to one tenant's schema.
func TenantMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.Header.Get(tenantIDHeader)
		if tenantID == "" {
			next.ServeHTTP(w, r)
			return
		}

		tenant := &models.Tenant{
			ID:   tenantID,
			Name: r.Header.Get(tenantNameHeader),
		}
		if apps := r.Header.Get(tenantAppsHeader); apps != "" {
			for _, app := range strings.Split(apps, ",") {
				tenant.Apps = append(tenant.Apps, strings.TrimSpace(app))
			}
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyTenant, tenant)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
