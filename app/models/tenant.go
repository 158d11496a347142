package models

// Tenant is resolved by the upstream routing layer before a request reaches
// this service. It is attached to the request context, never persisted here.
type Tenant struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Apps []string `json:"apps"`
}

// HasApp reports whether the tenant has the named app enabled, e.g.
// "ecommerce" which gates the review subsystem.
func (t *Tenant) HasApp(name string) bool {
	if t == nil {
		return false
	}
	for _, app := range t.Apps {
		if app == name {
			return true
		}
	}
	return false
}
