package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	const id = "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name string
		path string
		want string
	}{
		{"user by id", "/api/v1/users/" + id, "/api/v1/users/:id"},
		{"item by id", "/api/v1/items/" + id, "/api/v1/items/:id"},
		{"order by id", "/api/v1/orders/" + id, "/api/v1/orders/:id"},
		{"news by id", "/api/v1/news/" + id, "/api/v1/news/:id"},
		{"item with query params", "/api/v1/items/" + id + "?full=1", "/api/v1/items/:id"},
		{"item with trailing slash", "/api/v1/items/" + id + "/", "/api/v1/items/:id"},
		{"collection unchanged", "/api/v1/items", "/api/v1/items"},
		{"collection query stripped", "/api/v1/items?page=2&size=50", "/api/v1/items"},
		{"login unchanged", "/api/v1/auth/login", "/api/v1/auth/login"},
		{"health unchanged", "/health", "/health"},
		{"metrics unchanged", "/metrics", "/metrics"},
		{"root unchanged", "/", "/"},
		{"non uuid id passes through", "/api/v1/items/123", "/api/v1/items/123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
