package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/foxuse/showcase/internal/model"
)

func seedProduct(t *testing.T, env *testEnv, name, category string, createdAt time.Time) model.Product {
	t.Helper()
	p := model.Product{
		Name:        name,
		Description: name + " description",
		Status:      model.ProductStatusPlanning,
		Category:    category,
		CreatedAt:   createdAt,
	}
	if err := env.products.Create(context.Background(), &p); err != nil {
		t.Fatalf("seed product %q: %v", name, err)
	}
	return p
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedProduct(t, env, "oldest", "Tools", base)
	seedProduct(t, env, "middle", "Apps", base.Add(time.Hour))
	seedProduct(t, env, "newest", "Tools", base.Add(2*time.Hour))

	tests := []struct {
		name      string
		path      string
		wantNames []string
	}{
		{
			name:      "all products newest first",
			path:      "/products",
			wantNames: []string{"newest", "middle", "oldest"},
		},
		{
			name:      "exact category match",
			path:      "/products?category=Tools",
			wantNames: []string{"newest", "oldest"},
		},
		{
			name:      "unknown category",
			path:      "/products?category=Games",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, tt.path, nil, false)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var products []model.Product
			decodeBody(t, rec, &products)

			gotNames := []string{}
			for _, p := range products {
				gotNames = append(gotNames, p.Name)
			}
			if diff := cmp.Diff(tt.wantNames, gotNames); diff != "" {
				t.Errorf("product order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreateProduct(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		wantStatus string
	}{
		{
			name:       "status defaults to Planning",
			body:       map[string]any{"name": "Widget", "description": "d", "category": "Tools"},
			wantStatus: model.ProductStatusPlanning,
		},
		{
			name:       "provided status kept",
			body:       map[string]any{"name": "Widget", "description": "d", "category": "Tools", "status": model.ProductStatusLaunched},
			wantStatus: model.ProductStatusLaunched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.do(t, http.MethodPost, "/products", tt.body, true)
			if rec.Code != http.StatusCreated {
				t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
			}

			var created model.Product
			decodeBody(t, rec, &created)
			if created.Status != tt.wantStatus {
				t.Errorf("created status = %q, want %q", created.Status, tt.wantStatus)
			}
			if created.ID == 0 {
				t.Error("created product has no id")
			}
		})
	}
}

func TestCreateProductUnauthorized(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/products", map[string]any{"name": "Widget"}, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "Unauthorized" {
		t.Errorf(`error = %q, want "Unauthorized"`, body["error"])
	}
	if env.products.Len() != 0 {
		t.Errorf("store mutated by unauthorized request: %d products", env.products.Len())
	}
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)
	p := seedProduct(t, env, "Widget", "Tools", time.Now())

	t.Run("existing", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/products/1", nil, false)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var got model.Product
		decodeBody(t, rec, &got)
		if got.ID != p.ID || got.Name != p.Name {
			t.Errorf("got product %+v, want id=%d name=%q", got, p.ID, p.Name)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/products/999", nil, false)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		var body map[string]string
		decodeBody(t, rec, &body)
		if body["error"] != "Product not found" {
			t.Errorf(`error = %q, want "Product not found"`, body["error"])
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/products/abc", nil, false)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}

func TestUpdateProduct(t *testing.T) {
	env := newTestEnv(t)
	link := "https://example.com/old"
	p := model.Product{Name: "Widget", Status: model.ProductStatusLaunched, Category: "Tools", Link: &link}
	if err := env.products.Create(context.Background(), &p); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	t.Run("replaces fields and clears absent link", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/products/1", map[string]any{
			"name":        "Widget 2",
			"description": "updated",
			"status":      model.ProductStatusInProgress,
			"category":    "Apps",
		}, true)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
		}

		var got model.Product
		decodeBody(t, rec, &got)
		if got.Name != "Widget 2" || got.Status != model.ProductStatusInProgress || got.Category != "Apps" {
			t.Errorf("unexpected updated product: %+v", got)
		}
		if got.Link != nil {
			t.Errorf("link = %q, want cleared", *got.Link)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/products/999", map[string]any{"name": "x"}, true)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("unauthorized leaves store unchanged", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/products/1", map[string]any{"name": "hacked"}, false)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		stored, err := env.products.GetByID(context.Background(), 1)
		if err != nil {
			t.Fatalf("get product: %v", err)
		}
		if stored.Name == "hacked" {
			t.Error("store mutated by unauthorized request")
		}
	})
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	seedProduct(t, env, "Widget", "Tools", time.Now())

	t.Run("unauthorized leaves store unchanged", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/products/1", nil, false)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		if env.products.Len() != 1 {
			t.Error("store mutated by unauthorized request")
		}
	})

	t.Run("existing", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/products/1", nil, true)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var body map[string]bool
		decodeBody(t, rec, &body)
		if !body["success"] {
			t.Errorf("success = %v, want true", body["success"])
		}
		if env.products.Len() != 0 {
			t.Errorf("product not removed, %d left", env.products.Len())
		}
	})

	t.Run("already gone", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/products/1", nil, true)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}
