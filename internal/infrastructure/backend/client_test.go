package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lotes_backoffice/internal/domain/entities"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestDecodePage_Envelopes(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		items int
		total int
	}{
		{"items envelope", `{"items":[{"id":"1"},{"id":"2"}],"meta":{"totalItems":12,"itemsPerPage":2,"totalPages":6,"currentPage":1}}`, 2, 12},
		{"data envelope", `{"data":[{"id":"1"}],"meta":{"totalItems":1,"itemsPerPage":10,"totalPages":1,"currentPage":1}}`, 1, 1},
		{"nested data", `{"data":{"items":[{"id":"1"},{"id":"2"},{"id":"3"}],"meta":{"totalItems":3,"itemsPerPage":10,"totalPages":1,"currentPage":1}}}`, 3, 3},
		{"bare array", `[{"id":"1"},{"id":"2"}]`, 2, 2},
		{"empty", `{"items":[],"meta":{"totalItems":0,"itemsPerPage":10,"totalPages":0,"currentPage":1}}`, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := decodePage[entities.Lead]([]byte(tc.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(page.Items) != tc.items || page.Meta.TotalItems != tc.total {
				t.Fatalf("unexpected page: %+v", page)
			}
			if page.Items == nil {
				t.Fatalf("items must never be nil")
			}
		})
	}
}

func TestClient_Lots_SendsParamsAndToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/sales/projects/lots/P1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("blockId") != "B1" || q.Get("page") != "1" || q.Get("limit") != "50" || q.Get("order") != "ASC" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("missing bearer token")
		}
		_, _ = w.Write([]byte(`{"data":[{"id":"L1","lotPrice":"1000.50","totalPrice":1500,"status":"Activo"}],"meta":{"totalItems":1,"itemsPerPage":50,"totalPages":1,"currentPage":1}}`))
	})

	ctx := WithAccessToken(context.Background(), "tok")
	page, err := c.Lots(ctx, "P1", "B1", entities.ListParams{Limit: 50, Order: entities.OrderASC})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].LotPrice != 1000.5 || page.Items[0].TotalPrice != 1500 {
		t.Fatalf("unexpected lots: %+v", page.Items)
	}
}

func TestClient_Errors(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"statusCode":401,"message":"Credenciales inválidas"}`))
		})
		_, err := c.Login(context.Background(), "a@b.com", "x")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
		if StatusOf(err) != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", StatusOf(err))
		}
	})

	t.Run("validation messages", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"statusCode":400,"message":["lotId must be a uuid","clientId must be a number"]}`))
		})
		_, err := c.CreateSale(context.Background(), entities.CreateSaleRequest{})
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "lotId must be a uuid; clientId must be a number" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("client not found is nil", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		client, err := c.ClientByDocument(context.Background(), "12345678")
		if err != nil || client != nil {
			t.Fatalf("expected nil client without error, got %v %v", client, err)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()
		c, _ := NewClient(url, time.Second)
		_, err := c.ActiveProjects(context.Background())
		if !errors.Is(err, ErrBackendUnavailable) {
			t.Fatalf("expected ErrBackendUnavailable, got %v", err)
		}
		if StatusOf(err) != 0 {
			t.Fatalf("expected no status")
		}
	})
}

func TestClient_AssignParticipantBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/sales/S1/participants" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["linerId"] != "P9" || len(body) != 1 {
			t.Errorf("unexpected body %v", body)
		}
		w.WriteHeader(http.StatusOK)
	})
	if err := c.AssignParticipant(context.Background(), "S1", "linerId", "P9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	if _, err := NewClient("localhost", time.Second); err == nil {
		t.Fatalf("expected error for relative url")
	}
}
