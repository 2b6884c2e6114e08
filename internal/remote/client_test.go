package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/type/9", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"name": "steel",
			"pokemon": [
				{"pokemon": {"name": "magnemite", "url": "http://example/pokemon/81"}, "slot": 1},
				{"pokemon": {"name": "onix", "url": "http://example/pokemon/95"}, "slot": 2}
			]
		}`))
	})
	mux.HandleFunc("GET /api/v2/pokemon/95", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": 95, "name": "onix", "weight": 2100, "height": 88,
			"sprites": {"front_default": "http://sprites/95.png"},
			"stats": [{"base_stat": 35, "effort": 0, "stat": {"name": "hp"}}]
		}`))
	})
	mux.HandleFunc("GET /api/v2/type/13", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})
	return httptest.NewServer(mux)
}

func TestFetchCategory(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	client := NewClient(srv.URL+"/api/v2/", 5*time.Second)
	page, err := client.FetchCategory(context.Background(), 9)
	if err != nil {
		t.Fatalf("FetchCategory failed: %v", err)
	}
	if page.Name != "steel" {
		t.Errorf("wrong category name: %q", page.Name)
	}
	if len(page.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(page.Members))
	}
	if page.Members[0].Member.Name != "magnemite" || page.Members[0].Slot != 1 {
		t.Errorf("member 0 mismatch: %+v", page.Members[0])
	}
	if page.Members[1].Member.URL != "http://example/pokemon/95" {
		t.Errorf("member URL not passed through: %q", page.Members[1].Member.URL)
	}
}

func TestFetchCategoryNotFound(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	client := NewClient(srv.URL+"/api/v2/", 5*time.Second)
	_, err := client.FetchCategory(context.Background(), -1)
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("diagnostic should carry the status code: %v", err)
	}
}

func TestFetchCategoryUndecodableBody(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	client := NewClient(srv.URL+"/api/v2/", 5*time.Second)
	_, err := client.FetchCategory(context.Background(), 13)
	if err == nil {
		t.Fatal("expected error for undecodable body")
	}
}

func TestFetchItem(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	client := NewClient(srv.URL+"/api/v2/", 5*time.Second)
	item, err := client.FetchItem(context.Background(), srv.URL+"/api/v2/pokemon/95")
	if err != nil {
		t.Fatalf("FetchItem failed: %v", err)
	}
	if item.ID != 95 || item.Name != "onix" || item.Weight != 2100 {
		t.Errorf("item mismatch: %+v", *item)
	}
	if item.Sprites.FrontDefault != "http://sprites/95.png" {
		t.Errorf("sprite mismatch: %q", item.Sprites.FrontDefault)
	}
	if len(item.Stats) != 1 || item.Stats[0].Stat.Name != "hp" || item.Stats[0].BaseValue != 35 {
		t.Errorf("stats mismatch: %+v", item.Stats)
	}
}

func TestFetchItemTransportError(t *testing.T) {
	srv := newTestServer()
	url := srv.URL + "/api/v2/pokemon/95"
	srv.Close()

	client := NewClient("http://unused/", time.Second)
	if _, err := client.FetchItem(context.Background(), url); err == nil {
		t.Fatal("expected transport error after server shutdown")
	}
}

func TestFetchItemCancelled(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL+"/api/v2/", 5*time.Second)
	if _, err := client.FetchItem(ctx, srv.URL+"/api/v2/pokemon/95"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
