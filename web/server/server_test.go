package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	New(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("health body is not JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("status field = %q, want ok", body["status"])
	}
}

func TestScenesListsBuiltins(t *testing.T) {
	rec := httptest.NewRecorder()
	New(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scenes", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var infos []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatalf("scenes body is not JSON: %v", err)
	}

	names := make(map[string]bool)
	for _, info := range infos {
		names[info.Name] = true
		if info.Description == "" {
			t.Errorf("scene %q has no description", info.Name)
		}
	}
	for _, want := range []string{"default", "cornell", "csg", "volume"} {
		if !names[want] {
			t.Errorf("scene list is missing %q", want)
		}
	}
}

func TestIndexPage(t *testing.T) {
	rec := httptest.NewRecorder()
	New(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q, want text/html", ct)
	}
	if !strings.Contains(rec.Body.String(), "/api/render") {
		t.Fatal("index page does not reference the render endpoint")
	}
}

func TestIndexUnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	New(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int
		wantErr string
	}{
		{name: "absent uses default", query: "", want: 42},
		{name: "valid value", query: "spp=9", want: 9},
		{name: "boundary values pass", query: "spp=100", want: 100},
		{name: "not a number", query: "spp=many", wantErr: "invalid spp"},
		{name: "below minimum", query: "spp=0", wantErr: "between 1 and 100"},
		{name: "above maximum", query: "spp=101", wantErr: "between 1 and 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("bad test query: %v", err)
			}
			got, err := parseIntParam(values, "spp", 42, 1, 100)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want substring %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("value = %d, want %d", got, tt.want)
			}
		})
	}
}
