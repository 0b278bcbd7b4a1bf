package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventario/internal/model"
	"inventario/internal/validation"
)

func TestCreateAuthor_Success(t *testing.T) {
	s := newMemStore()
	router := setupRouter(s)

	body := CreateAuthorRequest{
		Name:      "Tolkien",
		Biography: "Wrote about a ring",
	}

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPost, "/autor", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp CreateAuthorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Autor.ID == "" {
		t.Errorf("expected non-empty id")
	}
	if resp.Autor.Name != body.Name {
		t.Errorf("expected name %q, got %q", body.Name, resp.Autor.Name)
	}
	if resp.Autor.Biography != body.Biography {
		t.Errorf("expected biography %q, got %q", body.Biography, resp.Autor.Biography)
	}

	id, err := model.ParseID(resp.Autor.ID)
	if err != nil {
		t.Fatalf("returned id is not a valid ObjectID: %v", err)
	}

	stored, ok := s.authors[id]
	if !ok {
		t.Fatalf("expected author in store")
	}
	if stored.Name != body.Name || stored.Biography != body.Biography {
		t.Errorf("stored author mismatch: %+v", stored)
	}
}

func TestCreateAuthor_DefaultsBiographyToEmpty(t *testing.T) {
	s := newMemStore()
	router := setupRouter(s)

	b, _ := json.Marshal(map[string]any{"name": "Anonymous"})

	req, _ := http.NewRequest(http.MethodPost, "/autor", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp CreateAuthorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Autor.Biography != "" {
		t.Errorf("expected empty biography, got %q", resp.Autor.Biography)
	}
}

func TestCreateAuthor_MissingName(t *testing.T) {
	s := newMemStore()
	router := setupRouter(s)

	b, _ := json.Marshal(map[string]any{"biography": "No name"})

	req, _ := http.NewRequest(http.MethodPost, "/autor", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", w.Code, w.Body.String())
	}

	if len(s.authors) != 0 {
		t.Errorf("expected no author created, got %d", len(s.authors))
	}
}

func TestCreateAuthor_StoreError_Returns503(t *testing.T) {
	authorRepo := &fakeAuthorRepo{
		CreateFn: func(ctx context.Context, a *model.Author) error {
			return errors.New("forced create error")
		},
	}

	router := setupRouterWithRepos(&fakeBookRepo{}, authorRepo)

	b, _ := json.Marshal(CreateAuthorRequest{Name: "Error Author"})

	req, _ := http.NewRequest(http.MethodPost, "/autor", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp validation.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Error == "" {
		t.Errorf("expected an error message in the body")
	}
}
