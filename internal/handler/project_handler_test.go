package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hearthside/backend/internal/model"
	"github.com/hearthside/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock ProjectService
// ---------------------------------------------------------------------------

type mockProjectService struct {
	createFunc  func(ctx context.Context, project *model.Project) error
	listFunc    func(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error)
	getByIDFunc func(ctx context.Context, id int64) (*model.Project, error)
	updateFunc  func(ctx context.Context, id int64, upd model.ProjectUpdate) error
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockProjectService) Create(ctx context.Context, project *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, project)
	}
	return nil
}

func (m *mockProjectService) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockProjectService) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectService) Update(ctx context.Context, id int64, upd model.ProjectUpdate) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, upd)
	}
	return nil
}

func (m *mockProjectService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

const validProjectBody = `{
	"title": "Maple Street Kitchen",
	"description": "Full countertop and backsplash refresh.",
	"projectType": "kitchen",
	"serviceCategory": "Countertops",
	"beforeImageUrl": "/uploads/projects/1/before-aa.jpg",
	"beforeImageKey": "projects/1/before-aa.jpg",
	"afterImageUrl": "/uploads/projects/1/after-bb.jpg",
	"afterImageKey": "projects/1/after-bb.jpg",
	"completionDate": "2026-05-14",
	"featured": true,
	"displayOrder": 2
}`

// ---------------------------------------------------------------------------
// GET /api/projects tests
// ---------------------------------------------------------------------------

func TestProjectHandler_List_FeaturedFilter(t *testing.T) {
	var gotOpts model.ProjectListOptions
	mock := &mockProjectService{
		listFunc: func(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
			gotOpts = opts
			return []*model.Project{{ID: 1, Title: "A", Featured: true}}, nil
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects?featured=true", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !gotOpts.FeaturedOnly {
		t.Error("expected FeaturedOnly=true")
	}
}

func TestProjectHandler_List_EmptyIsJSONArray(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected [], got %s", rec.Body.String())
	}
}

// ---------------------------------------------------------------------------
// GET /api/projects/{id} tests
// ---------------------------------------------------------------------------

func TestProjectHandler_Get_Found(t *testing.T) {
	mock := &mockProjectService{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Project, error) {
			return &model.Project{ID: id, Title: "Maple Street Kitchen"}, nil
		},
	}
	h := NewProjectHandler(mock)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projects/{id}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/5", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got model.Project
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.ID != 5 || got.Title != "Maple Street Kitchen" {
		t.Errorf("got %+v", got)
	}
}

func TestProjectHandler_Get_NotFound(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projects/{id}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/999", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// POST /api/admin/projects tests
// ---------------------------------------------------------------------------

func TestProjectHandler_Create_Success(t *testing.T) {
	var captured *model.Project
	mock := &mockProjectService{
		createFunc: func(ctx context.Context, project *model.Project) error {
			captured = project
			project.ID = 11
			return nil
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects", strings.NewReader(validProjectBody))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Create to be called")
	}
	if captured.CompletionDate == nil {
		t.Fatal("expected completion date to be parsed")
	}
	want := time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC)
	if !captured.CompletionDate.Equal(want) {
		t.Errorf("completionDate = %v", captured.CompletionDate)
	}
	if !captured.Featured || captured.DisplayOrder != 2 {
		t.Errorf("captured = %+v", captured)
	}
	if !strings.Contains(rec.Body.String(), `"id":11`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestProjectHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m map[string]any)
		wantErr string
	}{
		{"missing title", func(m map[string]any) { delete(m, "title") }, "title_required"},
		{"missing description", func(m map[string]any) { delete(m, "description") }, "description_required"},
		{"bad project type", func(m map[string]any) { m["projectType"] = "patio" }, "invalid_project_type"},
		{"missing category", func(m map[string]any) { delete(m, "serviceCategory") }, "service_category_required"},
		{"missing before image", func(m map[string]any) { delete(m, "beforeImageKey") }, "before_image_required"},
		{"missing after image", func(m map[string]any) { delete(m, "afterImageUrl") }, "after_image_required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProjectHandler(&mockProjectService{
				createFunc: func(ctx context.Context, project *model.Project) error {
					t.Error("service should not be called on validation failure")
					return nil
				},
			})

			var m map[string]any
			if err := json.Unmarshal([]byte(validProjectBody), &m); err != nil {
				t.Fatal(err)
			}
			tt.mutate(m)
			body, _ := json.Marshal(m)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/projects", strings.NewReader(string(body)))
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.wantErr) {
				t.Errorf("expected error %q, got %s", tt.wantErr, rec.Body.String())
			}
		})
	}
}

func TestProjectHandler_Create_ServiceError(t *testing.T) {
	mock := &mockProjectService{
		createFunc: func(ctx context.Context, project *model.Project) error {
			return errors.New("db down")
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects", strings.NewReader(validProjectBody))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to create project") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

// ---------------------------------------------------------------------------
// PUT /api/admin/projects/{id} tests
// ---------------------------------------------------------------------------

func TestProjectHandler_Update_PartialFields(t *testing.T) {
	var gotUpd model.ProjectUpdate
	mock := &mockProjectService{
		updateFunc: func(ctx context.Context, id int64, upd model.ProjectUpdate) error {
			gotUpd = upd
			return nil
		},
	}
	h := NewProjectHandler(mock)

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/admin/projects/{id}", h.Update)

	body := `{"featured": false, "displayOrder": 9}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/projects/11", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotUpd.Featured == nil || *gotUpd.Featured != false {
		t.Error("expected featured pointer set to false")
	}
	if gotUpd.DisplayOrder == nil || *gotUpd.DisplayOrder != 9 {
		t.Error("expected displayOrder pointer set to 9")
	}
	if gotUpd.Title != nil || gotUpd.CompletionDate != nil {
		t.Error("absent fields should stay nil")
	}
}

func TestProjectHandler_Update_RejectsBadProjectType(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{
		updateFunc: func(ctx context.Context, id int64, upd model.ProjectUpdate) error {
			t.Error("service should not be called")
			return nil
		},
	})

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/admin/projects/{id}", h.Update)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/projects/11", strings.NewReader(`{"projectType":"garage"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestProjectHandler_Update_ServiceError(t *testing.T) {
	mock := &mockProjectService{
		updateFunc: func(ctx context.Context, id int64, upd model.ProjectUpdate) error {
			return errors.New("db down")
		},
	}
	h := NewProjectHandler(mock)

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/admin/projects/{id}", h.Update)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/projects/11", strings.NewReader(`{"title":"x"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to update project") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

// ---------------------------------------------------------------------------
// DELETE /api/admin/projects/{id} tests
// ---------------------------------------------------------------------------

func TestProjectHandler_Delete_Success(t *testing.T) {
	var gotID int64
	mock := &mockProjectService{
		deleteFunc: func(ctx context.Context, id int64) error {
			gotID = id
			return nil
		},
	}
	h := NewProjectHandler(mock)

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/admin/projects/{id}", h.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/projects/11", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != 11 {
		t.Errorf("got id=%d", gotID)
	}
}

func TestProjectHandler_Delete_ServiceError(t *testing.T) {
	mock := &mockProjectService{
		deleteFunc: func(ctx context.Context, id int64) error {
			return repository.ErrNotFound
		},
	}
	h := NewProjectHandler(mock)

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/admin/projects/{id}", h.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/projects/11", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Failed to delete project") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
