package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/hearthside/backend/internal/model"
)

type mockStorage struct {
	saveFunc   func(ctx context.Context, key string, data io.Reader, contentType string) (string, error)
	deleteFunc func(ctx context.Context, key string) error
	deleted    []string
}

func (m *mockStorage) Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, key, data, contentType)
	}
	return "/uploads/" + key, nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// multipartImage builds a multipart body with a slot field and a JPEG part.
func multipartImage(t *testing.T, slot string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("slot", slot); err != nil {
		t.Fatal(err)
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="photo.jpg"`)
	hdr.Set("Content-Type", "image/jpeg")
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("fake jpeg bytes")); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func imageUploadMux(h *ImageHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/projects/{id}/images", h.Upload)
	return mux
}

func TestImageHandler_Upload_BeforeSlot(t *testing.T) {
	var gotUpd model.ProjectUpdate
	ps := &mockProjectService{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Project, error) {
			return &model.Project{ID: id, BeforeImageKey: "projects/7/before-old.jpg"}, nil
		},
		updateFunc: func(ctx context.Context, id int64, upd model.ProjectUpdate) error {
			gotUpd = upd
			return nil
		},
	}
	store := &mockStorage{}
	h := NewImageHandler(store, ps)

	body, ct := multipartImage(t, "before")
	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects/7/images", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	imageUploadMux(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotUpd.BeforeImageURL == nil || gotUpd.BeforeImageKey == nil {
		t.Fatal("expected before image fields to be set")
	}
	if !strings.HasPrefix(*gotUpd.BeforeImageKey, "projects/7/before-") {
		t.Errorf("key = %q", *gotUpd.BeforeImageKey)
	}
	if gotUpd.AfterImageURL != nil {
		t.Error("after image fields should stay nil")
	}
	if len(store.deleted) != 1 || store.deleted[0] != "projects/7/before-old.jpg" {
		t.Errorf("deleted = %v, expected the replaced object", store.deleted)
	}
}

func TestImageHandler_Upload_AfterSlot(t *testing.T) {
	var gotUpd model.ProjectUpdate
	ps := &mockProjectService{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Project, error) {
			return &model.Project{ID: id}, nil
		},
		updateFunc: func(ctx context.Context, id int64, upd model.ProjectUpdate) error {
			gotUpd = upd
			return nil
		},
	}
	store := &mockStorage{}
	h := NewImageHandler(store, ps)

	body, ct := multipartImage(t, "after")
	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects/7/images", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	imageUploadMux(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotUpd.AfterImageURL == nil || gotUpd.AfterImageKey == nil {
		t.Fatal("expected after image fields to be set")
	}
	if len(store.deleted) != 0 {
		t.Errorf("nothing should be deleted on a first upload, got %v", store.deleted)
	}
}

func TestImageHandler_Upload_InvalidSlot(t *testing.T) {
	ps := &mockProjectService{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Project, error) {
			return &model.Project{ID: id}, nil
		},
	}
	h := NewImageHandler(&mockStorage{}, ps)

	body, ct := multipartImage(t, "sideways")
	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects/7/images", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	imageUploadMux(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_slot") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestImageHandler_Upload_ProjectNotFound(t *testing.T) {
	h := NewImageHandler(&mockStorage{}, &mockProjectService{})

	body, ct := multipartImage(t, "before")
	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects/999/images", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	imageUploadMux(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestImageHandler_Upload_RejectsUnknownContentType(t *testing.T) {
	ps := &mockProjectService{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Project, error) {
			return &model.Project{ID: id}, nil
		},
	}
	h := NewImageHandler(&mockStorage{}, ps)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("slot", "before")
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="doc.pdf"`)
	hdr.Set("Content-Type", "application/pdf")
	part, _ := mw.CreatePart(hdr)
	_, _ = part.Write([]byte("%PDF-"))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects/7/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	imageUploadMux(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_content_type") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestImageHandler_Upload_CleansUpWhenUpdateFails(t *testing.T) {
	ps := &mockProjectService{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Project, error) {
			return &model.Project{ID: id}, nil
		},
		updateFunc: func(ctx context.Context, id int64, upd model.ProjectUpdate) error {
			return errors.New("db down")
		},
	}
	store := &mockStorage{}
	h := NewImageHandler(store, ps)

	body, ct := multipartImage(t, "before")
	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects/7/images", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	imageUploadMux(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if len(store.deleted) != 1 {
		t.Errorf("expected the orphaned object to be deleted, got %v", store.deleted)
	}
}
