package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mercie-ux/mkulima-cooperative/api/middleware"
	"github.com/mercie-ux/mkulima-cooperative/internal/crops"
	"github.com/mercie-ux/mkulima-cooperative/internal/resource"
	pkgerrors "github.com/mercie-ux/mkulima-cooperative/pkg/errors"
	"github.com/mercie-ux/mkulima-cooperative/pkg/enums"
	"github.com/mercie-ux/mkulima-cooperative/pkg/pagination"
)

type stubCropService struct {
	page       crops.CropsPageDTO
	crop       *crops.CropDTO
	err        error
	lastCaller resource.Caller
	lastParams pagination.Params
	lastID     uuid.UUID
}

func (s *stubCropService) List(ctx context.Context, caller resource.Caller, params pagination.Params) (crops.CropsPageDTO, error) {
	s.lastCaller = caller
	s.lastParams = params
	return s.page, s.err
}

func (s *stubCropService) Create(ctx context.Context, caller resource.Caller, dto crops.CreateCropDTO) (*crops.CropDTO, error) {
	s.lastCaller = caller
	return s.crop, s.err
}

func (s *stubCropService) Get(ctx context.Context, caller resource.Caller, id uuid.UUID) (*crops.CropDTO, error) {
	s.lastCaller = caller
	s.lastID = id
	return s.crop, s.err
}

func (s *stubCropService) Update(ctx context.Context, caller resource.Caller, id uuid.UUID, dto crops.UpdateCropDTO) (*crops.CropDTO, error) {
	s.lastCaller = caller
	s.lastID = id
	return s.crop, s.err
}

func (s *stubCropService) Delete(ctx context.Context, caller resource.Caller, id uuid.UUID) error {
	s.lastCaller = caller
	s.lastID = id
	return s.err
}

func authedRequest(t *testing.T, method, target, body string, userID uuid.UUID, role enums.UserRole) *http.Request {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	ctx := middleware.WithUserID(req.Context(), userID.String())
	ctx = middleware.WithRole(ctx, string(role))
	return req.WithContext(ctx)
}

func TestListCropsForwardsCallerAndPagination(t *testing.T) {
	svc := &stubCropService{page: crops.CropsPageDTO{Items: []crops.CropDTO{}, NextCursor: "abc"}}
	handler := ListCrops(svc, nil)

	userID := uuid.New()
	req := authedRequest(t, http.MethodGet, "/api/mycrops?limit=10&cursor=tok", "", userID, enums.UserRoleFarmer)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastCaller.ID != userID {
		t.Fatalf("expected caller id forwarded")
	}
	if svc.lastParams.Limit != 10 || svc.lastParams.Cursor != "tok" {
		t.Fatalf("expected pagination forwarded got %+v", svc.lastParams)
	}
}

func TestListCropsRejectsAnonymousRequest(t *testing.T) {
	handler := ListCrops(&stubCropService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/mycrops", nil)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCreateCropReturnsCreated(t *testing.T) {
	svc := &stubCropService{crop: &crops.CropDTO{CropType: "maize"}}
	handler := CreateCrop(svc, nil)

	body := `{"crop_type":"maize","area":"2.5","planting_date":"2026-03-01T00:00:00Z","expected_harvest":"2026-08-01T00:00:00Z"}`
	req := authedRequest(t, http.MethodPost, "/api/mycrops", body, uuid.New(), enums.UserRoleFarmer)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestGetCropParsesPathID(t *testing.T) {
	cropID := uuid.New()
	svc := &stubCropService{crop: &crops.CropDTO{ID: cropID}}

	router := chi.NewRouter()
	router.Get("/api/mycrops/{cropId}", GetCrop(svc, nil))

	req := authedRequest(t, http.MethodGet, "/api/mycrops/"+cropID.String(), "", uuid.New(), enums.UserRoleAdmin)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastID != cropID {
		t.Fatalf("expected id %s forwarded got %s", cropID, svc.lastID)
	}
}

func TestGetCropRejectsMalformedID(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/mycrops/{cropId}", GetCrop(&stubCropService{}, nil))

	req := authedRequest(t, http.MethodGet, "/api/mycrops/not-a-uuid", "", uuid.New(), enums.UserRoleFarmer)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestDeleteCropMapsNotFound(t *testing.T) {
	svc := &stubCropService{err: pkgerrors.New(pkgerrors.CodeNotFound, "crop not found")}

	router := chi.NewRouter()
	router.Delete("/api/mycrops/{cropId}", DeleteCrop(svc, nil))

	req := authedRequest(t, http.MethodDelete, "/api/mycrops/"+uuid.NewString(), "", uuid.New(), enums.UserRoleFarmer)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}

	var envelope struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Success || envelope.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND envelope got %+v", envelope)
	}
}
