package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mercie-ux/mkulima-cooperative/internal/auth"
	"github.com/mercie-ux/mkulima-cooperative/internal/users"
)

type stubAuthService struct {
	resp *auth.LoginResponse
	err  error
}

func (s stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return s.resp, s.err
}

type stubRegisterService struct {
	resp *auth.RegisterResponse
	err  error
}

func (s stubRegisterService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.RegisterResponse, error) {
	return s.resp, s.err
}

func TestAuthLoginSuccess(t *testing.T) {
	handler := AuthLogin(stubAuthService{resp: &auth.LoginResponse{
		Token: "signed-token",
		User:  &users.UserDTO{Email: "mercy@example.com", Role: "farmer"},
	}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(`{"email":"mercy@example.com","password":"Secret#1"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Token string         `json:"token"`
			User  *users.UserDTO `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success {
		t.Fatalf("expected success envelope")
	}
	if envelope.Data.Token != "signed-token" {
		t.Fatalf("expected token in payload got %q", envelope.Data.Token)
	}
	if envelope.Data.User == nil || envelope.Data.User.Email != "mercy@example.com" {
		t.Fatalf("expected user payload got %+v", envelope.Data.User)
	}
}

func TestAuthLoginRejectsMalformedBody(t *testing.T) {
	handler := AuthLogin(stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(`{"email":`)))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}

	var envelope struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Success {
		t.Fatalf("expected failure envelope")
	}
	if envelope.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation code got %q", envelope.Code)
	}
}

func TestAuthRegisterReturnsCreated(t *testing.T) {
	handler := AuthRegister(stubRegisterService{resp: &auth.RegisterResponse{
		User: &users.UserDTO{Email: "mercy@example.com", Role: "farmer"},
	}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte(`{"name":"Mercy W","email":"mercy@example.com","password":"Secret#1"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			User *users.UserDTO `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.User == nil || envelope.Data.User.Role != "farmer" {
		t.Fatalf("expected farmer payload got %+v", envelope.Data.User)
	}
}
