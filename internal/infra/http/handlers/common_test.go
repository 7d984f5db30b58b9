package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"buscacliente/internal/domain/contact"
	"buscacliente/internal/domain/profile"
	"buscacliente/internal/domain/whatsapp"
	apperrors "buscacliente/pkg/errors"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "contact not found",
			err:        contact.ErrContactNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Contact not found",
		},
		{
			name:       "wrapped contact not found",
			err:        fmt.Errorf("failed to delete contact: %w", contact.ErrContactNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Contact not found",
		},
		{
			name:       "contact field missing",
			err:        contact.ErrCompanyNameRequired,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "company name is required",
		},
		{
			name:       "profile not found",
			err:        profile.ErrProfileNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Profile not found",
		},
		{
			name:       "profile email in use",
			err:        profile.ErrEmailInUse,
			wantStatus: http.StatusConflict,
			wantMsg:    "Profile email already in use",
		},
		{
			name:       "whatsapp token missing",
			err:        whatsapp.ErrMissingToken,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "token is required",
		},
		{
			name:       "whatsapp settings missing",
			err:        whatsapp.ErrSettingsNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "WhatsApp settings not found",
		},
		{
			name:       "validator message",
			err:        errors.New("validation failed: company_name is required"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "validation failed: company_name is required",
		},
		{
			name:       "app error passes through",
			err:        apperrors.New(http.StatusForbidden, "Forbidden"),
			wantStatus: http.StatusForbidden,
			wantMsg:    "Forbidden",
		},
		{
			name:       "wrapped app error passes through",
			err:        apperrors.Wrap(apperrors.ErrContactNotFound, "use case"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Contact not found",
		},
		{
			name:       "unknown error becomes 500",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := translateError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
