package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pixelgrid/snake-arena-api/internal/models"
	"github.com/pixelgrid/snake-arena-api/internal/services"
	"github.com/pixelgrid/snake-arena-api/internal/sessions"
)

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCurrentUserer(ctrl)

	user := &models.User{
		ID:          "5f1c2ad0-9f87-4f6e-b1aa-6a3a1c2f9b77",
		Username:    "RetroGamer",
		Email:       "retro@game.com",
		HighScore:   310,
		GamesPlayed: 12,
	}

	tests := []struct {
		name        string
		setupReq    func(r *http.Request)
		mockSetup   func()
		wantSuccess bool
		wantError   *string
	}{
		{
			name: "success via cookie",
			setupReq: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: "tok-789"})
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					CurrentUser(gomock.Any(), "tok-789").
					Return(user, nil)
			},
			wantSuccess: true,
		},
		{
			name:        "no token",
			setupReq:    func(r *http.Request) {},
			mockSetup:   func() {},
			wantSuccess: false,
			wantError:   strPtr("Not authenticated"),
		},
		{
			name: "stale token",
			setupReq: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer stale")
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					CurrentUser(gomock.Any(), "stale").
					Return(nil, services.ErrNotAuthenticated)
			},
			wantSuccess: false,
			wantError:   strPtr("Not authenticated"),
		},
		{
			name: "internal error",
			setupReq: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer tok-789")
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					CurrentUser(gomock.Any(), "tok-789").
					Return(nil, errors.New("database error"))
			},
			wantSuccess: false,
			wantError:   strPtr("Internal server error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			tt.setupReq(req)
			w := httptest.NewRecorder()

			handler := NewMeHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var resp userEnvelope
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantSuccess, resp.Success)
			assert.Equal(t, tt.wantError, resp.Error)
			if tt.wantSuccess {
				assert.Equal(t, user, resp.Data)
			}
		})
	}
}
