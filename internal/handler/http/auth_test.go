package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchparty/server/internal/service"
	"github.com/watchparty/server/models"
)

func TestHandler_Signup(t *testing.T) {
	t.Run("success discloses the generated credentials once", func(t *testing.T) {
		h := newTestHandler(&mockAuthService{
			signupFunc: func(_ context.Context) (models.User, error) {
				return models.User{
					UserID:   7,
					Name:     "Unnamed User #123456",
					Password: "p4ssw0rd00",
					APIKey:   "generated-key",
				}, nil
			},
		}, &mockRoomService{})

		w := do(h, http.MethodPost, "/api/signup", "", "")
		require.Equal(t, http.StatusCreated, w.Code)

		var resp models.IdentityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, int64(7), resp.UserID)
		assert.Equal(t, "Unnamed User #123456", resp.UserName)
		assert.Equal(t, "generated-key", resp.APIKey)
		assert.Equal(t, "p4ssw0rd00", resp.Password)
	})

	t.Run("store failure", func(t *testing.T) {
		h := newTestHandler(&mockAuthService{
			signupFunc: func(_ context.Context) (models.User, error) {
				return models.User{}, errors.New("insert failed")
			},
		}, &mockRoomService{})

		w := do(h, http.MethodPost, "/api/signup", "", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "User creation failed")
	})
}

func TestHandler_Login(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		loginFunc: func(_ context.Context, name, password string) (models.User, error) {
			if name == "" || password == "" {
				return models.User{}, service.ErrInvalidDataProvided
			}
			if name == "alice" && password == "s3cret" {
				return models.User{UserID: 1, Name: "alice", APIKey: "key-1"}, nil
			}
			return models.User{}, service.ErrWrongCredentials
		},
	}, &mockRoomService{})

	tests := []struct {
		name        string
		body        string
		wantCode    int
		wantMessage string
	}{
		{
			name:     "valid credentials",
			body:     `{"username":"alice","password":"s3cret"}`,
			wantCode: http.StatusOK,
		},
		{
			name:        "wrong password",
			body:        `{"username":"alice","password":"nope"}`,
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Invalid username or password.",
		},
		{
			name:        "missing fields",
			body:        `{"username":"alice"}`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "Username and password are required.",
		},
		{
			name:        "malformed body",
			body:        "not json",
			wantCode:    http.StatusBadRequest,
			wantMessage: "Request body must be JSON.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(h, http.MethodPost, "/api/login", "", tt.body)
			require.Equal(t, tt.wantCode, w.Code)

			if tt.wantMessage != "" {
				assert.Contains(t, w.Body.String(), tt.wantMessage)
				return
			}

			var resp models.IdentityResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, "key-1", resp.APIKey)
			assert.Equal(t, int64(1), resp.UserID)
			assert.Empty(t, resp.Password)
		})
	}
}
