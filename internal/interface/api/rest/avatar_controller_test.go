package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"listings-media-api/internal/application/ports"
	domainAgent "listings-media-api/internal/domain/agent"
	"listings-media-api/internal/domain/media"
	agentDB "listings-media-api/internal/infrastructure/db/postgres/agent"
	jwtSvc "listings-media-api/internal/infrastructure/jwt"
	"listings-media-api/internal/interface/api/rest/middleware"
)

type FakeAvatarService struct {
	UploadAvatarFunc  func(ctx context.Context, agentUUID domainAgent.UUID, fh *multipart.FileHeader) (*ports.AvatarResult, error)
	CurrentAvatarFunc func(ctx context.Context, agentUUID domainAgent.UUID) (string, error)
}

func (f *FakeAvatarService) UploadAvatar(ctx context.Context, agentUUID domainAgent.UUID, fh *multipart.FileHeader) (*ports.AvatarResult, error) {
	if f.UploadAvatarFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UploadAvatarFunc(ctx, agentUUID, fh)
}
func (f *FakeAvatarService) CurrentAvatar(ctx context.Context, agentUUID domainAgent.UUID) (string, error) {
	if f.CurrentAvatarFunc == nil {
		return "", errors.New("not used")
	}
	return f.CurrentAvatarFunc(ctx, agentUUID)
}

func SignJWT(secret, agentID, role string, exp time.Duration) (string, error) {
	type Claims struct {
		AgentID string `json:"agent_id"`
		Role    string `json:"role"`
		jwtv5.RegisteredClaims
	}
	claims := Claims{
		AgentID: agentID,
		Role:    role,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(exp)),
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func setupRouterAVC(t *testing.T, avs ports.AvatarService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	avc := &AvatarController{
		avatarService: avs,
		logger:        zap.NewNop(),
	}
	j := jwtSvc.New("test-secret")

	r.GET("/agents/:agent_id/avatar", avc.GetAvatarHandler)
	r.POST("/agents/:agent_id/avatar", middleware.AuthMiddleware(j), avc.UploadAvatarHandler)

	return r
}

func doAvatarUpload(t *testing.T, r *gin.Engine, path, fileField string, fileContent []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, "photo.jpg")
		require.NoError(t, err)
		_, _ = fw.Write(fileContent)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, path, &b)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAvatarController_UploadAvatarHandler(t *testing.T) {
	okID := uuid.New()

	ownToken := func(id uuid.UUID) map[string]string {
		tok, _ := SignJWT("test-secret", id.String(), "agent", time.Hour)
		return map[string]string{"Authorization": "Bearer " + tok}
	}

	tests := []struct {
		name        string
		agentID     string
		headers     map[string]string
		fileField   string
		mockAVS     func() ports.AvatarService
		wantStatus  int
		wantErr     string
		wantMessage string
	}{
		{
			name:       "401 missing Authorization",
			agentID:    okID.String(),
			headers:    nil,
			fileField:  "profile_picture",
			mockAVS:    func() ports.AvatarService { return &FakeAvatarService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "400 invalid uuid",
			agentID:    "not-uuid",
			headers:    ownToken(okID),
			fileField:  "profile_picture",
			mockAVS:    func() ports.AvatarService { return &FakeAvatarService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "agent_id must be a valid UUID",
		},
		{
			name:       "403 token for a different agent",
			agentID:    okID.String(),
			headers:    ownToken(uuid.New()),
			fileField:  "profile_picture",
			mockAVS:    func() ports.AvatarService { return &FakeAvatarService{} },
			wantStatus: http.StatusForbidden,
			wantErr:    "token does not match agent_id",
		},
		{
			name:        "400 no file part",
			agentID:     okID.String(),
			headers:     ownToken(okID),
			fileField:   "",
			mockAVS:     func() ports.AvatarService { return &FakeAvatarService{} },
			wantStatus:  http.StatusBadRequest,
			wantMessage: "No file uploaded.",
		},
		{
			name:      "400 image too small",
			agentID:   okID.String(),
			headers:   ownToken(okID),
			fileField: "profile_picture",
			mockAVS: func() ports.AvatarService {
				return &FakeAvatarService{
					UploadAvatarFunc: func(context.Context, domainAgent.UUID, *multipart.FileHeader) (*ports.AvatarResult, error) {
						return nil, media.NewError(media.KindTooSmall, "10x10 below minimum 50x50", nil)
					},
				}
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Image too small. Minimum size is 50x50 pixels.",
		},
		{
			name:      "413 file too large",
			agentID:   okID.String(),
			headers:   ownToken(okID),
			fileField: "profile_picture",
			mockAVS: func() ports.AvatarService {
				return &FakeAvatarService{
					UploadAvatarFunc: func(context.Context, domainAgent.UUID, *multipart.FileHeader) (*ports.AvatarResult, error) {
						return nil, media.NewError(media.KindTooLarge, "over limit", nil)
					},
				}
			},
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: "File is too large. Maximum size is 10MB.",
		},
		{
			name:      "415 unsupported format",
			agentID:   okID.String(),
			headers:   ownToken(okID),
			fileField: "profile_picture",
			mockAVS: func() ports.AvatarService {
				return &FakeAvatarService{
					UploadAvatarFunc: func(context.Context, domainAgent.UUID, *multipart.FileHeader) (*ports.AvatarResult, error) {
						return nil, media.NewError(media.KindUnsupportedFormat, "text/plain", nil)
					},
				}
			},
			wantStatus:  http.StatusUnsupportedMediaType,
			wantMessage: "File type not allowed. Allowed types: jpeg, png, gif, webp.",
		},
		{
			name:      "404 agent not found",
			agentID:   okID.String(),
			headers:   ownToken(okID),
			fileField: "profile_picture",
			mockAVS: func() ports.AvatarService {
				return &FakeAvatarService{
					UploadAvatarFunc: func(context.Context, domainAgent.UUID, *multipart.FileHeader) (*ports.AvatarResult, error) {
						return nil, agentDB.ErrAgentNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "agent not found",
		},
		{
			name:      "409 pointer kept moving",
			agentID:   okID.String(),
			headers:   ownToken(okID),
			fileField: "profile_picture",
			mockAVS: func() ports.AvatarService {
				return &FakeAvatarService{
					UploadAvatarFunc: func(context.Context, domainAgent.UUID, *multipart.FileHeader) (*ports.AvatarResult, error) {
						return nil, media.NewError(media.KindConsistency, "avatar pointer kept moving", nil)
					},
				}
			},
			wantStatus:  http.StatusConflict,
			wantMessage: "Avatar changed concurrently, please retry.",
		},
		{
			name:      "200 success",
			agentID:   okID.String(),
			headers:   ownToken(okID),
			fileField: "profile_picture",
			mockAVS: func() ports.AvatarService {
				return &FakeAvatarService{
					UploadAvatarFunc: func(context.Context, domainAgent.UUID, *multipart.FileHeader) (*ports.AvatarResult, error) {
						return &ports.AvatarResult{Basename: "profile_7_200.jpg"}, nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouterAVC(t, tt.mockAVS())
			rr := doAvatarUpload(t, r, "/agents/"+tt.agentID+"/avatar", tt.fileField, []byte("jpeg-bytes"), tt.headers)
			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			_ = json.Unmarshal(rr.Body.Bytes(), &resp)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
			}
			if tt.wantMessage != "" {
				assert.Equal(t, false, resp["success"])
				assert.Equal(t, tt.wantMessage, resp["message"])
			}
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, true, resp["success"])
				assert.Equal(t, "profile_7_200.jpg", resp["filename"])
				assert.NotContains(t, resp, "debug")
			}
		})
	}
}

func TestAvatarController_UploadDebugDiagnostics(t *testing.T) {
	okID := uuid.New()
	tok, err := SignJWT("test-secret", okID.String(), "agent", time.Hour)
	require.NoError(t, err)

	r := setupRouterAVC(t, &FakeAvatarService{
		UploadAvatarFunc: func(context.Context, domainAgent.UUID, *multipart.FileHeader) (*ports.AvatarResult, error) {
			return &ports.AvatarResult{
				Basename:     "profile_7_200.jpg",
				Variants:     []string{"profile_7_200.jpg", "profile_7_200_thumb.jpg"},
				Width:        800,
				Height:       600,
				DetectedMIME: "image/jpeg",
				DeclaredMIME: "image/png",
				SizeBytes:    1234,
				Swept:        "profile_7_100.jpg",
			}, nil
		},
	})

	rr := doAvatarUpload(t, r, "/agents/"+okID.String()+"/avatar?debug=1", "profile_picture", []byte("jpeg-bytes"),
		map[string]string{"Authorization": "Bearer " + tok})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success  bool   `json:"success"`
		Filename string `json:"filename"`
		Debug    *struct {
			DetectedMIME string   `json:"detected_mime"`
			DeclaredMIME string   `json:"declared_mime"`
			Width        int      `json:"width"`
			Height       int      `json:"height"`
			Files        []string `json:"files"`
			Swept        string   `json:"swept"`
		} `json:"debug"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Debug)
	assert.Equal(t, "image/jpeg", resp.Debug.DetectedMIME)
	assert.Equal(t, "image/png", resp.Debug.DeclaredMIME)
	assert.Equal(t, "profile_7_100.jpg", resp.Debug.Swept)
}

func TestAvatarController_GetAvatarHandler(t *testing.T) {
	okID := uuid.New()

	tests := []struct {
		name       string
		agentID    string
		mockAVS    func() ports.AvatarService
		wantStatus int
		wantErr    string
		wantFile   string
	}{
		{
			name:       "400 invalid uuid",
			agentID:    "not-uuid",
			mockAVS:    func() ports.AvatarService { return &FakeAvatarService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "agent_id must be a valid UUID",
		},
		{
			name:    "404 agent not found",
			agentID: okID.String(),
			mockAVS: func() ports.AvatarService {
				return &FakeAvatarService{
					CurrentAvatarFunc: func(context.Context, domainAgent.UUID) (string, error) {
						return "", agentDB.ErrAgentNotFound
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "agent not found",
		},
		{
			name:    "200 returns canonical basename",
			agentID: okID.String(),
			mockAVS: func() ports.AvatarService {
				return &FakeAvatarService{
					CurrentAvatarFunc: func(context.Context, domainAgent.UUID) (string, error) {
						return "profile_7_100.jpg", nil
					},
				}
			},
			wantStatus: http.StatusOK,
			wantFile:   "profile_7_100.jpg",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouterAVC(t, tt.mockAVS())

			req, err := http.NewRequest(http.MethodGet, "/agents/"+tt.agentID+"/avatar", nil)
			require.NoError(t, err)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)
			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			_ = json.Unmarshal(rr.Body.Bytes(), &resp)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
			}
			if tt.wantFile != "" {
				assert.Equal(t, tt.wantFile, resp["profile_picture"])
			}
		})
	}
}
