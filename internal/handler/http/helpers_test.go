package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/mock"
	"github.com/MKhiriev/go-smtp-mailer/internal/service"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

const (
	testToken   = "valid.jwt.token"
	testHashKey = "integrity-key"
)

type mocks struct {
	auth     *mock.MockAuthService
	settings *mock.MockSettingsService
	mail     *mock.MockMailService
	status   *mock.MockStatusService
	appInfo  *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, hashKey string) (*Handler, *mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &mocks{
		auth:     mock.NewMockAuthService(ctrl),
		settings: mock.NewMockSettingsService(ctrl),
		mail:     mock.NewMockMailService(ctrl),
		status:   mock.NewMockStatusService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:     m.auth,
		SettingsService: m.settings,
		MailService:     m.mail,
		StatusService:   m.status,
		AppInfoService:  m.appInfo,
	}

	return NewHandler(services, config.App{HashKey: hashKey}, logger.Nop()), m
}

// expectValidToken lets testToken through the auth middleware.
func (m *mocks) expectValidToken() {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{Login: "admin"}, nil)
}

func do(t *testing.T, h http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	case []byte:
		r = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, r)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}
