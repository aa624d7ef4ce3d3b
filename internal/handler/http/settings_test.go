package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-smtp-mailer/internal/app"
	"github.com/MKhiriev/go-smtp-mailer/internal/service"
	"github.com/MKhiriev/go-smtp-mailer/internal/utils"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

func TestGetSettings(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.expectValidToken()
	m.settings.EXPECT().Get(gomock.Any()).Return(models.Settings{Host: "smtp.example.com", Port: 587, PasswordSet: true}, nil)

	rec := do(t, h.Init(), http.MethodGet, "/api/settings/", nil, bearer())
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Settings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "smtp.example.com", got.Host)
	assert.True(t, got.PasswordSet)
	assert.NotContains(t, rec.Body.String(), `"password":`)
}

func TestGetSettings_StoreDown(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.expectValidToken()
	m.settings.EXPECT().Get(gomock.Any()).Return(models.Settings{}, service.ErrReadingSettings)

	rec := do(t, h.Init(), http.MethodGet, "/api/settings/", nil, bearer())
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSaveSettings(t *testing.T) {
	host, password := "smtp.example.com", "s3cret"
	input := models.SettingsInput{Host: &host, Password: &password}

	h, m := newTestHandler(t, "")
	m.expectValidToken()
	m.settings.EXPECT().Save(gomock.Any(), input).Return(models.SaveResult{
		Settings: models.Settings{Host: host},
		Warnings: []string{app.MsgPasswordNotSaved},
	}, nil)

	rec := do(t, h.Init(), http.MethodPut, "/api/settings/", input, bearer())
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.SaveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{app.MsgPasswordNotSaved}, got.Warnings)
}

func TestSaveSettings_Errors(t *testing.T) {
	t.Run("invalid JSON", func(t *testing.T) {
		h, m := newTestHandler(t, "")
		m.expectValidToken()

		rec := do(t, h.Init(), http.MethodPut, "/api/settings/", "not json", bearer())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation", func(t *testing.T) {
		h, m := newTestHandler(t, "")
		m.expectValidToken()
		m.settings.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.SaveResult{}, service.ErrInvalidDataProvided)

		rec := do(t, h.Init(), http.MethodPut, "/api/settings/", models.SettingsInput{}, bearer())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// ─────────────────────────────────────────────
// checkHashing
// ─────────────────────────────────────────────

func TestSaveSettings_IntegrityCheck(t *testing.T) {
	body := []byte(`{"host":"smtp.example.com"}`)
	signature := utils.NewHasher(testHashKey).HexSum(body)

	t.Run("valid signature", func(t *testing.T) {
		h, m := newTestHandler(t, testHashKey)
		m.expectValidToken()
		m.settings.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.SaveResult{}, nil)

		headers := bearer()
		headers[utils.HashHeader] = signature

		rec := do(t, h.Init(), http.MethodPut, "/api/settings/", body, headers)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("tampered body", func(t *testing.T) {
		h, m := newTestHandler(t, testHashKey)
		m.expectValidToken()

		headers := bearer()
		headers[utils.HashHeader] = signature

		rec := do(t, h.Init(), http.MethodPut, "/api/settings/", []byte(`{"host":"evil.example.com"}`), headers)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), app.MsgIntegrityCheckFailed)
	})

	t.Run("missing signature", func(t *testing.T) {
		h, m := newTestHandler(t, testHashKey)
		m.expectValidToken()

		rec := do(t, h.Init(), http.MethodPut, "/api/settings/", body, bearer())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no hash key configured", func(t *testing.T) {
		h, m := newTestHandler(t, "")
		m.expectValidToken()
		m.settings.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.SaveResult{}, nil)

		rec := do(t, h.Init(), http.MethodPut, "/api/settings/", body, bearer())
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
