package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/pkg/constants"
	"github.com/ougirez/ecotrack/internal/pkg/store"
	"github.com/ougirez/ecotrack/internal/pkg/utils"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	store.Store
	facts []*domain.DisposalFact
}

func (f *fakeStore) ListDisposalFacts(_ context.Context, _ store.FactQueryOpts) ([]*domain.DisposalFact, error) {
	return f.facts, nil
}

func (f *fakeStore) GetUserByID(_ context.Context, _ int64) (*domain.User, error) {
	return nil, constants.ErrDBNotFound
}

func setup(t *testing.T, facts []*domain.DisposalFact) (*APIService, string) {
	t.Helper()

	viper.Set(constants.ViperSecretKey, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	svc, err := NewAPIService(&fakeStore{facts: facts})
	require.NoError(t, err)

	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: 1})
	require.NoError(t, err)

	return svc, token
}

func TestAnalysisEndpoint(t *testing.T) {
	svc, token := setup(t, []*domain.DisposalFact{
		{Weight: 5, IsRecyclable: true, WasteTypeName: "Plastico", LocationName: "Centro", Datetime: time.Now()},
		{Weight: 3, IsRecyclable: false, WasteTypeName: "Organico", LocationName: "Centro", Datetime: time.Now()},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/recyclable-waste/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var split domain.RecyclableSplit
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &split))
	assert.InDelta(t, 5, split.RecyclableWeight, 1e-9)
	assert.InDelta(t, 3, split.NonRecyclableWeight, 1e-9)
}

func TestAnalysisEndpoint_MissingToken(t *testing.T) {
	svc, _ := setup(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/waste-today/1", nil)
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCodedErrorsMapToStatus(t *testing.T) {
	svc, token := setup(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/99", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body domain.ErrorResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Code)
}

func TestRequestIDHeader(t *testing.T) {
	svc, token := setup(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/waste-today/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

