package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789"

func TestResolve_MintsNewID(t *testing.T) {
	r := NewResolver(testSecret, 24*time.Hour, false)

	req := httptest.NewRequest(http.MethodPost, "/api/mood", nil)
	rec := httptest.NewRecorder()

	id, err := r.Resolve(req, rec)
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err, "minted id is a UUID")
	assert.NotEmpty(t, rec.Header().Get("Set-Cookie"), "new identity must be persisted")
}

func TestResolve_StableAcrossRequests(t *testing.T) {
	r := NewResolver(testSecret, 24*time.Hour, false)

	first := httptest.NewRequest(http.MethodPost, "/api/mood", nil)
	firstRec := httptest.NewRecorder()
	id1, err := r.Resolve(first, firstRec)
	require.NoError(t, err)

	second := httptest.NewRequest(http.MethodGet, "/api/mood/overall", nil)
	for _, c := range firstRec.Result().Cookies() {
		second.AddCookie(c)
	}
	secondRec := httptest.NewRecorder()
	id2, err := r.Resolve(second, secondRec)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.Empty(t, secondRec.Header().Get("Set-Cookie"), "existing identity is not reissued")
}

func TestResolve_HeaderOverridesCookie(t *testing.T) {
	r := NewResolver(testSecret, 24*time.Hour, false)

	req := httptest.NewRequest(http.MethodPost, "/api/mood", nil)
	req.Header.Set(HeaderUserID, "pinned-user")
	rec := httptest.NewRecorder()

	id, err := r.Resolve(req, rec)
	require.NoError(t, err)
	assert.Equal(t, "pinned-user", id)
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
}

func TestResolve_TamperedCookieMintsFresh(t *testing.T) {
	r := NewResolver(testSecret, 24*time.Hour, false)

	req := httptest.NewRequest(http.MethodPost, "/api/mood", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "not-a-signed-value"})
	rec := httptest.NewRecorder()

	id, err := r.Resolve(req, rec)
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEmpty(t, rec.Header().Get("Set-Cookie"), "fresh identity replaces the bad cookie")
}
