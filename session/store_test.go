package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"spana-admin/api"
)

const sessionPath = "spana/auth-storage.json"

type fixture struct {
	store *Store
	fs    afero.Fs
	calls *int64
}

// newFixture backs a session store with an in-memory filesystem and a
// scripted auth server.
func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	fs := afero.NewMemMapFs()
	store := NewStore(api.NewClient(zap.NewNop()), zap.NewNop(), Options{
		LoginURL:    server.URL + "/auth/login",
		OTPURL:      server.URL + "/auth/verify-otp",
		SessionFile: sessionPath,
		Fs:          fs,
	})
	return &fixture{store: store, fs: fs, calls: &calls}
}

func otpFlowHandler(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/auth/login":
		w.Write([]byte(`{"message":"OTP sent","requiresOTP":true,"email":"a@b.com","nextStep":"verify-otp"}`))
	case "/auth/verify-otp":
		w.Write([]byte(`{"token":"T","user":{"id":"1","email":"a@b.com"}}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestLoginHoldsPendingEmail(t *testing.T) {
	f := newFixture(t, otpFlowHandler)

	require.NoError(t, f.store.Login(context.Background(), "a@b.com", "pw"))
	assert.Equal(t, "a@b.com", f.store.PendingEmail())
	assert.False(t, f.store.IsAuthenticated())
	assert.Empty(t, f.store.Err())
	assert.False(t, f.store.IsLoading())
}

func TestLoginWithoutOTPIsProtocolError(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"welcome","requiresOTP":false}`))
	})

	err := f.store.Login(context.Background(), "a@b.com", "pw")
	var perr *api.ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Unexpected response from server", f.store.Err())
	assert.False(t, f.store.IsAuthenticated())
	assert.Empty(t, f.store.PendingEmail())
}

func TestLoginFailurePropagates(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid email or password"}`))
	})

	err := f.store.Login(context.Background(), "a@b.com", "wrong")
	var serr *api.ServerError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Invalid email or password", f.store.Err())
	assert.Empty(t, f.store.PendingEmail())
}

func TestVerifyOTPSetsSession(t *testing.T) {
	f := newFixture(t, otpFlowHandler)
	require.NoError(t, f.store.Login(context.Background(), "a@b.com", "pw"))

	require.NoError(t, f.store.VerifyOTP(context.Background(), "a@b.com", "123456"))
	assert.Equal(t, "T", f.store.Token())
	assert.True(t, f.store.IsAuthenticated())
	assert.Empty(t, f.store.PendingEmail())
	require.NotNil(t, f.store.User())
	assert.Equal(t, "1", f.store.User().ID)
}

func TestVerifyOTPFailureClearsToken(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			otpFlowHandler(w, r)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid OTP"}`))
	})
	require.NoError(t, f.store.Login(context.Background(), "a@b.com", "pw"))

	err := f.store.VerifyOTP(context.Background(), "a@b.com", "000000")
	require.Error(t, err)
	assert.False(t, f.store.IsAuthenticated())
	assert.Empty(t, f.store.Token())
	assert.Nil(t, f.store.User())
	assert.Equal(t, "Invalid OTP", f.store.Err())
}

func TestVerifyOTPEmptyEmailFailsFast(t *testing.T) {
	f := newFixture(t, otpFlowHandler)

	err := f.store.VerifyOTP(context.Background(), "", "123456")
	var verr *api.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.EqualValues(t, 0, atomic.LoadInt64(f.calls), "no network call expected")
	assert.False(t, f.store.IsLoading())
}

func TestPersistedEntryHoldsDurableSubsetOnly(t *testing.T) {
	f := newFixture(t, otpFlowHandler)
	require.NoError(t, f.store.Login(context.Background(), "a@b.com", "pw"))
	require.NoError(t, f.store.VerifyOTP(context.Background(), "a@b.com", "123456"))

	data, err := afero.ReadFile(f.fs, sessionPath)
	require.NoError(t, err)

	var entry map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Contains(t, entry, "token")
	assert.Contains(t, entry, "isAuthenticated")
	assert.NotContains(t, entry, "isLoading")
	assert.NotContains(t, entry, "error")
}

func TestRestoreAcrossRestart(t *testing.T) {
	f := newFixture(t, otpFlowHandler)
	require.NoError(t, f.store.Login(context.Background(), "a@b.com", "pw"))
	require.NoError(t, f.store.VerifyOTP(context.Background(), "a@b.com", "123456"))

	// A second store over the same filesystem plays the part of a fresh
	// process start.
	restored := NewStore(api.NewClient(zap.NewNop()), zap.NewNop(), Options{
		SessionFile: sessionPath,
		Fs:          f.fs,
	})
	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, "T", restored.Token())
}

func TestLogoutClearsPersistedState(t *testing.T) {
	f := newFixture(t, otpFlowHandler)
	require.NoError(t, f.store.Login(context.Background(), "a@b.com", "pw"))
	require.NoError(t, f.store.VerifyOTP(context.Background(), "a@b.com", "123456"))

	f.store.Logout()
	assert.Empty(t, f.store.Token())
	assert.False(t, f.store.IsAuthenticated())
	assert.Empty(t, f.store.PendingEmail())

	exists, err := afero.Exists(f.fs, sessionPath)
	require.NoError(t, err)
	assert.False(t, exists, "persisted entry should be removed")
}

func TestClearErrorIsIdempotent(t *testing.T) {
	f := newFixture(t, otpFlowHandler)

	f.store.ClearError()
	assert.Empty(t, f.store.Err())

	err := f.store.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	f.store.ClearError()
	f.store.ClearError()
	assert.Empty(t, f.store.Err())
}
