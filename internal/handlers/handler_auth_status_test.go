package handlers

import (
	"finboard/internal/models"
	"finboard/internal/testutil"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestAuthStatusHandlerServesSeededUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/status")
	defer tc.Finish()

	// The guard validated and seeded on the way in; this read must not produce
	// a second upstream call, which the mock controller would flag.
	tc.AppContext.AuthState.Seed("tok-1", &models.User{ID: "u1", Email: "ana@example.com"})
	tc.MockSession.EXPECT().GetToken(gomock.Any()).Return("tok-1", true)

	tc.CallHandler(AuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", true)
}

func TestAuthStatusHandlerWithoutToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/status")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetToken(gomock.Any()).Return("", false)

	tc.CallHandler(AuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONBool(t, "authenticated", false)
}

func TestAuthStatusHandlerWithDeadSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/auth/status")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetToken(gomock.Any()).Return("tok-dead", true)
	tc.MockAPI.EXPECT().FetchCurrentUser(gomock.Any(), "tok-dead").Return(nil)

	tc.CallHandler(AuthStatusHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONBool(t, "authenticated", false)
}
