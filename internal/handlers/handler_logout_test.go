package handlers

import (
	"errors"
	"finboard/internal/models"
	"finboard/internal/testutil"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLogoutHandlerClearsSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/logout")
	defer tc.Finish()

	user := &models.User{ID: "u1", Email: "ana@example.com"}
	tc.AppContext.AuthState.Seed("tok-1", user)

	tc.MockSession.EXPECT().GetToken(gomock.Any()).Return("tok-1", true)
	tc.MockAPI.EXPECT().Logout(gomock.Any(), "tok-1").Return(nil)
	// The reconcile inside OnLogout confirms the upstream session is gone.
	tc.MockAPI.EXPECT().FetchCurrentUser(gomock.Any(), "tok-1").Return(nil)
	tc.MockSession.EXPECT().GetUser(gomock.Any()).Return(user, true)
	tc.MockSession.EXPECT().Logout(gomock.Any()).Return(nil)

	tc.CallHandler(LogoutHandler)

	tc.AssertStatus(t, http.StatusSeeOther)
	assert.Equal(t, "/", tc.Response.Header().Get("Location"))
	assert.Equal(t, 0, tc.AppContext.AuthState.Size())
	tc.AssertLogContains(t, slog.LevelInfo, "user logged out")
}

func TestLogoutHandlerClearsLocalStateWhenUpstreamFails(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/logout")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetToken(gomock.Any()).Return("tok-1", true)
	tc.MockAPI.EXPECT().Logout(gomock.Any(), "tok-1").Return(errors.New("upstream down"))
	tc.MockAPI.EXPECT().FetchCurrentUser(gomock.Any(), "tok-1").Return(nil)
	tc.MockSession.EXPECT().GetUser(gomock.Any()).Return(nil, false)
	tc.MockSession.EXPECT().Logout(gomock.Any()).Return(nil)

	tc.CallHandler(LogoutHandler)

	tc.AssertStatus(t, http.StatusSeeOther)
	assert.Equal(t, "/", tc.Response.Header().Get("Location"))
	tc.AssertLogContains(t, slog.LevelWarn, "upstream logout failed")
}

func TestLogoutHandlerWithoutToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/logout")
	defer tc.Finish()

	tc.MockSession.EXPECT().GetToken(gomock.Any()).Return("", false)
	tc.MockSession.EXPECT().GetUser(gomock.Any()).Return(nil, false)
	tc.MockSession.EXPECT().Logout(gomock.Any()).Return(nil)

	tc.CallHandler(LogoutHandler)

	tc.AssertStatus(t, http.StatusSeeOther)
	assert.Equal(t, "/", tc.Response.Header().Get("Location"))
}
