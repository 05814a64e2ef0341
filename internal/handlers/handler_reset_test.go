package handlers

import (
	"errors"
	"finboard/internal/testutil"
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResetPasswordPageHandler(t *testing.T) {
	t.Run("ShouldRenderRequestForm", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/reset-password")
		defer tc.Finish()

		tc.CallHandler(ResetPasswordPageHandler)

		tc.AssertStatus(t, http.StatusOK)
		assert.Contains(t, tc.Response.Body.String(), "Send reset link")
	})

	t.Run("ShouldRenderConfirmFormWithToken", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/reset-password")
		defer tc.Finish()

		tc.WithQueryParam("token", "reset-tok")

		tc.CallHandler(ResetPasswordPageHandler)

		tc.AssertStatus(t, http.StatusOK)
		assert.Contains(t, tc.Response.Body.String(), "Choose a new password")
		assert.Contains(t, tc.Response.Body.String(), `value="reset-tok"`)
	})
}

func TestRequestPasswordResetHandler(t *testing.T) {
	t.Run("ShouldForwardRequestUpstream", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/reset-password")
		defer tc.Finish()

		form := url.Values{}
		form.Set("email", "ana@example.com")
		tc.WithForm(form)

		tc.MockAPI.EXPECT().RequestPasswordReset(gomock.Any(), "ana@example.com").Return(nil)

		tc.CallHandler(RequestPasswordResetHandler)

		tc.AssertStatus(t, http.StatusOK)
		assert.Contains(t, tc.Response.Body.String(), "Check your email")
	})

	t.Run("ShouldAnswerSuccessShapedWhenUpstreamFails", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/reset-password")
		defer tc.Finish()

		form := url.Values{}
		form.Set("email", "ana@example.com")
		tc.WithForm(form)

		tc.MockAPI.EXPECT().RequestPasswordReset(gomock.Any(), "ana@example.com").
			Return(errors.New("upstream down"))

		tc.CallHandler(RequestPasswordResetHandler)

		tc.AssertStatus(t, http.StatusOK)
		assert.Contains(t, tc.Response.Body.String(), "Check your email",
			"account existence must not be observable through this endpoint")
		tc.AssertLogContains(t, slog.LevelWarn, "password reset request failed upstream")
	})

	t.Run("ShouldAnswerSuccessShapedWithoutEmail", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/reset-password")
		defer tc.Finish()

		tc.WithForm(url.Values{})

		tc.CallHandler(RequestPasswordResetHandler)

		tc.AssertStatus(t, http.StatusOK)
		assert.Contains(t, tc.Response.Body.String(), "Check your email")
	})
}

func TestConfirmPasswordResetHandler(t *testing.T) {
	t.Run("ShouldConfirmUpstream", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/reset-password/confirm")
		defer tc.Finish()

		form := url.Values{}
		form.Set("token", "reset-tok")
		form.Set("password", "new-password")
		tc.WithForm(form)

		tc.MockAPI.EXPECT().ConfirmPasswordReset(gomock.Any(), "reset-tok", "new-password").Return(nil)

		tc.CallHandler(ConfirmPasswordResetHandler)

		tc.AssertStatus(t, http.StatusOK)
		assert.Contains(t, tc.Response.Body.String(), "Password updated")
	})

	t.Run("ShouldAnswerSuccessShapedWhenUpstreamFails", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/reset-password/confirm")
		defer tc.Finish()

		form := url.Values{}
		form.Set("token", "reset-tok")
		form.Set("password", "new-password")
		tc.WithForm(form)

		tc.MockAPI.EXPECT().ConfirmPasswordReset(gomock.Any(), "reset-tok", "new-password").
			Return(errors.New("token expired"))

		tc.CallHandler(ConfirmPasswordResetHandler)

		tc.AssertStatus(t, http.StatusOK)
		assert.Contains(t, tc.Response.Body.String(), "Password updated")
		tc.AssertLogContains(t, slog.LevelWarn, "password reset confirmation failed upstream")
	})
}
