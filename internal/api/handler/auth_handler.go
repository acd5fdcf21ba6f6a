package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/api/metrics"
	"github.com/pdam/billing-console/internal/api/view"
	"github.com/pdam/billing-console/internal/core/dialog"
	"github.com/pdam/billing-console/internal/core/ports"
)

const (
	resourceAuth = "auth"
	roleKey      = "role"
)

var (
	signInMsgs = dialog.Messages{Failure: "Sign in failed"}
	signUpMsgs = dialog.Messages{Failure: "Registration failed"}
)

// AuthHandler serves the sign-in, sign-up and sign-out forms.
type AuthHandler struct {
	authService ports.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

type signInRequest struct {
	Username string `form:"username" json:"username" validate:"required,notblank"`
	Password string `form:"password" json:"password" validate:"required"`
}

type signUpRequest struct {
	Username string `form:"username" json:"username" validate:"required,notblank"`
	Password string `form:"password" json:"password" validate:"required"`
	Name     string `form:"name"     json:"name"`
	Phone    string `form:"phone"    json:"phone"`
}

// Root redirects to the caller's home page, or to sign-in without a token.
func (h *AuthHandler) Root(c echo.Context) error {
	if credentials(c).Token == "" {
		return c.Redirect(http.StatusSeeOther, "/sign-in")
	}
	role, err := tokenStore(c).Get(c.Request().Context(), roleKey)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, ports.Session{Role: role}.Home())
}

// SignInPage handles GET /sign-in.
func (h *AuthHandler) SignInPage(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageSignIn, view.Page{
		Title: "Sign in",
		Data:  view.SignInData{Registered: c.QueryParam("registered") != ""},
	})
}

// SignIn handles POST /sign-in. The token and role are written to the
// session store for the token's lifetime.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := bindForm(c, &req); err != nil {
		notice := dialog.Notice{Level: dialog.LevelWarning, Message: err.Error()}
		return h.renderAuth(c, http.StatusUnprocessableEntity, view.PageSignIn, "Sign in", notice, view.SignInData{Username: req.Username})
	}

	ctx := c.Request().Context()
	session, err := h.authService.SignIn(ctx, ports.SignInInput(req))
	if err != nil {
		notice := dialog.FailureNotice(err, signInMsgs)
		h.logger.Warn().Err(err).Str("username", req.Username).Msg("sign in failed")
		return h.renderAuth(c, actionStatus(err), view.PageSignIn, "Sign in", notice, view.SignInData{Username: req.Username})
	}

	store := tokenStore(c)
	if err := store.Set(ctx, ports.AccessTokenKey, session.Token, session.ExpiresIn); err != nil {
		return err
	}
	if err := store.Set(ctx, roleKey, session.Role, session.ExpiresIn); err != nil {
		return err
	}
	h.logger.Info().Str("username", req.Username).Str("role", session.Role).Dur("expires_in", session.ExpiresIn).Msg("signed in")
	return c.Redirect(http.StatusSeeOther, session.Home())
}

// SignOut handles POST /sign-out.
func (h *AuthHandler) SignOut(c echo.Context) error {
	ctx := c.Request().Context()
	store := tokenStore(c)
	if err := store.Delete(ctx, roleKey); err != nil {
		return err
	}
	if err := store.Delete(ctx, ports.AccessTokenKey); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/sign-in")
}

// SignUpPage handles GET /sign-up.
func (h *AuthHandler) SignUpPage(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageSignUp, view.Page{Title: "Sign up", Data: view.SignUpData{}})
}

// SignUp handles POST /sign-up by registering an admin account.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := bindForm(c, &req); err != nil {
		notice := dialog.Notice{Level: dialog.LevelWarning, Message: err.Error()}
		return h.renderAuth(c, http.StatusUnprocessableEntity, view.PageSignUp, "Sign up", notice, view.SignUpData{
			Username: req.Username, Name: req.Name, Phone: req.Phone,
		})
	}

	if _, err := h.authService.Register(c.Request().Context(), ports.AdminRegistration(req)); err != nil {
		notice := dialog.FailureNotice(err, signUpMsgs)
		return h.renderAuth(c, actionStatus(err), view.PageSignUp, "Sign up", notice, view.SignUpData{
			Username: req.Username, Name: req.Name, Phone: req.Phone,
		})
	}
	return c.Redirect(http.StatusSeeOther, "/sign-in?registered=1")
}

func (h *AuthHandler) renderAuth(c echo.Context, status int, page, title string, notice dialog.Notice, data any) error {
	metrics.NoticesTotal.WithLabelValues(resourceAuth, string(notice.Level)).Inc()
	return c.Render(status, page, view.Page{Title: title, Notice: &notice, Data: data})
}
