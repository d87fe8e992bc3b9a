package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"brandvoice/internal/middleware"
	"brandvoice/internal/models"
	"brandvoice/internal/session"
	"brandvoice/internal/store"
)

// totpIssuer is the issuer name shown in authenticator apps.
const totpIssuer = "BrandVoice Studio"

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	sessions *session.Store
	users    *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, users *store.UserStore) *Auth {
	return &Auth{
		sessions: sessions,
		users:    users,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

func userToPayload(u *models.User) userPayload {
	return userPayload{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
	}
}

// Login validates credentials and creates a session. Staff users must
// then complete two-factor verification before the admin API accepts
// requests; portal clients are fully authenticated immediately.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.users.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		serverError(w, "login lookup failed", err)
		return
	}
	if user == nil || !a.users.CheckPassword(user, req.Password) {
		// Same response for unknown email and wrong password.
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
		TwoFADone:   false,
	})
	if err != nil {
		serverError(w, "session create failed", err)
		return
	}

	twoFactor := "none"
	if user.IsStaff() {
		if user.Needs2FASetup() {
			twoFactor = "setup"
		} else {
			twoFactor = "verify"
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":      userToPayload(user),
		"twoFactor": twoFactor,
	})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me returns the authenticated user's session identity.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"user": userPayload{
			ID:          sess.UserID.String(),
			Email:       sess.Email,
			DisplayName: sess.DisplayName,
			Role:        sess.Role,
		},
		"twoFactorVerified": sess.TwoFADone,
	})
}

// TwoFASetup generates a fresh TOTP secret for the authenticated staff
// user and returns it with a QR code PNG, base64 encoded. Calling it again
// before verification replaces the pending secret.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	user, err := a.users.FindByID(sess.UserID)
	if err != nil {
		serverError(w, "user lookup for 2fa setup failed", err)
		return
	}
	if user == nil || !user.IsStaff() {
		writeError(w, http.StatusForbidden, "two-factor setup is for staff accounts")
		return
	}
	if user.TOTPEnabled {
		writeError(w, http.StatusConflict, "two-factor authentication is already enabled")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		serverError(w, "totp generate failed", err)
		return
	}

	if err := a.users.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		serverError(w, "save totp secret failed", err)
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		serverError(w, "qr code generation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"secret": key.Secret(),
		"qrCode": base64.StdEncoding.EncodeToString(qrPNG),
	})
}

type twoFAVerifyRequest struct {
	Code string `json:"code"`
}

// TwoFAVerify validates a TOTP code and marks the session as two-factor
// complete. On first verification it also enables TOTP on the account.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req twoFAVerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.users.FindByID(sess.UserID)
	if err != nil || user == nil {
		serverError(w, "user lookup for 2fa verify failed", err)
		return
	}

	if user.TOTPSecret == nil {
		writeError(w, http.StatusBadRequest, "two-factor setup has not been started")
		return
	}

	if !totp.Validate(strings.TrimSpace(req.Code), *user.TOTPSecret) {
		writeError(w, http.StatusUnauthorized, "invalid verification code")
		return
	}

	if !user.TOTPEnabled {
		if err := a.users.EnableTOTP(user.ID); err != nil {
			serverError(w, "enable totp failed", err)
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		serverError(w, "session update failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"user": userToPayload(user),
	})
}
