package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"blogapi/internal/apierror"
	"blogapi/internal/auth"
	"blogapi/models"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

// handleLogin verifies username/password and issues a token. Unknown
// usernames and wrong passwords produce the same response, so user
// existence is not leaked.
func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return apierror.Internal(err)
	}
	if user == nil {
		return apierror.Unauthorized("Invalid username or password")
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		return apierror.Internal(err)
	}
	if !ok {
		return apierror.Unauthorized("Invalid username or password")
	}

	token, err := auth.SignToken(s.cfg.Auth.JWTSecret, s.cfg.Auth.TokenTTL, user)
	if err != nil {
		return apierror.Internal(err)
	}
	return c.JSON(http.StatusOK, authResponse{Token: token, User: toUserResponse(user)})
}

// handleSignup registers a new user and logs them in.
func (s *Server) handleSignup(c echo.Context) error {
	var req signupRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	existing, err := s.users.GetByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return apierror.Internal(err)
	}
	if existing != nil {
		return apierror.Conflict("Username or email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apierror.Internal(err)
	}

	user := &models.User{Username: req.Username, Email: req.Email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		// Concurrent signups can still race past the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apierror.Conflict("Username or email already exists")
		}
		return apierror.Internal(err)
	}

	token, err := auth.SignToken(s.cfg.Auth.JWTSecret, s.cfg.Auth.TokenTTL, user)
	if err != nil {
		return apierror.Internal(err)
	}
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: toUserResponse(user)})
}

// handleProfile returns the authenticated user. A valid token whose
// user no longer exists resolves to not found.
func (s *Server) handleProfile(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return apierror.Unauthorized("missing authentication")
	}

	user, err := s.users.GetByID(c.Request().Context(), claims.ID)
	if err != nil {
		return apierror.Internal(err)
	}
	if user == nil {
		return apierror.NotFound("User not found")
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
