package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"blogapi/internal/apierror"
	"blogapi/internal/auth"
	"blogapi/models"
)

type postRequest struct {
	Title   string `json:"title" validate:"required,max=256"`
	Content string `json:"content" validate:"required,max=256"`
}

// Post handlers all require a valid bearer token and operate only on
// posts owned by the caller. Posts of other users are reported as not
// found, not forbidden.

func (s *Server) handleListPosts(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return apierror.Unauthorized("missing authentication")
	}

	posts, err := s.posts.ListByAuthor(c.Request().Context(), claims.ID)
	if err != nil {
		return apierror.Internal(err)
	}
	return c.JSON(http.StatusOK, posts)
}

func (s *Server) handleCreatePost(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return apierror.Unauthorized("missing authentication")
	}

	var req postRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	post := &models.Post{Title: req.Title, Content: req.Content, AuthorID: claims.ID}
	if err := s.posts.Create(c.Request().Context(), post); err != nil {
		return apierror.Internal(err)
	}
	return c.JSON(http.StatusCreated, post)
}

func (s *Server) handleGetPost(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return apierror.Unauthorized("missing authentication")
	}

	post, err := s.posts.GetByIDForAuthor(c.Request().Context(), c.Param("id"), claims.ID)
	if err != nil {
		return apierror.Internal(err)
	}
	if post == nil {
		return apierror.NotFound("Post not found")
	}
	return c.JSON(http.StatusOK, post)
}

func (s *Server) handleUpdatePost(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return apierror.Unauthorized("missing authentication")
	}

	var req postRequest
	if err := s.bind(c, &req); err != nil {
		return err
	}

	post, err := s.posts.UpdateForAuthor(c.Request().Context(), c.Param("id"), claims.ID, req.Title, req.Content)
	if err != nil {
		return apierror.Internal(err)
	}
	if post == nil {
		return apierror.NotFound("Post not found")
	}
	return c.JSON(http.StatusOK, post)
}

func (s *Server) handleDeletePost(c echo.Context) error {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return apierror.Unauthorized("missing authentication")
	}

	deleted, err := s.posts.DeleteForAuthor(c.Request().Context(), c.Param("id"), claims.ID)
	if err != nil {
		return apierror.Internal(err)
	}
	if !deleted {
		return apierror.NotFound("Post not found")
	}
	return c.NoContent(http.StatusNoContent)
}
