package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/teampulse/internal/domain"
	apperrors "github.com/pscheid92/teampulse/internal/errors"
)

// duplicateSubmissionMessage is part of the public contract; clients display
// it verbatim.
const duplicateSubmissionMessage = "Sorry, you have already submitted your response for today, try again tomorrow!"

type submitMoodRequest struct {
	Mood    string `json:"mood"`
	Comment string `json:"comment"`
}

func (s *Server) handleSubmitMood(c echo.Context) error {
	ctx := c.Request().Context()

	var req submitMoodRequest
	if err := c.Bind(&req); err != nil {
		return plainBadRequest(c, "invalid request body")
	}

	userID, err := s.identity.Resolve(c.Request(), c.Response())
	if err != nil {
		return apperrors.InternalError("failed to resolve caller identity", err)
	}

	mood, err := domain.ParseMoodLevel(req.Mood)
	if err != nil {
		return plainBadRequest(c, fmt.Sprintf("unknown mood %q", req.Mood))
	}

	err = s.app.Submit(ctx, mood, userID, req.Comment)
	switch {
	case err == nil:
		if err := c.NoContent(http.StatusCreated); err != nil {
			return fmt.Errorf("failed to send response: %w", err)
		}
		return nil
	case errors.Is(err, domain.ErrDuplicateSubmission):
		return plainBadRequest(c, duplicateSubmissionMessage)
	case errors.Is(err, domain.ErrCommentTooLong):
		return plainBadRequest(c, fmt.Sprintf("comment exceeds %d characters", domain.MaxCommentLength))
	case errors.Is(err, domain.ErrUnknownMood):
		return plainBadRequest(c, fmt.Sprintf("unknown mood %q", req.Mood))
	case errors.Is(err, domain.ErrMissingUserID):
		return plainBadRequest(c, "missing user id")
	default:
		return apperrors.InternalError("failed to record mood submission", err)
	}
}

func (s *Server) handleOverallMood(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := s.app.Overall(ctx)
	if err != nil {
		return apperrors.InternalError("failed to aggregate team mood", err)
	}

	if err := c.JSON(http.StatusOK, summary); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// plainBadRequest writes the text/plain 400 the mood endpoints use instead
// of the generic JSON error envelope.
func plainBadRequest(c echo.Context, message string) error {
	if err := c.String(http.StatusBadRequest, message); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}
	return nil
}
