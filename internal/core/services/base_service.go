package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bizledger/internal/apperrors"
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request-scoped logger from context or the default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeRead checks that the session belongs to a known user.
func (s *BaseService) AuthorizeRead(ctx context.Context, session domain.Session) error {
	if session.UserID == "" || !session.Role.IsValid() {
		s.LogWarn(ctx, "Rejected request without a valid session")
		return apperrors.ErrUnauthorized
	}
	return nil
}

// AuthorizeWrite checks that the session may change ledger data.
func (s *BaseService) AuthorizeWrite(ctx context.Context, session domain.Session, action string) error {
	if err := s.AuthorizeRead(ctx, session); err != nil {
		return err
	}
	if !session.CanWrite() {
		s.LogWarn(ctx, "User not authorized for write action",
			slog.String("user_id", session.UserID),
			slog.String("role", string(session.Role)),
			slog.String("action", action))
		return fmt.Errorf("%w: %s requires the %s role", apperrors.ErrForbidden, action, domain.RoleAdmin)
	}
	return nil
}
