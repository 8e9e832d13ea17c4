package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/mail"
	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/pkg/cryptox"
	"github.com/aussiebroadwan/tack/pkg/idx"
	"github.com/aussiebroadwan/tack/pkg/slogx"
)

const (
	DefaultOTPTTL   = 10 * time.Minute
	DefaultResetTTL = 10 * time.Minute
)

// SessionService owns the account lifecycle: registration, email
// verification, login, refresh and password management.
type SessionService struct {
	Store    store.Store
	Tokens   *TokenService
	Mailer   mail.Mailer
	Composer mail.Composer

	// RevealUnknownEmail makes ForgotPassword and SendVerification report
	// unknown addresses instead of succeeding silently.
	RevealUnknownEmail bool

	OTPTTL   time.Duration
	ResetTTL time.Duration
}

func (s *SessionService) otpTTL() time.Duration {
	if s.OTPTTL > 0 {
		return s.OTPTTL
	}
	return DefaultOTPTTL
}

func (s *SessionService) resetTTL() time.Duration {
	if s.ResetTTL > 0 {
		return s.ResetTTL
	}
	return DefaultResetTTL
}

// Register creates an unverified account and mails it a verification code.
func (s *SessionService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)
	email = domain.NormalizeEmail(email)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var code string
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}
		code, err = s.replaceOTP(ctx, tx, user.ID, now)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	s.send(ctx, s.Composer.Verification(user.Email, user.Name, code, s.otpTTL()))
	return user, nil
}

// Login authenticates a verified user. Unverified users get a new code and
// a result flagged RequiresVerification instead of tokens.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Unknown emails take as long as wrong passwords.
			_, _ = cryptox.HashPassword(password)
			return domain.LoginResult{}, ErrInvalidCredentials
		}
		return domain.LoginResult{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Info("login failed", slog.String("user_id", user.ID))
			return domain.LoginResult{}, ErrInvalidCredentials
		}
		return domain.LoginResult{}, err
	}

	if !user.EmailVerified {
		if err := s.resendOTP(ctx, user); err != nil {
			return domain.LoginResult{}, err
		}
		return domain.LoginResult{RequiresVerification: true}, nil
	}

	pair, err := s.Tokens.IssuePair(ctx, s.Store, user)
	if err != nil {
		return domain.LoginResult{}, err
	}
	log.Info("user logged in", slog.String("user_id", user.ID))
	return domain.LoginResult{Tokens: pair}, nil
}

// Refresh rotates a refresh token: the presented one is revoked and a new
// pair is issued with fresh membership claims.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	if refreshToken == "" {
		return domain.TokenPair{}, ErrRefreshTokenRequired
	}

	claims, err := s.Tokens.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		return domain.TokenPair{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		return domain.TokenPair{}, notFound(err, ErrSessionUserGone)
	}

	if err := s.Tokens.Revoke(ctx, claims); err != nil {
		return domain.TokenPair{}, err
	}
	return s.Tokens.IssuePair(ctx, s.Store, user)
}

// Logout revokes the refresh token if it still verifies. It never fails on
// a bad token; the caller clears cookies regardless.
func (s *SessionService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	claims, err := s.Tokens.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		slogx.FromContext(ctx).Debug("logout with unusable refresh token", slog.Any("error", err))
		return nil
	}
	if err := s.Tokens.Revoke(ctx, claims); err != nil && !errors.Is(err, ErrTokenRevoked) {
		return err
	}
	return nil
}

// ForgotPassword mails a single-use reset link. Unknown addresses succeed
// silently unless RevealUnknownEmail is set.
func (s *SessionService) ForgotPassword(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("password reset requested for unknown email")
			if s.RevealUnknownEmail {
				return ErrUnknownEmail
			}
			return nil
		}
		return err
	}

	token, err := cryptox.GenerateHexToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	reset := domain.ResetToken{
		ID:        idx.New().String(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: now.Add(s.resetTTL()),
		CreatedAt: now,
	}

	// Only the newest link works.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.ResetTokens().DeleteResetTokensForUser(ctx, user.ID); err != nil {
			return err
		}
		return tx.ResetTokens().CreateResetToken(ctx, reset)
	})
	if err != nil {
		return err
	}

	log.Info("password reset issued", slog.String("user_id", user.ID))
	s.send(ctx, s.Composer.PasswordReset(user.Email, user.Name, token, s.resetTTL()))
	return nil
}

// ResetPassword consumes a reset token. The new hash and the token deletion
// commit together, so a token can be used at most once.
func (s *SessionService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := slogx.FromContext(ctx)
	fingerprint := cryptox.FingerprintToken(token)

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	var userID string
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		reset, err := tx.ResetTokens().GetResetTokenByHash(ctx, fingerprint)
		if err != nil {
			return notFound(err, ErrInvalidResetToken)
		}
		if reset.Expired(time.Now()) {
			return ErrInvalidResetToken
		}
		userID = reset.UserID

		if err := tx.Users().UpdatePasswordHash(ctx, reset.UserID, hash); err != nil {
			return err
		}
		return tx.ResetTokens().DeleteResetTokensForUser(ctx, reset.UserID)
	})
	if err != nil {
		return err
	}

	log.Info("password reset completed", slog.String("user_id", userID))
	return nil
}

// VerifyEmail checks a verification code, marks the address verified and
// logs the user in.
func (s *SessionService) VerifyEmail(ctx context.Context, email, code string) (domain.TokenPair, error) {
	log := slogx.FromContext(ctx)

	var pair domain.TokenPair
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
		if err != nil {
			return notFound(err, ErrInvalidOTP)
		}

		otp, err := tx.VerificationTokens().GetVerificationToken(ctx, user.ID, cryptox.NormalizeOTP(code))
		if err != nil {
			return notFound(err, ErrInvalidOTP)
		}
		if otp.Expired(time.Now()) {
			return ErrInvalidOTP
		}

		if err := tx.Users().MarkEmailVerified(ctx, user.ID); err != nil {
			return err
		}
		if err := tx.VerificationTokens().DeleteVerificationTokensForUser(ctx, user.ID); err != nil {
			return err
		}

		user.EmailVerified = true
		pair, err = s.Tokens.IssuePair(ctx, tx, user)
		if err != nil {
			return err
		}

		log.Info("email verified", slog.String("user_id", user.ID))
		return nil
	})
	if err != nil {
		return domain.TokenPair{}, err
	}
	return pair, nil
}

// SendVerification mails a fresh code to an unverified account.
func (s *SessionService) SendVerification(ctx context.Context, email string) error {
	user, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Debug("verification requested for unknown email")
			if s.RevealUnknownEmail {
				return ErrUserNotFound
			}
			return nil
		}
		return err
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}
	return s.resendOTP(ctx, user)
}

// Me returns the caller's profile.
func (s *SessionService) Me(ctx context.Context, actor domain.Actor) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, actor.UserID)
	if err != nil {
		return domain.User{}, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

// ChangePassword replaces the caller's password after checking the current
// one. A mismatch leaves the stored hash untouched.
func (s *SessionService) ChangePassword(ctx context.Context, actor domain.Actor, current, next string) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, actor.UserID)
	if err != nil {
		return notFound(err, ErrUserNotFound)
	}

	if err := cryptox.VerifyPassword(current, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Info("password change rejected", slog.String("user_id", user.ID))
			return ErrIncorrectPassword
		}
		return err
	}

	hash, err := cryptox.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return err
	}

	log.Info("password changed", slog.String("user_id", user.ID))
	return nil
}

func (s *SessionService) resendOTP(ctx context.Context, user domain.User) error {
	var code string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		code, err = s.replaceOTP(ctx, tx, user.ID, time.Now().UTC())
		return err
	})
	if err != nil {
		return err
	}
	s.send(ctx, s.Composer.Verification(user.Email, user.Name, code, s.otpTTL()))
	return nil
}

// replaceOTP drops any outstanding codes for the user and stores a new one.
func (s *SessionService) replaceOTP(ctx context.Context, tx store.Tx, userID string, now time.Time) (string, error) {
	code, err := cryptox.GenerateOTP()
	if err != nil {
		return "", err
	}
	if err := tx.VerificationTokens().DeleteVerificationTokensForUser(ctx, userID); err != nil {
		return "", err
	}
	err = tx.VerificationTokens().CreateVerificationToken(ctx, domain.VerificationToken{
		ID:        idx.New().String(),
		UserID:    userID,
		Code:      code,
		ExpiresAt: now.Add(s.otpTTL()),
		CreatedAt: now,
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// send delivers after commit. Failures are logged, not returned.
func (s *SessionService) send(ctx context.Context, m mail.Message) {
	if s.Mailer == nil {
		return
	}
	if err := s.Mailer.Send(ctx, m); err != nil {
		slogx.FromContext(ctx).Error("failed to send email",
			slog.String("kind", m.Kind),
			slog.Any("error", err),
		)
	}
}
