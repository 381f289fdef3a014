// Package services contains the business logic over the persistence layer.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sevrusik/turthsnapbot/ent"
	"github.com/sevrusik/turthsnapbot/ent/dailyusage"
	"github.com/sevrusik/turthsnapbot/ent/user"
	"github.com/sevrusik/turthsnapbot/pkg/config"
	"github.com/sevrusik/turthsnapbot/pkg/models"
)

// UserService manages accounts, daily quotas, and usage counters.
type UserService struct {
	client           *ent.Client
	freeChecksPerDay int
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client, quota config.QuotaConfig) *UserService {
	return &UserService{
		client:           client,
		freeChecksPerDay: quota.FreeChecksPerDay,
	}
}

// EnsureUser upserts the account for an incoming update and applies
// the daily quota reset when the reset date has passed.
func (s *UserService) EnsureUser(ctx context.Context, userID int64, username, firstName string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if ent.IsNotFound(err) {
		create := s.client.User.Create().
			SetID(userID).
			SetDailyChecksRemaining(s.freeChecksPerDay).
			SetQuotaResetDate(nextQuotaReset(time.Now()))
		if username != "" {
			create.SetUsername(username)
		}
		if firstName != "" {
			create.SetFirstName(firstName)
		}

		u, err = create.Save(ctx)
		if ent.IsConstraintError(err) {
			// Lost the insert race to a concurrent update.
			u, err = s.client.User.Get(ctx, userID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return u, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	update := u.Update().SetLastSeenAt(time.Now())
	if username != "" && (u.Username == nil || *u.Username != username) {
		update.SetUsername(username)
	}
	if firstName != "" && (u.FirstName == nil || *u.FirstName != firstName) {
		update.SetFirstName(firstName)
	}
	if time.Now().After(u.QuotaResetDate) {
		update.
			SetDailyChecksRemaining(s.freeChecksPerDay).
			SetQuotaResetDate(nextQuotaReset(time.Now()))
	}

	u, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// ConsumeCheck atomically spends one daily check. Pro accounts are
// not metered. Returns ErrQuotaExhausted when nothing is left.
func (s *UserService) ConsumeCheck(ctx context.Context, u *ent.User) error {
	if u.Tier == user.TierPro {
		if err := s.client.User.UpdateOneID(u.ID).AddTotalChecks(1).Exec(ctx); err != nil {
			return fmt.Errorf("failed to count check: %w", err)
		}
		return nil
	}

	n, err := s.client.User.Update().
		Where(
			user.IDEQ(u.ID),
			user.DailyChecksRemainingGT(0),
		).
		AddDailyChecksRemaining(-1).
		AddTotalChecks(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to consume check: %w", err)
	}
	if n == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// RefundCheck returns a previously consumed check after a failure the
// user is not responsible for. Free accounts get the daily balance
// back, never above the allowance; pro accounts only have the lifetime
// counter walked back.
func (s *UserService) RefundCheck(ctx context.Context, userID int64) error {
	n, err := s.client.User.Update().
		Where(
			user.IDEQ(userID),
			user.TierEQ(user.TierFree),
			user.DailyChecksRemainingLT(s.freeChecksPerDay),
		).
		AddDailyChecksRemaining(1).
		AddTotalChecks(-1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to refund check: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.client.User.Update().
		Where(
			user.IDEQ(userID),
			user.TierEQ(user.TierPro),
			user.TotalChecksGT(0),
		).
		AddTotalChecks(-1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to refund check: %w", err)
	}
	return nil
}

// RecordUsage bumps the per-day usage counter for reporting.
func (s *UserService) RecordUsage(ctx context.Context, userID int64, at time.Time) error {
	day := at.UTC().Truncate(24 * time.Hour)

	err := s.client.DailyUsage.Create().
		SetUserID(userID).
		SetDay(day).
		SetCount(1).
		OnConflictColumns(dailyusage.FieldUserID, dailyusage.FieldDay).
		AddCount(1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}
	return nil
}

// Tier returns the user's tier as a domain value.
func Tier(u *ent.User) models.Tier {
	if u.Tier == user.TierPro {
		return models.TierPro
	}
	return models.TierFree
}

// nextQuotaReset is the next UTC midnight after now.
func nextQuotaReset(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
}
