package repository

import (
	"context"
	"log/slog"

	"github.com/edulend/loanassist/gen/ent"
	entuser "github.com/edulend/loanassist/gen/ent/user"
	"github.com/edulend/loanassist/internal/auth"
)

// userRepo implements auth.UserStore on top of ent.
type userRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) auth.UserStore {
	return &userRepo{client: client, logger: logger}
}

func (r *userRepo) Create(ctx context.Context, u *auth.User) (*auth.User, error) {
	row, err := r.client.User.Create().
		SetEmail(u.Email).
		SetPasswordHash(u.PasswordHash).
		SetFullName(u.FullName).
		SetPhone(u.Phone).
		Save(ctx)
	if err != nil {
		r.logger.Error("user create failed", "email", u.Email, "error", err)
		return nil, err
	}
	return toAuthUser(row), nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	row, err := r.client.User.Query().
		Where(entuser.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return toAuthUser(row), nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, id int, upd auth.ProfileUpdate) error {
	q := r.client.User.UpdateOneID(id)
	if upd.FullName != nil {
		q = q.SetFullName(*upd.FullName)
	}
	if upd.Phone != nil {
		q = q.SetPhone(*upd.Phone)
	}
	if upd.ProfileCompleted != nil {
		q = q.SetProfileCompleted(*upd.ProfileCompleted)
	}
	if err := q.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return auth.ErrUserNotFound
		}
		r.logger.Error("user profile update failed", "user_id", id, "error", err)
		return err
	}
	return nil
}

func toAuthUser(row *ent.User) *auth.User {
	return &auth.User{
		ID:               row.ID,
		Email:            row.Email,
		PasswordHash:     row.PasswordHash,
		FullName:         row.FullName,
		Phone:            row.Phone,
		CreatedAt:        row.CreatedAt,
		ProfileCompleted: row.ProfileCompleted,
	}
}
