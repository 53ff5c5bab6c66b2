package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	nextID int
	byID   map[int]*User
}

func newMemStore() *memStore {
	return &memStore{nextID: 1, byID: map[int]*User{}}
}

func (m *memStore) Create(_ context.Context, u *User) (*User, error) {
	cp := *u
	cp.ID = m.nextID
	cp.CreatedAt = time.Now()
	m.nextID++
	m.byID[cp.ID] = &cp
	return &cp, nil
}

func (m *memStore) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *memStore) UpdateProfile(_ context.Context, id int, upd ProfileUpdate) error {
	u, ok := m.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.ProfileCompleted != nil {
		u.ProfileCompleted = *upd.ProfileCompleted
	}
	return nil
}

func TestServiceRegisterAndLogin(t *testing.T) {
	svc := NewService(newMemStore(), 1000, nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, "student@example.com", "pass123", "A Student", "9999999999")
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", u.Email)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "pass123", u.PasswordHash)

	got, err := svc.Login(ctx, "student@example.com", "pass123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestServiceRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newMemStore(), 1000, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "dup@example.com", "one", "", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "dup@example.com", "two", "", "")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.EqualError(t, err, "Email already registered")
}

func TestServiceLoginUnknownEmail(t *testing.T) {
	svc := NewService(newMemStore(), 1000, nil)

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrEmailNotFound)
	assert.EqualError(t, err, "Email not found")
}

func TestServiceLoginWrongPassword(t *testing.T) {
	svc := NewService(newMemStore(), 1000, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "user@example.com", "right", "", "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "user@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.EqualError(t, err, "Wrong password")
}

func TestServiceRegisterTrimsEmail(t *testing.T) {
	svc := NewService(newMemStore(), 1000, nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, "  padded@example.com ", "pw", "", "")
	require.NoError(t, err)
	assert.Equal(t, "padded@example.com", u.Email)

	_, err = svc.Login(ctx, "padded@example.com", "pw")
	assert.NoError(t, err)
}

func TestServiceUpdateProfile(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, 1000, nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, "profile@example.com", "pw", "Old Name", "")
	require.NoError(t, err)

	name := "New Name"
	done := true
	require.NoError(t, svc.UpdateProfile(ctx, u.ID, ProfileUpdate{FullName: &name, ProfileCompleted: &done}))

	got, err := svc.GetByEmail(ctx, "profile@example.com")
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.FullName)
	assert.True(t, got.ProfileCompleted)
}
