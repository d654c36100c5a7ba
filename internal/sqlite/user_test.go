package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tc2services/attivita/internal/domain/user"
	"github.com/tc2services/attivita/internal/repository"
)

func TestUserRepository_AddGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &user.User{ID: "u1", Fullname: "Ada Lovelace"}))
	require.NoError(t, repo.AssignDevice(ctx, "u1", "dev2"))
	require.NoError(t, repo.AssignDevice(ctx, "u1", "dev1"))

	u, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
	require.Equal(t, "Ada Lovelace", u.Fullname)
	require.Equal(t, []string{"dev1", "dev2"}, u.Devices)
}

func TestUserRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_GetByDevice(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &user.User{ID: "u1", Fullname: "Ada Lovelace"}))
	require.NoError(t, repo.AssignDevice(ctx, "u1", "dev1"))

	u, err := repo.GetByDevice(ctx, "dev1")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)

	// Unknown device.
	_, err = repo.GetByDevice(ctx, "dev9")
	require.ErrorIs(t, err, repository.ErrNotFound)

	// Released device row with NULL user.
	_, err = db.Exec(`INSERT INTO devices (device_id, user_id) VALUES ('dev2', NULL)`)
	require.NoError(t, err)
	_, err = repo.GetByDevice(ctx, "dev2")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_List(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &user.User{ID: "a", Fullname: "First"}))
	require.NoError(t, repo.Add(ctx, &user.User{ID: "b", Fullname: "Second"}))
	require.NoError(t, repo.Add(ctx, &user.User{ID: "c", Fullname: "Third"}))
	require.NoError(t, repo.AssignDevice(ctx, "b", "dev1"))

	users, err := repo.List(ctx, user.ListOptions{})
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "a", users[0].ID)
	require.Equal(t, []string{"dev1"}, users[1].Devices)
	require.Empty(t, users[0].Devices)

	users, err = repo.List(ctx, user.ListOptions{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "b", users[0].ID)
}

func TestUserRepository_DeleteReleasesDevices(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &user.User{ID: "u1", Fullname: "Ada Lovelace"}))
	require.NoError(t, repo.AssignDevice(ctx, "u1", "dev1"))

	require.NoError(t, repo.Delete(ctx, "u1"))

	_, err := repo.Get(ctx, "u1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	// The device row survives, unassigned and ready for reuse.
	_, err = repo.GetByDevice(ctx, "dev1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Add(ctx, &user.User{ID: "u2", Fullname: "Grace Hopper"}))
	require.NoError(t, repo.AssignDevice(ctx, "u2", "dev1"))
	u, err := repo.GetByDevice(ctx, "dev1")
	require.NoError(t, err)
	require.Equal(t, "u2", u.ID)
}

func TestUserRepository_DeleteNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)

	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_AssignDeviceUnknownUser(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)

	err := repo.AssignDevice(context.Background(), "missing", "dev1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
