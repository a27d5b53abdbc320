package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/estoque/backend/internal/domain/identity"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockUserRepository creates a GormUserRepository with a mocked SQL connection
func newMockUserRepository(t *testing.T) (*GormUserRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewGormUserRepository(gormDB), mock, mockDB
}

func userRows(user *identity.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "email", "password_hash", "role", "active"}).
		AddRow(user.ID, user.CreatedAt, user.UpdatedAt, user.Name, user.Email, user.PasswordHash, user.Role, user.Active)
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	t.Run("finds existing user", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		user, err := identity.NewUser("Ana", "ana@example.com", "s3cret", identity.RoleUser, true)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ana@example.com", 1).
			WillReturnRows(userRows(user))

		found, err := repo.FindByEmail(context.Background(), "ana@example.com")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "ana@example.com", found.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing rows to domain not found", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ghost@example.com", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByEmail(context.Background(), "ghost@example.com")

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates driver errors unchanged", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ana@example.com", 1).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.FindByEmail(context.Background(), "ana@example.com")

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserRepository_FindByID(t *testing.T) {
	t.Run("maps missing rows to domain not found", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(id, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a user through sqlite", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormUserRepository(db.DB)

		user, err := identity.NewUser("Ana", "ana@example.com", "s3cret", identity.RoleAdmin, true)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana", found.Name)
		assert.Equal(t, identity.RoleAdmin, found.Role)
		assert.True(t, found.VerifyPassword("s3cret"))
	})

	t.Run("Save updates an existing user in place", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormUserRepository(db.DB)

		user, err := identity.NewUser("Ana", "ana@example.com", "s3cret", identity.RoleUser, false)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, user))

		user.Active = true
		require.NoError(t, repo.Save(ctx, user))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, found.Active)
	})

	t.Run("FindAll lists users in insertion order", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormUserRepository(db.DB)

		first, err := identity.NewUser("Ana", "ana@example.com", "s3cret", identity.RoleUser, true)
		require.NoError(t, err)
		second, err := identity.NewUser("Bruno", "bruno@example.com", "s3cret", identity.RoleUser, true)
		require.NoError(t, err)
		second.CreatedAt = first.CreatedAt.Add(time.Second)

		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))

		users, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Ana", users[0].Name)
		assert.Equal(t, "Bruno", users[1].Name)
	})

	t.Run("Delete removes the row and reports missing ids", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormUserRepository(db.DB)

		user, err := identity.NewUser("Ana", "ana@example.com", "s3cret", identity.RoleUser, true)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, user))

		require.NoError(t, repo.Delete(ctx, user.ID))
		_, err = repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}
