package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		reset_token_hash VARCHAR(64),
		reset_token_expires_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserRepositories(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	reader := NewUserReadRepository(db)
	writer := NewUserWriteRepository(db)
	ctx := context.Background()

	t.Run("Save and GetByEmail", func(t *testing.T) {
		err := writer.Save(ctx, "admin@example.com", "hashedpassword", true)
		assert.NoError(t, err)

		user, err := reader.GetByEmail(ctx, "admin@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "admin@example.com", user.Email)
		assert.True(t, user.IsAdmin)
		assert.NotEqual(t, uuid.Nil, user.UserID)

		byID, err := reader.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Equal(t, user.UserID, byID.UserID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := writer.Save(ctx, "admin@example.com", "otherhash", false)
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("unknown email is nil, not an error", func(t *testing.T) {
		user, err := reader.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("reset token round trip", func(t *testing.T) {
		user, err := reader.GetByEmail(ctx, "admin@example.com")
		assert.NoError(t, err)

		err = writer.SetResetToken(ctx, user.UserID, "tokenhash", time.Now().Add(10*time.Minute))
		assert.NoError(t, err)

		found, err := reader.GetByResetTokenHash(ctx, "tokenhash")
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, user.UserID, found.UserID)

		err = writer.ClearResetToken(ctx, user.UserID)
		assert.NoError(t, err)

		found, err = reader.GetByResetTokenHash(ctx, "tokenhash")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("expired reset token is invisible", func(t *testing.T) {
		user, err := reader.GetByEmail(ctx, "admin@example.com")
		assert.NoError(t, err)

		err = writer.SetResetToken(ctx, user.UserID, "expiredhash", time.Now().Add(-time.Minute))
		assert.NoError(t, err)

		found, err := reader.GetByResetTokenHash(ctx, "expiredhash")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("UpdatePassword clears the reset token", func(t *testing.T) {
		user, err := reader.GetByEmail(ctx, "admin@example.com")
		assert.NoError(t, err)

		err = writer.SetResetToken(ctx, user.UserID, "onetimehash", time.Now().Add(10*time.Minute))
		assert.NoError(t, err)

		err = writer.UpdatePassword(ctx, user.UserID, "newhash")
		assert.NoError(t, err)

		updated, err := reader.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.Equal(t, "newhash", updated.PasswordHash)
		assert.Nil(t, updated.ResetTokenHash)

		found, err := reader.GetByResetTokenHash(ctx, "onetimehash")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}
