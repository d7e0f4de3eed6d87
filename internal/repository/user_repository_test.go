package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/taskflow-dev/taskflow-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "name", "role"}).
		AddRow(7, "dana", "dana@example.com", "$2a$10$hash", "Dana", "employee")

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("dana@example.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindByEmail("dana@example.com")
	require.NoError(t, err)
	require.Equal(t, uint64(7), user.ID)
	require.Equal(t, models.RoleEmployee, user.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email = \\?").
		WithArgs("ghost@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByEmail("ghost@example.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	user := &models.User{
		Username:     "erin",
		Email:        "erin@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         models.RoleEmployee,
	}
	require.NoError(t, repo.Create(user))
	require.Equal(t, uint64(3), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
