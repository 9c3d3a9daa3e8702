package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campus-bot-go/internal/model"
)

func TestUserCreate(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user := &model.User{CollegeID: "S1", Name: "Alice", PasswordHash: "hashed"}
	require.NoError(t, repo.Create(user))
	assert.Equal(t, uint(1), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 唯一索引冲突（MySQL 1062）必须被翻译成 gorm.ErrDuplicatedKey，
// 并发注册的兜底分支依赖这个哨兵错误。
func TestUserCreate_DuplicateKeyTranslated(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&mysqldriver.MySQLError{
			Number:  1062,
			Message: "Duplicate entry 'S1' for key 'users.college_id'",
		})
	mock.ExpectRollback()

	err := repo.Create(&model.User{CollegeID: "S1", Name: "Alice", PasswordHash: "hashed"})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByCollegeID_NotFound(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "college_id", "name", "password_hash"}))

	_, err := repo.FindByCollegeID("NOPE")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
