package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campus-bot-go/internal/model"
	"campus-bot-go/pkg/hash"
	"campus-bot-go/pkg/token"
)

func newAuthServiceForTest(t *testing.T) (AuthService, *fakeUserRepo, *fakeModRepo, *token.JWTManager) {
	t.Helper()
	userRepo := newFakeUserRepo()
	modRepo := newFakeModRepo()
	jwtManager := token.NewJWTManager("test-secret", 1)
	svc := NewAuthService(userRepo, modRepo, jwtManager, nil)
	return svc, userRepo, modRepo, jwtManager
}

func TestRegister_Success(t *testing.T) {
	svc, userRepo, _, _ := newAuthServiceForTest(t)

	user, err := svc.Register("Alice", "S1", "student123")
	require.NoError(t, err)
	assert.Equal(t, "S1", user.CollegeID)
	assert.Equal(t, "Alice", user.Name)
	// 密码以 bcrypt 哈希存储，绝不存明文
	assert.NotEqual(t, "student123", user.PasswordHash)
	assert.True(t, hash.CheckPasswordHash("student123", user.PasswordHash))
	assert.Len(t, userRepo.users, 1)
}

func TestRegister_DuplicateCollegeID(t *testing.T) {
	svc, userRepo, _, _ := newAuthServiceForTest(t)

	_, err := svc.Register("Alice", "S1", "student123")
	require.NoError(t, err)

	// 重复学号被拒绝，且不会写入第二行
	_, err = svc.Register("Mallory", "S1", "other-password")
	assert.ErrorIs(t, err, ErrDuplicateCollegeID)
	assert.Len(t, userRepo.users, 1)
}

// raceUserRepo 模拟并发注册：预检查未命中，但插入时唯一索引已被占用。
type raceUserRepo struct {
	*fakeUserRepo
}

func (f *raceUserRepo) FindByCollegeID(collegeID string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestRegister_DuplicateWinsRace(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users["S1"] = &model.User{ID: 1, CollegeID: "S1", Name: "Alice"}
	svc := NewAuthService(&raceUserRepo{userRepo}, newFakeModRepo(), token.NewJWTManager("test-secret", 1), nil)

	// 唯一索引兜底：Create 返回 gorm.ErrDuplicatedKey 时同样报重复学号
	_, err := svc.Register("Mallory", "S1", "other-password")
	assert.ErrorIs(t, err, ErrDuplicateCollegeID)
	assert.Len(t, userRepo.users, 1)
}

func TestLoginStudent_Success(t *testing.T) {
	svc, _, _, jwtManager := newAuthServiceForTest(t)

	_, err := svc.Register("Alice", "S1", "student123")
	require.NoError(t, err)

	sessionToken, user, err := svc.LoginStudent("S1", "student123")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	claims, err := jwtManager.Verify(sessionToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, model.KindStudent, claims.Kind)
}

func TestLoginStudent_GenericFailure(t *testing.T) {
	svc, _, _, _ := newAuthServiceForTest(t)

	_, err := svc.Register("Alice", "S1", "student123")
	require.NoError(t, err)

	// 未知学号与密码错误返回完全相同的错误，不泄露是哪一项不匹配
	_, _, errUnknown := svc.LoginStudent("NOPE", "student123")
	_, _, errWrongPassword := svc.LoginStudent("S1", "wrong")
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPassword)
}

func TestLoginModerator_Success(t *testing.T) {
	svc, _, modRepo, jwtManager := newAuthServiceForTest(t)

	hashed, err := hash.HashPassword("mod-secret")
	require.NoError(t, err)
	require.NoError(t, modRepo.Create(&model.Moderator{ModID: "M1", Name: "Mod One", PasswordHash: hashed}))

	sessionToken, mod, err := svc.LoginModerator("M1", "mod-secret")
	require.NoError(t, err)
	assert.Equal(t, "Mod One", mod.Name)

	claims, err := jwtManager.Verify(sessionToken)
	require.NoError(t, err)
	assert.Equal(t, model.KindModerator, claims.Kind)
}

func TestLoginModerator_GenericFailure(t *testing.T) {
	svc, _, modRepo, _ := newAuthServiceForTest(t)

	hashed, err := hash.HashPassword("mod-secret")
	require.NoError(t, err)
	require.NoError(t, modRepo.Create(&model.Moderator{ModID: "M1", Name: "Mod One", PasswordHash: hashed}))

	_, _, errUnknown := svc.LoginModerator("M2", "mod-secret")
	_, _, errWrongPassword := svc.LoginModerator("M1", "wrong")
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
}
