// Package service 包含了应用的业务逻辑层。
package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"campus-bot-go/internal/model"
	"campus-bot-go/internal/repository"
	"campus-bot-go/pkg/hash"
	"campus-bot-go/pkg/token"
)

// ErrInvalidCredentials 表示登录失败。未知账号与密码错误
// 统一返回该错误，不向外泄露具体哪一项不匹配。
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrDuplicateCollegeID 表示注册时学号已被占用。
var ErrDuplicateCollegeID = errors.New("college id already exists")

// AuthService 接口定义了认证与会话相关的业务操作。
type AuthService interface {
	Register(name, collegeID, password string) (*model.User, error)
	LoginStudent(collegeID, password string) (sessionToken string, user *model.User, err error)
	LoginModerator(modID, password string) (sessionToken string, mod *model.Moderator, err error)
	Logout(sessionToken string) error
	// IsRevoked 检查令牌是否已因登出而失效。
	IsRevoked(ctx context.Context, sessionToken string) bool
}

// authService 是 AuthService 接口的实现。
type authService struct {
	userRepo   repository.UserRepository
	modRepo    repository.ModeratorRepository
	jwtManager *token.JWTManager
	rdb        *redis.Client
}

// NewAuthService 创建一个新的 AuthService 实例。
func NewAuthService(userRepo repository.UserRepository, modRepo repository.ModeratorRepository, jwtManager *token.JWTManager, rdb *redis.Client) AuthService {
	return &authService{
		userRepo:   userRepo,
		modRepo:    modRepo,
		jwtManager: jwtManager,
		rdb:        rdb,
	}
}

// Register 处理学生注册的业务逻辑。
func (s *authService) Register(name, collegeID, password string) (*model.User, error) {
	// 1. 检查学号是否已存在
	_, err := s.userRepo.FindByCollegeID(collegeID)
	if err == nil {
		return nil, ErrDuplicateCollegeID
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 2. 对密码进行哈希处理
	hashedPassword, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	// 3. 创建新学生
	newUser := &model.User{
		CollegeID:    collegeID,
		Name:         name,
		PasswordHash: hashedPassword,
	}
	if err := s.userRepo.Create(newUser); err != nil {
		// 并发注册时可能绕过上面的预检查，由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCollegeID
		}
		return nil, err
	}

	return newUser, nil
}

// LoginStudent 处理学生登录，成功时签发会话令牌。
func (s *authService) LoginStudent(collegeID, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByCollegeID(collegeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !hash.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	sessionToken, err := s.jwtManager.Generate(user.ID, user.Name, model.KindStudent)
	if err != nil {
		return "", nil, err
	}
	return sessionToken, user, nil
}

// LoginModerator 处理管理员登录，成功时签发会话令牌。
func (s *authService) LoginModerator(modID, password string) (string, *model.Moderator, error) {
	mod, err := s.modRepo.FindByModID(modID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !hash.CheckPasswordHash(password, mod.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	sessionToken, err := s.jwtManager.Generate(mod.ID, mod.Name, model.KindModerator)
	if err != nil {
		return "", nil, err
	}
	return sessionToken, mod, nil
}

// Logout 将会话令牌加入 Redis 黑名单，剩余有效期作为过期时间。
// 对无效令牌静默成功：登出无论如何都会清掉客户端侧的会话。
func (s *authService) Logout(sessionToken string) error {
	claims, err := s.jwtManager.Verify(sessionToken)
	if err != nil {
		return nil
	}
	if s.rdb == nil {
		return nil
	}
	expiration := time.Until(claims.ExpiresAt.Time)
	if expiration <= 0 {
		return nil
	}
	return s.rdb.Set(context.Background(), "session:blacklist:"+sessionToken, "true", expiration).Err()
}

// IsRevoked 检查令牌是否在黑名单中。
func (s *authService) IsRevoked(ctx context.Context, sessionToken string) bool {
	if s.rdb == nil {
		return false
	}
	err := s.rdb.Get(ctx, "session:blacklist:"+sessionToken).Err()
	return err == nil
}
