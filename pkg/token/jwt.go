// Package token 提供了用于生成和验证会话令牌 (JWT) 的功能。
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager 负责管理会话令牌的生成和验证。
type JWTManager struct {
	secretKey  []byte        // secretKey 用于签名和验证 token 的密钥
	sessionDur time.Duration // sessionDur 定义了会话令牌的有效期
}

// SessionClaims 定义了会话令牌中携带的已认证身份。
// Kind 为 "student" 或 "moderator"。
type SessionClaims struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

// NewJWTManager 创建一个新的 JWTManager 实例。
// secret: 用于签名的密钥字符串。
// sessionExpireHours: 会话令牌的过期时间（小时）。
func NewJWTManager(secret string, sessionExpireHours int) *JWTManager {
	return &JWTManager{
		secretKey:  []byte(secret),
		sessionDur: time.Hour * time.Duration(sessionExpireHours),
	}
}

// Generate 为给定身份签发一个新的会话令牌。
func (m *JWTManager) Generate(id uint, name, kind string) (string, error) {
	claims := SessionClaims{
		ID:   id,
		Name: name,
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.sessionDur)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Verify 验证给定的令牌字符串。
// 如果令牌有效，返回其中的 SessionClaims；
// 签名不匹配或已过期时返回错误。
func (m *JWTManager) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 检查签名方法是否为 HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
