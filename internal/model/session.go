package model

// 会话身份的种类。
const (
	KindStudent   = "student"
	KindModerator = "moderator"
)

// SessionIdentity 是随请求显式传递的已认证身份，
// 由会话中间件解析后注入请求上下文，处理器从上下文读取，
// 不依赖任何全局会话状态。
type SessionIdentity struct {
	ID   uint
	Name string
	Kind string
}

// IsStudent 判断该身份是否为学生。
func (s *SessionIdentity) IsStudent() bool {
	return s.Kind == KindStudent
}

// IsModerator 判断该身份是否为管理员。
func (s *SessionIdentity) IsModerator() bool {
	return s.Kind == KindModerator
}
