package service

import (
	"context"
	"errors"
	"fmt"

	"campus-bot-go/internal/model"
	"campus-bot-go/internal/repository"
	"campus-bot-go/pkg/llm"
	"campus-bot-go/pkg/log"
)

// ChatService 定义了聊天操作的接口。
type ChatService interface {
	// Ask 执行一轮完整的问答：读取参考数据、构建 prompt、调用推理服务、
	// 追加问答日志，并返回新写入的记录。
	Ask(ctx context.Context, userID uint, question string) (*model.ChatLog, error)
	// History 按创建时间升序返回该学生的全部问答记录。
	History(userID uint) ([]model.ChatLog, error)
}

type chatService struct {
	refRepo     repository.ReferenceRepository
	chatLogRepo repository.ChatLogRepository
	llmClient   llm.Client
}

// NewChatService 创建一个新的 ChatService 实例。
func NewChatService(refRepo repository.ReferenceRepository, chatLogRepo repository.ChatLogRepository, llmClient llm.Client) ChatService {
	return &chatService{
		refRepo:     refRepo,
		chatLogRepo: chatLogRepo,
		llmClient:   llmClient,
	}
}

// Ask 执行一轮问答。推理失败不会中断本轮：失败被渲染为一条
// 用户可见的伪回答并照常入库（决策见 DESIGN.md），调用方拿到的
// 记录与成功路径一致。
func (s *chatService) Ask(ctx context.Context, userID uint, question string) (*model.ChatLog, error) {
	// 1. 读取四张参考表的当前快照
	snap, err := s.refRepo.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load campus snapshot: %w", err)
	}

	// 2. 格式化上下文并组装 prompt
	contextText := FormatCampusContext(snap)
	prompt := BuildPrompt(contextText, question)

	// 3. 同步调用本地推理服务
	answer, err := s.llmClient.Generate(ctx, prompt)
	if err != nil {
		log.Warnf("inference call failed for user %d: %v", userID, err)
		answer = renderInferenceFailure(err)
	}

	// 4. 追加问答日志
	entry := &model.ChatLog{
		UserID:   userID,
		Question: question,
		Answer:   answer,
	}
	if err := s.chatLogRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to save chat log: %w", err)
	}

	return entry, nil
}

// History 按创建时间升序返回该学生的全部问答记录。
func (s *chatService) History(userID uint) ([]model.ChatLog, error) {
	return s.chatLogRepo.FindByUserAsc(userID)
}

// renderInferenceFailure 将推理客户端的分类错误转换为展示给学生的文案。
// 分类与文案的映射只存在于这一处展示层。
func renderInferenceFailure(err error) string {
	var lerr *llm.Error
	if errors.As(err, &lerr) {
		switch lerr.Kind {
		case llm.KindConnection:
			return "Error: Cannot connect to Ollama. Make sure Ollama is running (ollama serve)"
		case llm.KindStatus:
			return fmt.Sprintf("Error: Ollama API returned status %d", lerr.Status)
		}
	}
	return fmt.Sprintf("Error: %v", err)
}
