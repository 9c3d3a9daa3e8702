package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-bot-go/internal/middleware"
	"campus-bot-go/internal/model"
	"campus-bot-go/internal/service"
	"campus-bot-go/pkg/log"
)

// ChatHandler 负责处理学生的问答请求。
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler 创建一个新的 ChatHandler 实例。
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatMessageResponse 是问答记录的展示结构。
type ChatMessageResponse struct {
	Question  string          `json:"question"`
	Answer    string          `json:"answer"`
	CreatedAt model.LocalTime `json:"createdAt"`
}

// History 返回当前学生的全部问答记录，按创建时间升序。
func (h *ChatHandler) History(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取会话身份"})
		return
	}

	logs, err := h.chatService.History(identity.ID)
	if err != nil {
		log.Error("History: failed to load chat logs", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "Failed to load chat history",
		})
		return
	}

	messages := make([]ChatMessageResponse, 0, len(logs))
	for _, entry := range logs {
		messages = append(messages, ChatMessageResponse{
			Question:  entry.Question,
			Answer:    entry.Answer,
			CreatedAt: model.LocalTime(entry.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data": gin.H{
			"userName": identity.Name,
			"messages": messages,
		},
	})
}

// AskRequest 定义了提问表单的字段。
type AskRequest struct {
	Question string `form:"question" binding:"required"`
}

// Ask 处理一轮提问：同步调用推理服务并返回新写入的问答记录。
func (h *ChatHandler) Ask(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取会话身份"})
		return
	}

	var req AskRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "question is required",
		})
		return
	}

	entry, err := h.chatService.Ask(c.Request.Context(), identity.ID, req.Question)
	if err != nil {
		log.Error("Ask: chat turn failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "Failed to process question",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data": ChatMessageResponse{
			Question:  entry.Question,
			Answer:    entry.Answer,
			CreatedAt: model.LocalTime(entry.CreatedAt),
		},
	})
}
