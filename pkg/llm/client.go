// Package llm 提供访问本地文本生成服务（Ollama）的客户端。
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"campus-bot-go/internal/config"
)

// fallbackText 在推理服务返回 200 但响应体中缺少文本字段时使用。
const fallbackText = "Sorry, I could not generate a response."

// ErrorKind 对推理调用的失败模式进行分类。
type ErrorKind int

const (
	// KindConnection 表示无法连接到推理服务。
	KindConnection ErrorKind = iota
	// KindStatus 表示推理服务返回了非 200 状态码。
	KindStatus
	// KindInternal 表示其他失败（超时、编解码错误等）。
	KindInternal
)

// Error 是推理调用的分类错误。调用方通过 errors.As 获取类别，
// 由展示层决定如何呈现，组件边界不做字符串化。
type Error struct {
	Kind   ErrorKind
	Status int // 仅在 Kind == KindStatus 时有效
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindConnection:
		return fmt.Sprintf("llm: connection failed: %v", e.Err)
	case KindStatus:
		return fmt.Sprintf("llm: non-200 status %d", e.Status)
	default:
		return fmt.Sprintf("llm: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Client 定义了推理客户端的接口。
type Client interface {
	// Generate 以给定的完整 prompt 发起一次同步、非流式的生成调用。
	// 成功时返回生成文本；失败时返回 *Error。
	Generate(ctx context.Context, prompt string) (string, error)
}

type ollamaClient struct {
	cfg    config.OllamaConfig
	client *http.Client
}

// NewClient 创建一个新的推理客户端。
func NewClient(cfg config.OllamaConfig) Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if cfg.TimeoutSeconds <= 0 {
		timeout = 120 * time.Second
	}
	return &ollamaClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Stream      bool    `json:"stream"`
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate 调用 Ollama 的 /api/generate 接口。
func (c *ollamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Model:       c.cfg.Model,
		Prompt:      prompt,
		Stream:      false,
		Temperature: c.cfg.Temperature,
	}

	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", &Error{Kind: KindInternal, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/api/generate", bytes.NewReader(reqBytes))
	if err != nil {
		return "", &Error{Kind: KindInternal, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// 区分连接失败与超时等其他传输错误
		var uerr *url.Error
		if errors.As(err, &uerr) && !uerr.Timeout() {
			return "", &Error{Kind: KindConnection, Err: err}
		}
		return "", &Error{Kind: KindInternal, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &Error{Kind: KindStatus, Status: resp.StatusCode}
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &Error{Kind: KindInternal, Err: err}
	}

	if result.Response == "" {
		// 响应体可解析但缺少文本字段：按约定回退到默认文案，不算失败
		return fallbackText, nil
	}
	return result.Response, nil
}
