package service

import (
	"fmt"
	"strconv"
	"strings"

	"campus-bot-go/internal/model"
)

// FormatCampusContext 将四张参考表的快照渲染为一个文本块。
// 段落顺序固定（课程表、餐厅、宿舍、健身房），每行按固定字段插值。
// 不做过滤、截断或转义：内容由管理员维护，不视为不可信输入。
// 对同一快照的输出逐字节一致。
func FormatCampusContext(snap *model.CampusSnapshot) string {
	var b strings.Builder
	b.WriteString("College Information:\n\n")

	b.WriteString("CLASS SCHEDULE:\n")
	for _, item := range snap.Schedule {
		fmt.Fprintf(&b, "- %s: %s at %s in %s\n", item.Course, item.Day, item.Time, item.Room)
	}

	b.WriteString("\nRESTAURANTS NEARBY:\n")
	for _, item := range snap.Restaurants {
		fmt.Fprintf(&b, "- %s (%s): %s, Rating: %s★\n", item.Name, item.Cuisine, item.Address, formatRating(item.Rating))
	}

	b.WriteString("\nHOSTELS:\n")
	for _, item := range snap.Hostels {
		fmt.Fprintf(&b, "- %s: %s, Capacity: %d\n", item.Name, item.Address, item.Capacity)
	}

	b.WriteString("\nGYMS:\n")
	for _, item := range snap.Gyms {
		fmt.Fprintf(&b, "- %s: %s, Features: %s\n", item.Name, item.Address, item.Features)
	}

	return b.String()
}

// formatRating 以最短十进制形式渲染评分，整数值保留一位小数
// （4.0 渲染为 "4.0" 而不是 "4"）。
func formatRating(rating float64) string {
	s := strconv.FormatFloat(rating, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// BuildPrompt 将上下文文本与学生问题组装成最终的指令 prompt。
func BuildPrompt(contextText, question string) string {
	return fmt.Sprintf(`You are a friendly and helpful college assistant chatbot.
Your role is to help students with information about their schedule, nearby restaurants,
hostels, gyms, and general college queries. Always greet users warmly and provide
detailed, friendly responses. Use emojis occasionally to make conversations engaging.

Here is the current college information you have access to:
%s

When students ask about schedules, restaurants, hostels, or gyms, use this information
to provide accurate answers. If you don't have specific information, politely let them know
and suggest they contact the college office.

Student Question: %s

Please provide a helpful response:`, contextText, question)
}
