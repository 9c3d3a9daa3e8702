package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"campus-bot-go/internal/middleware"
	"campus-bot-go/internal/model"
	"campus-bot-go/internal/service"
	"campus-bot-go/pkg/log"
)

// AdminHandler 负责处理管理面板的请求。
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler 创建一个新的 AdminHandler 实例。
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Dashboard 返回管理面板展示的四张参考表内容。
func (h *AdminHandler) Dashboard(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "无法获取会话身份"})
		return
	}

	data, err := h.adminService.Dashboard()
	if err != nil {
		log.Error("Dashboard: failed to load reference data", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "Failed to load dashboard data",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data": gin.H{
			"moderatorName": identity.Name,
			"schedule":      data.Schedule,
			"restaurants":   data.Restaurants,
			"hostels":       data.Hostels,
			"gyms":          data.Gyms,
		},
	})
}

// HandleAction 处理管理面板提交的 CRUD 动作。
// action 取值：add_schedule / add_restaurant / add_hostel / add_gym /
// delete_{table}，其中 {table} 必须命中固定的参考表集合。
func (h *AdminHandler) HandleAction(c *gin.Context) {
	action := c.PostForm("action")
	if action == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "action is required",
		})
		return
	}

	switch {
	case action == "add_schedule":
		err := h.adminService.AddSchedule(
			c.PostForm("course"), c.PostForm("day"),
			c.PostForm("time"), c.PostForm("room"),
		)
		h.respond(c, err, "Schedule added successfully")

	case action == "add_restaurant":
		rating, err := strconv.ParseFloat(c.PostForm("rating"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    http.StatusBadRequest,
				"message": "rating must be a number",
			})
			return
		}
		err = h.adminService.AddRestaurant(
			c.PostForm("name"), c.PostForm("cuisine"),
			c.PostForm("address"), rating,
		)
		h.respond(c, err, "Restaurant added successfully")

	case action == "add_hostel":
		capacity, err := strconv.Atoi(c.PostForm("capacity"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    http.StatusBadRequest,
				"message": "capacity must be an integer",
			})
			return
		}
		err = h.adminService.AddHostel(
			c.PostForm("name"), c.PostForm("address"), capacity,
		)
		h.respond(c, err, "Hostel added successfully")

	case action == "add_gym":
		err := h.adminService.AddGym(
			c.PostForm("name"), c.PostForm("address"), c.PostForm("features"),
		)
		h.respond(c, err, "Gym added successfully")

	case strings.HasPrefix(action, "delete_"):
		table := strings.TrimPrefix(action, "delete_")
		id, err := strconv.ParseUint(c.PostForm("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    http.StatusBadRequest,
				"message": "id is required",
			})
			return
		}
		kind, err := h.adminService.DeleteReference(table, uint(id))
		if errors.Is(err, model.ErrUnknownReference) {
			log.Warnf("HandleAction: rejected delete for unknown table '%s'", table)
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    http.StatusBadRequest,
				"message": "Unknown table",
			})
			return
		}
		h.respond(c, err, titleCase(string(kind))+" deleted successfully")

	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    http.StatusBadRequest,
			"message": "Unknown action",
		})
	}
}

// respond 统一返回 CRUD 动作的结果。
func (h *AdminHandler) respond(c *gin.Context, err error, successMessage string) {
	if err != nil {
		log.Error("HandleAction: admin action failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "Action failed",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": successMessage,
	})
}

// titleCase 将表名的首字母大写，用于提示文案。
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
