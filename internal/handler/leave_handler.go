package handler

import (
	"net/http"
	"strconv"

	"staff-planner/internal/middleware"
	"staff-planner/internal/models"
	"staff-planner/internal/repository"
	"staff-planner/internal/service"

	"github.com/gin-gonic/gin"
)

type submitLeaveRequest struct {
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Type          string  `json:"type" binding:"required"`
	Reason        string  `json:"reason"`
	RecoveryHours float64 `json:"recovery_hours"`
}

type reviewLeaveRequest struct {
	Comment string `json:"comment"`
}

// ListLeaves возвращает заявки: администратор видит все (с фильтрами),
// сотрудник — только свои
func (h *Handler) ListLeaves(c *gin.Context) {
	filter := repository.LeaveListFilter{
		Status: c.Query("status"),
	}

	if middleware.IsAdmin(c) {
		storeID, ok := queryStoreID(c)
		if !ok {
			return
		}
		filter.StoreID = storeID

		if raw := c.Query("employee"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор сотрудника"})
				return
			}
			employeeID := uint(id)
			filter.EmployeeID = &employeeID
		}
	} else {
		actorID := middleware.ActingEmployeeID(c)
		filter.EmployeeID = &actorID
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное значение limit"})
			return
		}
		filter.Limit = limit
	}

	requests, err := h.leaves.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// SubmitLeave создает заявку от имени действующего сотрудника
func (h *Handler) SubmitLeave(c *gin.Context) {
	var req submitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}

	input := service.SubmitLeaveInput{
		Type:          req.Type,
		Reason:        req.Reason,
		RecoveryHours: req.RecoveryHours,
	}

	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата начала"})
			return
		}
		input.StartDate = start
	}
	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата окончания"})
			return
		}
		input.EndDate = end
	}

	request, err := h.leaves.Submit(middleware.ActingEmployeeID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ApproveLeave утверждает заявку с пересчетом дней по текущему графику
func (h *Handler) ApproveLeave(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}

	request, err := h.leaves.Approve(requestID, middleware.ActingEmployeeID(c), req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// RejectLeave отклоняет заявку; комментарий обязателен
func (h *Handler) RejectLeave(c *gin.Context) {
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}

	if err := h.leaves.Reject(requestID, middleware.ActingEmployeeID(c), req.Comment); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": models.LeaveStatusRejected})
}

// CalculateDays считает рабочие и календарные дни диапазона без создания
// заявки; сотрудник считает по своему графику, администратор — по любому
func (h *Handler) CalculateDays(c *gin.Context) {
	start, err := parseDate(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата начала"})
		return
	}
	end, err := parseDate(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата окончания"})
		return
	}

	employeeID := middleware.ActingEmployeeID(c)
	if middleware.IsAdmin(c) {
		if raw := c.Query("employee"); raw != "" {
			id, parseErr := strconv.ParseUint(raw, 10, 32)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор сотрудника"})
				return
			}
			employeeID = uint(id)
		}
	}

	workingDays, totalDays, remaining, err := h.leaves.CheckEligibility(employeeID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"working_days":    workingDays,
		"total_days":      totalDays,
		"remaining_leave": remaining,
	})
}
