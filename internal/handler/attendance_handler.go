package handler

import (
	"net/http"

	"staff-planner/internal/middleware"

	"github.com/gin-gonic/gin"
)

type markAttendanceRequest struct {
	EmployeeID    uint   `json:"employee_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Status        string `json:"status" binding:"required"`
	Justification string `json:"justification"`
}

// MarkAttendance ставит отметку присутствия за день; повторная отметка
// перезаписывает предыдущую
func (h *Handler) MarkAttendance(c *gin.Context) {
	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата"})
		return
	}

	record, err := h.attendance.Mark(req.EmployeeID, date, req.Status,
		req.Justification, middleware.ActingEmployeeID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// WeekAttendance возвращает недельную сетку посещаемости начиная с
// понедельника (?monday=YYYY-MM-DD)
func (h *Handler) WeekAttendance(c *gin.Context) {
	monday, err := parseDate(c.Query("monday"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата начала недели"})
		return
	}

	storeID, ok := queryStoreID(c)
	if !ok {
		return
	}

	rows, err := h.calendar.WeekAttendance(monday, storeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
