package handler

import (
	"net/http"
	"strconv"

	"staff-planner/internal/models"

	"github.com/gin-gonic/gin"
)

type scheduleDayRequest struct {
	DayOfWeek    int     `json:"day_of_week"`
	IsWorkingDay bool    `json:"is_working_day"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
}

type saveScheduleRequest struct {
	Days []scheduleDayRequest `json:"days" binding:"required"`
}

// MonthSchedule возвращает сетку месяца магазина: по каждому дню — кто
// работает (?store=&year=&month=)
func (h *Handler) MonthSchedule(c *gin.Context) {
	storeID, err := strconv.ParseUint(c.Query("store"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор магазина"})
		return
	}

	year, month, ok := queryYearMonth(c)
	if !ok {
		return
	}

	grid, err := h.calendar.MonthSchedule(uint(storeID), year, month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, grid)
}

// GetEmployeeSchedule возвращает недельный график сотрудника; при его
// отсутствии — график по умолчанию
func (h *Handler) GetEmployeeSchedule(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entries, err := h.schedules.GetSchedule(employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// SaveEmployeeSchedule полностью заменяет график сотрудника
func (h *Handler) SaveEmployeeSchedule(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req saveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}

	entries := make([]models.WorkScheduleEntry, 0, len(req.Days))
	for _, day := range req.Days {
		entries = append(entries, models.WorkScheduleEntry{
			EmployeeID:   employeeID,
			DayOfWeek:    day.DayOfWeek,
			IsWorkingDay: day.IsWorkingDay,
			StartTime:    day.StartTime,
			EndTime:      day.EndTime,
		})
	}

	if err := h.schedules.SaveSchedule(employeeID, entries); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "График сохранен"})
}

// queryYearMonth читает параметры ?year= и ?month=
func queryYearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный год"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный месяц"})
		return 0, 0, false
	}
	return year, month, true
}
