package handler

import (
	"net/http"

	"staff-planner/internal/middleware"

	"github.com/gin-gonic/gin"
)

type adjustBalanceRequest struct {
	AdjustmentType string  `json:"adjustment_type" binding:"required"`
	Amount         float64 `json:"amount"`
	Reason         string  `json:"reason"`
}

// ListEmployees возвращает сотрудников, опционально по магазину
func (h *Handler) ListEmployees(c *gin.Context) {
	storeID, ok := queryStoreID(c)
	if !ok {
		return
	}

	employees, err := h.employees.List(storeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// Me возвращает карточку действующего пользователя с остатком отпуска
// и счетчиками заявок
func (h *Handler) Me(c *gin.Context) {
	summary, err := h.employees.Summary(middleware.ActingEmployeeID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// TeamCalendar возвращает календарь магазина действующего сотрудника
// за месяц (?year=&month=)
func (h *Handler) TeamCalendar(c *gin.Context) {
	year, month, ok := queryYearMonth(c)
	if !ok {
		return
	}

	team, err := h.calendar.TeamCalendar(middleware.ActingEmployeeID(c), year, month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// AdjustBalance применяет ручную корректировку баланса сотрудника
func (h *Handler) AdjustBalance(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req adjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}

	employee, err := h.leaves.Adjust(employeeID, req.AdjustmentType, req.Amount,
		req.Reason, middleware.ActingEmployeeID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// ListAdjustments возвращает историю корректировок сотрудника
func (h *Handler) ListAdjustments(c *gin.Context) {
	employeeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	adjustments, err := h.leaves.Adjustments(employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, adjustments)
}

// ListStores возвращает все магазины
func (h *Handler) ListStores(c *gin.Context) {
	stores, err := h.employees.Stores()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stores)
}
