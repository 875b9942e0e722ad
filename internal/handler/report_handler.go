package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AttendanceReport возвращает месячную статистику присутствия по
// сотрудникам (?year=&month=&store=)
func (h *Handler) AttendanceReport(c *gin.Context) {
	year, month, ok := queryYearMonth(c)
	if !ok {
		return
	}

	storeID, ok := queryStoreID(c)
	if !ok {
		return
	}

	stats, err := h.reports.MonthlyAttendance(year, month, storeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// AdminStats возвращает сводку на сегодня для панели администратора
func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.reports.Dashboard(time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// StoresOverview возвращает состояние каждого магазина на сегодня
func (h *Handler) StoresOverview(c *gin.Context) {
	overviews, err := h.reports.StoresOverview(time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overviews)
}
