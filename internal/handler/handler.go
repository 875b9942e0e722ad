package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"staff-planner/internal/middleware"
	"staff-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler объединяет обработчики HTTP и зависимости на сервисы
type Handler struct {
	schedules  *service.ScheduleService
	leaves     *service.LeaveService
	attendance *service.AttendanceService
	reports    *service.ReportService
	calendar   *service.CalendarService
	employees  *service.EmployeeService
}

func NewHandler(
	schedules *service.ScheduleService,
	leaves *service.LeaveService,
	attendance *service.AttendanceService,
	reports *service.ReportService,
	calendar *service.CalendarService,
	employees *service.EmployeeService,
) *Handler {
	return &Handler{
		schedules:  schedules,
		leaves:     leaves,
		attendance: attendance,
		reports:    reports,
		calendar:   calendar,
		employees:  employees,
	}
}

// RegisterRoutes настраивает маршруты API
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.Use(middleware.Identity())
	{
		leaves := api.Group("/leaves")
		{
			leaves.GET("", h.ListLeaves)
			leaves.GET("/calculate-days", h.CalculateDays)

			leaves.POST("", middleware.EmployeeOnly(), h.SubmitLeave)

			leavesMgmt := leaves.Group("")
			leavesMgmt.Use(middleware.AdminOnly())
			{
				leavesMgmt.POST("/:id/approve", h.ApproveLeave)
				leavesMgmt.POST("/:id/reject", h.RejectLeave)
			}
		}

		attendance := api.Group("/attendance")
		attendance.Use(middleware.AdminOnly())
		{
			attendance.POST("", h.MarkAttendance)
			attendance.GET("/week", h.WeekAttendance)
		}

		api.GET("/schedule/month", h.MonthSchedule)

		employees := api.Group("/employees")
		{
			employees.GET("/me", h.Me)
			employees.GET("/team-calendar", middleware.EmployeeOnly(), h.TeamCalendar)
			employees.GET("/:id/schedule", h.GetEmployeeSchedule)

			employeesMgmt := employees.Group("")
			employeesMgmt.Use(middleware.AdminOnly())
			{
				employeesMgmt.GET("", h.ListEmployees)
				employeesMgmt.POST("/:id/schedule", h.SaveEmployeeSchedule)
				employeesMgmt.POST("/:id/adjust", h.AdjustBalance)
				employeesMgmt.GET("/:id/adjustments", h.ListAdjustments)
			}
		}

		api.GET("/stores", h.ListStores)

		api.GET("/reports/attendance", middleware.AdminOnly(), h.AttendanceReport)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminOnly())
		{
			admin.GET("/stats", h.AdminStats)
			admin.GET("/stores-overview", h.StoresOverview)
		}
	}
}

// respondError переводит ошибку сервиса в HTTP-ответ. Текст ошибок
// бизнес-правил отдается пользователю как есть, инфраструктурные сбои
// скрываются за общим сообщением.
func respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	var balanceErr *service.InsufficientBalanceError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &balanceErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": balanceErr.Error()})
	case errors.Is(err, service.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyReviewed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Сервис временно недоступен"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
	}
}

// parseDate разбирает дату в формате ISO (YYYY-MM-DD)
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// parseIDParam разбирает числовой параметр пути
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор"})
		return 0, false
	}
	return uint(id), true
}

// queryStoreID читает опциональный фильтр по магазину (?store=);
// значение "all" равнозначно отсутствию фильтра
func queryStoreID(c *gin.Context) (*uint, bool) {
	raw := c.Query("store")
	if raw == "" || raw == "all" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор магазина"})
		return nil, false
	}
	storeID := uint(id)
	return &storeID, true
}
