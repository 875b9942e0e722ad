package middleware

import (
	"net/http"
	"strconv"

	"staff-planner/internal/models"

	"github.com/gin-gonic/gin"
)

// Аутентификация выполняется внешним шлюзом: сюда запрос приходит уже
// проверенным, с личностью действующего пользователя в заголовках
// X-Employee-ID и X-Employee-Role. Middleware доверяет этим данным и
// только раскладывает их в контекст.

const (
	HeaderEmployeeID   = "X-Employee-ID"
	HeaderEmployeeRole = "X-Employee-Role"

	ContextEmployeeID = "employeeID"
	ContextRole       = "role"
)

// Identity извлекает личность действующего пользователя из заголовков
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID := c.GetHeader(HeaderEmployeeID)
		if rawID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Не аутентифицирован"})
			c.Abort()
			return
		}

		employeeID, err := strconv.ParseUint(rawID, 10, 32)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Некорректный идентификатор пользователя"})
			c.Abort()
			return
		}

		role := c.GetHeader(HeaderEmployeeRole)
		if role != models.RoleAdmin && role != models.RoleEmployee {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Некорректная роль пользователя"})
			c.Abort()
			return
		}

		c.Set(ContextEmployeeID, uint(employeeID))
		c.Set(ContextRole, role)
		c.Next()
	}
}

// AdminOnly пропускает только администраторов
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists || role.(string) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Доступ запрещен. Требуются права администратора."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// EmployeeOnly пропускает только рядовых сотрудников
func EmployeeOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists || role.(string) != models.RoleEmployee {
			c.JSON(http.StatusForbidden, gin.H{"error": "Доступ запрещен."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActingEmployeeID возвращает идентификатор действующего пользователя
func ActingEmployeeID(c *gin.Context) uint {
	if id, exists := c.Get(ContextEmployeeID); exists {
		return id.(uint)
	}
	return 0
}

// IsAdmin проверяет роль действующего пользователя
func IsAdmin(c *gin.Context) bool {
	role, exists := c.Get(ContextRole)
	return exists && role.(string) == models.RoleAdmin
}
