package api

import (
	"strconv"

	"github.com/fsdevblog/groupsplit/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID
// устанавливается в middlewares.AuthRequired. Если значения нет или тип
// неверный - вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDRaw, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDRaw.(int64)
	if !ok {
		return 0
	}
	return userID
}

// paramInt64 парсит числовой path-параметр. Второе значение false - параметр
// отсутствует или не число.
func paramInt64(c *gin.Context, name string) (int64, bool) {
	val, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// queryInt64 парсит числовой query-параметр.
func queryInt64(c *gin.Context, name string) (int64, bool) {
	val, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}
