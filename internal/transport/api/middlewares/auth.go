package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/service/tokens"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentUserIDKey   = "currentUserID"
	CurrentUserRoleKey = "currentUserRole"
)

// checkAuthorization извлекает токен из заголовка Authorization и проверяет его. Если токен не передан, вернется
// ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.UserClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	tokenStr, found := strings.CutPrefix(tokenHeader, "Bearer ")
	if !found || tokenStr == "" {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateUserJWT(tokenStr, jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return claims, nil
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст id (CurrentUserIDKey) и роль
// (CurrentUserRoleKey) юзера.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "code": CodeUnauthorized})
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}
		c.Set(CurrentUserIDKey, claims.ID)
		c.Set(CurrentUserRoleKey, claims.Role)
		c.Next()
	}
}

// AdminRequired пропускает только админов. Ставится после AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(CurrentUserRoleKey)
		if r, ok := role.(domain.RoleType); !ok || r != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required", "code": CodeForbidden})
			return
		}
		c.Next()
	}
}

// CurrentUser возвращает id и роль юзера, записанные AuthRequired. Если значений нет, вернется uuid.Nil.
func CurrentUser(c *gin.Context) (uuid.UUID, domain.RoleType) {
	var (
		id   uuid.UUID
		role domain.RoleType
	)
	if v, exist := c.Get(CurrentUserIDKey); exist {
		id, _ = v.(uuid.UUID)
	}
	if v, exist := c.Get(CurrentUserRoleKey); exist {
		role, _ = v.(domain.RoleType)
	}
	return id, role
}
