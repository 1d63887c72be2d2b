package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/internal/service"
	"github.com/fsdevblog/cit-vouchers/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 500
)

// getActorFromContext текущий юзер, записанный middlewares.AuthRequired.
func getActorFromContext(c *gin.Context) service.Actor {
	id, role := middlewares.CurrentUser(c)
	return service.Actor{ID: id, Role: role}
}

// uuidParam разбирает uuid из параметра пути. При ошибке прерывает запрос с 404, так как записи с таким id
// заведомо нет.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.Status(http.StatusNotFound)
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.Abort()
		return uuid.Nil, false
	}
	return id, true
}

type PageParams struct {
	Skip  uint `form:"skip"`
	Limit uint `binding:"omitempty,max=500" form:"limit"`
}

func (p PageParams) toPage() repoargs.Page {
	limit := p.Limit
	if limit == 0 {
		limit = defaultPageLimit
	}
	return repoargs.Page{Skip: p.Skip, Limit: min(limit, maxPageLimit)}
}

func errorIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
