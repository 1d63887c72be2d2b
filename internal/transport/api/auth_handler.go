package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/service"
	"github.com/fsdevblog/cit-vouchers/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// bcrypt учитывает только первые 72 байта пароля.
type UserRegisterParams struct {
	Name     string `binding:"required,min=1,max=100"      json:"name"`
	Email    string `binding:"required,email,max=255"      json:"email"`
	Password string `binding:"required,min=6,max_bytes=72" json:"password"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// Register POST AuthGroup + RegisterRoute. Регистрирует клиента и сразу аутентифицирует его.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, jwtToken, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Name:     params.Name,
		Email:    params.Email,
		Password: params.Password,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			abort(c, http.StatusConflict, createErr, middlewares.ErrorMeta{
				Code:    middlewares.CodeConflict,
				Message: "user with this email already exists",
			})
			return
		}
		abortWithError(c, createErr)
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)
	c.JSON(http.StatusCreated, TokenResponse{
		AccessToken: jwtToken,
		TokenType:   "bearer",
		User:        newUserResponse(user),
	})
}

type UserLoginParams struct {
	Email    string `binding:"required,email"        json:"email"`
	Password string `binding:"required,max_bytes=72" json:"password"`
}

// Login POST AuthGroup + LoginRoute. Аутентификация по паре email/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		if isInvalidCredentials(err) {
			abort(c, http.StatusUnauthorized, err, middlewares.ErrorMeta{
				Code:    middlewares.CodeUnauthorized,
				Message: "invalid credentials",
			})
			return
		}
		abortWithError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        newUserResponse(user),
	})
}

// Me GET AuthGroup + MeRoute.
func (h *AuthHandler) Me(c *gin.Context) {
	actor := getActorFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.Me(ctx, actor.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

func isInvalidCredentials(err error) bool {
	return errorIsAny(err, domain.ErrRecordNotFound, domain.ErrPasswordMissMatch)
}
