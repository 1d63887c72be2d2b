package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/internal/service/tokens"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	"github.com/google/uuid"
)

const JWTTokenExpire = 24 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	jwtTokenSecret []byte
	psswd          PasswordHasher
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, psswd PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		jwtTokenSecret: jwtTokenSecret,
		psswd:          psswd,
	}, nil
}

type RegisterUserArgs struct {
	Name     string
	Email    string
	Password string
}

// Register создает юзера с ролью client. После успешного создания генерирует jwt token. Возвращает 3 значения:
// созданный юзер, токен и ошибку. Если email уже занят, вернется domain.ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	user, createErr := s.create(ctx, repoargs.CreateUser{
		Name:     args.Name,
		Email:    args.Email,
		Password: args.Password,
		Role:     domain.RoleClient,
	})
	if createErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", createErr)
	}

	token, tokenErr := s.token(user)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", tokenErr)
	}
	return user, token, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login ищет юзера по email и сверяет пароль. Возвращает domain.ErrRecordNotFound, если юзер не найден,
// и domain.ErrPasswordMissMatch при неверном пароле.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, userErr := s.userRepo.FindUserByEmail(ctx, args.Email)
	if userErr != nil {
		return nil, "", fmt.Errorf("login: %w", userErr)
	}

	if !s.psswd.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := s.token(user)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login: %w", tokenErr)
	}
	return user, token, nil
}

// Me возвращает актуальные данные юзера, включая баланс часов.
func (s *UserService) Me(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

// List возвращает страницу юзеров для админки.
func (s *UserService) List(ctx context.Context, page repoargs.Page) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return users, nil
}

type EnsureAdminArgs struct {
	Name     string
	Email    string
	Password string
}

// EnsureAdmin создает админа, если юзера с таким email еще нет. Существующий юзер не меняется.
// Возвращает true, если админ был создан.
func (s *UserService) EnsureAdmin(ctx context.Context, args EnsureAdminArgs) (bool, error) {
	if args.Email == "" || args.Password == "" {
		return false, nil
	}
	_, findErr := s.userRepo.FindUserByEmail(ctx, args.Email)
	if findErr == nil {
		return false, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return false, fmt.Errorf("ensure admin: %w", findErr)
	}

	name := args.Name
	if name == "" {
		name = strings.Split(args.Email, "@")[0]
	}
	if _, err := s.create(ctx, repoargs.CreateUser{
		Name:     name,
		Email:    args.Email,
		Password: args.Password,
		Role:     domain.RoleAdmin,
	}); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return false, nil
		}
		return false, fmt.Errorf("ensure admin: %w", err)
	}
	return true, nil
}

// create хеширует пароль и создает юзера в транзакции.
func (s *UserService) create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, hashErr //nolint:wrapcheck
	}
	args.Password = password

	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		var userErr error
		user, userErr = userRepo.CreateUser(c, args)
		return userErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return user, nil
}

func (s *UserService) token(user *domain.User) (string, error) {
	return tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret) //nolint:wrapcheck
}
