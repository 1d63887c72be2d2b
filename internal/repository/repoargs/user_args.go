package repoargs

import "github.com/fsdevblog/cit-vouchers/internal/domain"

type CreateUser struct {
	Name     string
	Email    string
	Password string
	Role     domain.RoleType
}
