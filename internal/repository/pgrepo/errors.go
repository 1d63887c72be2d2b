package pgrepo

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок postgres, которые имеют смысл для бизнес слоя.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

var pgCodeErrors = map[string]error{
	uniqueViolationCode: domain.ErrDuplicateKey,
	// ссылка на несуществующую запись (заказ на удаленный ваучер и т.п.).
	foreignKeyViolationCode: domain.ErrRecordNotFound,
	checkViolationCode:      domain.ErrConstraintViolation,
}

// convertErr приводит ошибку драйвера к доменной, добавляя контекст из format.
//   - pgx.ErrNoRows -> domain.ErrRecordNotFound;
//   - ошибки postgres с кодом из pgCodeErrors -> соответствующая доменная ошибка;
//   - все остальное -> domain.ErrUnknown с исходным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	errType := domain.ErrUnknown
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
			errType = mapped
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
