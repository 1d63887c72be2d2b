package pgrepo

import (
	"fmt"
	"math"

	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
)

const defaultPageLimit = 100

// safeConvertUintToInt32 безопасно конвертирует uint в int32. В случае выхода значения за рамки диапазона
// выбрасывает ошибку.
func safeConvertUintToInt32(val uint) (int32, error) {
	if val > uint(math.MaxInt32) {
		return 0, fmt.Errorf("value is out of range: %d", val)
	}
	return int32(val), nil
}

// pageArgs возвращает limit и offset для запроса. Нулевой лимит заменяется на defaultPageLimit.
func pageArgs(page repoargs.Page) (int32, int32, error) {
	limitVal := page.Limit
	if limitVal == 0 {
		limitVal = defaultPageLimit
	}
	limit, limitErr := safeConvertUintToInt32(limitVal)
	if limitErr != nil {
		return 0, 0, limitErr
	}
	offset, offsetErr := safeConvertUintToInt32(page.Skip)
	if offsetErr != nil {
		return 0, 0, offsetErr
	}
	return limit, offset, nil
}
