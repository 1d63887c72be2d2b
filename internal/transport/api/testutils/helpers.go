package testutils

import "strings"

// GenerateOverBytesUnderRunes генерирует строку, длина которой в рунах будет всегда меньше длины в байтах.
// Пароль из таких символов проходит проверку длины в рунах, но не влезает в лимит bcrypt в 72 байта.
func GenerateOverBytesUnderRunes(count int) string {
	symbol := "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, count)
}
