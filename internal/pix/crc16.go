package pix

import "fmt"

const (
	crcInit       uint16 = 0xFFFF
	crcPolynomial uint16 = 0x1021
)

// CRC16 считает CRC16-CCITT (init 0xFFFF, poly 0x1021) и возвращает его в виде 4 hex символов в верхнем регистре.
func CRC16(payload []byte) string {
	crc := crcInit
	for _, b := range payload {
		crc ^= uint16(b) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crcPolynomial
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}
