package utils

import (
	qrcode "github.com/skip2/go-qrcode"
)

// EncodeQR renders text into a PNG. Pure; called once per table at
// creation time.
func EncodeQR(text string) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, 512)
}
