package utils

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRCodePNG encodes a URL as a 512px PNG, ready for S3 upload.
func GenerateQRCodePNG(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, 512)
	if err != nil {
		return nil, fmt.Errorf("qr code generation failed: %v", err)
	}
	return png, nil
}
