package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"marketplace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "m"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_StorefrontURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.example.com/store/")

	assert.Equal(t, "https://shop.example.com/store/vendor-1", service.StorefrontURL("vendor-1"))
	assert.Equal(t, "https://shop.example.com/store/a%2Fb", service.StorefrontURL("a/b"))
}

func TestQRCodeService_GenerateStorefrontQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.example.com/store")

	qrBytes, err := service.GenerateStorefrontQR("vendor-1")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateStorefrontQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "")

			qrBytes, err := service.GenerateStorefrontQR("vendor-1")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_GenerateStorefrontQR_EmptyVendor(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateStorefrontQR("  ")
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H", BaseURL: "https://m.example.com/s"}}

	service := NewFromConfig(cfg)
	assert.Equal(t, "https://m.example.com/s/v1", service.StorefrontURL("v1"))

	fallback := NewFromConfig(&config.Config{})
	assert.Equal(t, "http://localhost:3000/store/v1", fallback.StorefrontURL("v1"))
}
