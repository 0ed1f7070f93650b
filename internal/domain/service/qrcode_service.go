package service

// QRCodeService defines the interface for vendor storefront QR codes
type QRCodeService interface {
	// GenerateStorefrontQR renders a PNG QR code pointing at the vendor's storefront
	GenerateStorefrontQR(vendorID string) ([]byte, error)

	// StorefrontURL returns the URL encoded in the storefront QR code
	StorefrontURL(vendorID string) string
}
