package service

// QRCodeService renders QR codes pointing at public storefront pages.
type QRCodeService interface {
	// GenerateStorefrontQR returns a PNG QR code encoding the storefront URL
	// for the given store slug.
	GenerateStorefrontQR(slug string) ([]byte, error)
}
