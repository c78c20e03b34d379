package service

// QRCodeService renders dashboard links as QR codes so a tenant URL can be opened on another device.
type QRCodeService interface {
	// LinkPNG renders the link as a PNG image.
	LinkPNG(link string) ([]byte, error)

	// LinkTerminal renders the link with block characters for a terminal.
	LinkTerminal(link string) (string, error)
}
