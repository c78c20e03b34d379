package qrcode

import (
	"testing"

	"painel/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_LinkPNG(t *testing.T) {
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
			svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: tt.size, ErrorCorrectionLevel: "M"}})

			png, err := svc.LinkPNG("https://demo.painel.local/dashboard")
			require.NoError(t, err)
			require.Greater(t, len(png), 4)
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
		})
	}
}

func TestQRCodeService_LinkTerminal(t *testing.T) {
	svc := NewQRCodeService(nil)

	out, err := svc.LinkTerminal("http://localhost:5173/dashboard?tenant=demo")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "\n")
}

func TestQRCodeService_RejectsRelativeLinks(t *testing.T) {
	svc := NewQRCodeService(nil)

	_, err := svc.LinkPNG("/dashboard")
	assert.Error(t, err)

	_, err = svc.LinkTerminal("::not a url")
	assert.Error(t, err)
}
