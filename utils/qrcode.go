package utils

import (
	"fmt"

	"staybook/config"

	"github.com/skip2/go-qrcode"
)

// TransferQR encodes the bank-transfer instructions for a booking into a QR PNG.
// The payload follows the bank|account|holder|amount|currency|reference format that
// banking apps parse from transfer QR codes. The reference carries the booking code
// so back-office reconciliation can match the incoming transfer.
func TransferQR(bookingID int, amount float64, currency string) ([]byte, error) {
	cfg := config.AppConfig
	payload := fmt.Sprintf("%s|%s|%s|%.0f|%s|BK%d",
		cfg.TransferBankCode,
		cfg.TransferAccountNo,
		cfg.TransferAccountName,
		amount,
		currency,
		bookingID,
	)

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate transfer QR code: %w", err)
	}
	return png, nil
}
