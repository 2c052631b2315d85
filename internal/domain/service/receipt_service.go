package service

import "posterstore/internal/domain/entity"

// ReceiptService defines the interface for order receipt QR generation and parsing.
type ReceiptService interface {
	// GenerateOrderReceipt renders a PNG QR code encoding the order receipt.
	GenerateOrderReceipt(order *entity.Order) ([]byte, error)

	// ParseOrderReceipt parses receipt QR data and returns the order ID.
	ParseOrderReceipt(data string) (string, error)
}
