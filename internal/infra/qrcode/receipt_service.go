package qrcode

import (
	"encoding/json"
	"fmt"

	"posterstore/internal/domain/entity"
	"posterstore/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type receiptService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReceiptData represents the QR code payload for an order receipt
type ReceiptData struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
	Items   int     `json:"items"`
	Type    string  `json:"type"`
}

// NewReceiptService creates a new receipt QR service instance
func NewReceiptService(size int, errorCorrectionLevel string) service.ReceiptService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &receiptService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateOrderReceipt renders a PNG QR code encoding the order receipt.
func (s *receiptService) GenerateOrderReceipt(order *entity.Order) ([]byte, error) {
	data := ReceiptData{
		OrderID: order.ID,
		Total:   entity.Round2(order.Total),
		Items:   order.Items,
		Type:    "receipt",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOrderReceipt parses receipt QR data and returns the order ID.
func (s *receiptService) ParseOrderReceipt(data string) (string, error) {
	var receipt ReceiptData
	if err := json.Unmarshal([]byte(data), &receipt); err != nil {
		return "", fmt.Errorf("failed to unmarshal receipt data: %w", err)
	}

	if receipt.Type != "receipt" {
		return "", fmt.Errorf("invalid QR code type: %s", receipt.Type)
	}

	if receipt.OrderID == "" {
		return "", fmt.Errorf("receipt has no order id")
	}

	return receipt.OrderID, nil
}
