package qrcode

import (
	"encoding/json"
	"testing"
	"time"

	"posterstore/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptService_GenerateAndParse(t *testing.T) {
	svc := NewReceiptService(256, "M")

	order := &entity.Order{
		ID:     "1700000000000",
		Date:   time.Now(),
		Total:  60.0000001,
		Items:  2,
		Status: entity.OrderStatusPending,
	}

	png, err := svc.GenerateOrderReceipt(order)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])

	payload, err := json.Marshal(ReceiptData{OrderID: order.ID, Total: 60, Items: 2, Type: "receipt"})
	require.NoError(t, err)

	orderID, err := svc.ParseOrderReceipt(string(payload))
	require.NoError(t, err)
	assert.Equal(t, order.ID, orderID)
}

func TestReceiptService_ParseRejectsWrongType(t *testing.T) {
	svc := NewReceiptService(256, "M")

	payload, err := json.Marshal(ReceiptData{OrderID: "1", Type: "subscription"})
	require.NoError(t, err)

	_, err = svc.ParseOrderReceipt(string(payload))
	assert.Error(t, err)
}

func TestReceiptService_ParseRejectsGarbage(t *testing.T) {
	svc := NewReceiptService(256, "M")

	_, err := svc.ParseOrderReceipt("not-json")
	assert.Error(t, err)
}
