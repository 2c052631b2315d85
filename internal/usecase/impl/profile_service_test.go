package impl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"posterstore/internal/domain/entity"
	domainerrors "posterstore/internal/domain/errors"
	"posterstore/internal/infra/qrcode"
	"posterstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, testRepos) {
	repos := newTestRepos(t)
	receipts := qrcode.NewReceiptService(256, "M")
	svc := NewProfileService(repos.profiles, repos.orders, receipts, repos.logger)

	return svc, repos
}

func TestProfileService_GetProfile_EmptyWhenNeverSaved(t *testing.T) {
	svc, _ := createTestProfileService(t)

	profile, err := svc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &entity.Profile{}, profile)
}

func TestProfileService_SaveProfile_RoundTrip(t *testing.T) {
	svc, _ := createTestProfileService(t)
	ctx := context.Background()

	saved, err := svc.SaveProfile(ctx, &usecase.ProfileInput{
		Name:    "Ada Shopper",
		Email:   "ada@example.com",
		Phone:   "555-0100",
		Address: "1 Poster Lane",
		City:    "Printville",
		State:   "CA",
		ZipCode: "90210",
	})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, profile)

	// Saving again overwrites the whole record, dropped fields included.
	_, err = svc.SaveProfile(ctx, &usecase.ProfileInput{Name: "Ada Shopper"})
	require.NoError(t, err)

	profile, err = svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Empty(t, profile.Email)
}

func TestProfileService_ListOrders_KeepsStoredOrder(t *testing.T) {
	svc, repos := createTestProfileService(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"100", "200", "300"} {
		require.NoError(t, repos.orders.Append(ctx, &entity.Order{
			ID:     id,
			Date:   base.Add(time.Duration(i) * time.Hour),
			Total:  60,
			Items:  2,
			Status: entity.OrderStatusPending,
		}))
	}

	// History reads back exactly as appended, oldest first.
	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "100", orders[0].ID)
	assert.Equal(t, "200", orders[1].ID)
	assert.Equal(t, "300", orders[2].ID)
}

func TestProfileService_OrderReceipt(t *testing.T) {
	svc, repos := createTestProfileService(t)
	ctx := context.Background()

	require.NoError(t, repos.orders.Append(ctx, &entity.Order{
		ID:     "12345",
		Date:   time.Now(),
		Total:  60,
		Items:  2,
		Status: entity.OrderStatusPending,
	}))

	png, err := svc.OrderReceipt(ctx, "12345")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = svc.OrderReceipt(ctx, "99999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}
