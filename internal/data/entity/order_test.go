package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []OrderItem
		want  float64
	}{
		{
			name: "two items",
			items: []OrderItem{
				{Name: "Pro Subscription", Qty: 2, Price: 29.99},
				{Name: "Team Add-on", Qty: 1, Price: 9.99},
			},
			want: 69.97,
		},
		{
			name:  "empty list",
			items: nil,
			want:  0,
		},
		{
			name: "free item",
			items: []OrderItem{
				{Name: "Freebie", Qty: 3, Price: 0},
			},
			want: 0,
		},
		{
			name: "single item large qty",
			items: []OrderItem{
				{Name: "Analytics Pack", Qty: 100, Price: 14.99},
			},
			want: 1499,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := ComputeTotal(tt.items)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, total, 0.001)
		})
	}
}

func TestComputeTotal_InvalidItems(t *testing.T) {
	tests := []struct {
		name  string
		items []OrderItem
	}{
		{"zero qty", []OrderItem{{Name: "X", Qty: 0, Price: 1.0}}},
		{"negative qty", []OrderItem{{Name: "X", Qty: -1, Price: 1.0}}},
		{"negative price", []OrderItem{{Name: "X", Qty: 1, Price: -0.01}}},
		{"missing name", []OrderItem{{Name: "", Qty: 1, Price: 1.0}}},
		{
			"one bad item fails the whole list",
			[]OrderItem{
				{Name: "OK", Qty: 1, Price: 1.0},
				{Name: "Bad", Qty: 0, Price: 1.0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeTotal(tt.items)
			assert.ErrorIs(t, err, ErrInvalidItem)
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled} {
		assert.True(t, s.IsValid(), string(s))
	}

	assert.False(t, OrderStatus("shipped").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
