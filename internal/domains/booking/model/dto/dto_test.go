package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ehotel/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		wantErr bool
	}{
		{
			name: "valid interval",
			req: dto.CreateBookingRequest{
				HotelID:   1,
				RoomID:    101,
				StartDate: "2024-01-10",
				EndDate:   "2024-01-15",
			},
		},
		{
			name: "single day stay",
			req: dto.CreateBookingRequest{
				HotelID:   1,
				RoomID:    101,
				StartDate: "2024-01-10",
				EndDate:   "2024-01-10",
			},
		},
		{
			name: "end before start",
			req: dto.CreateBookingRequest{
				HotelID:   1,
				RoomID:    101,
				StartDate: "2024-01-15",
				EndDate:   "2024-01-10",
			},
			wantErr: true,
		},
		{
			name: "malformed start date",
			req: dto.CreateBookingRequest{
				HotelID:   1,
				RoomID:    101,
				StartDate: "10/01/2024",
				EndDate:   "2024-01-15",
			},
			wantErr: true,
		},
		{
			name: "malformed end date",
			req: dto.CreateBookingRequest{
				HotelID:   1,
				RoomID:    101,
				StartDate: "2024-01-10",
				EndDate:   "15-01-2024",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := tt.req.ToModel(42)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(42), booking.CustomerID)
			assert.Equal(t, tt.req.HotelID, booking.HotelID)
			assert.Equal(t, tt.req.RoomID, booking.RoomID)
			assert.Equal(t, time.UTC, booking.StartDate.Location())
			assert.False(t, booking.EndDate.Before(booking.StartDate))
		})
	}
}
