package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"motionklub/internal/domain"
)

func capacity(max, confirmed int) domain.Capacity {
	return domain.Capacity{Max: max, Confirmed: confirmed}.Normalize()
}

func TestClassifyCapacity(t *testing.T) {
	tests := []struct {
		name string
		cap  domain.Capacity
		want CapacityStatus
	}{
		{"95 percent", capacity(20, 19), CapacityFull},
		{"exactly 90", capacity(10, 9), CapacityFull},
		{"75 percent", capacity(20, 15), CapacityLimited},
		{"exactly 70", capacity(10, 7), CapacityLimited},
		{"50 percent", capacity(20, 10), CapacityAvailable},
		{"empty", capacity(30, 0), CapacityAvailable},
		{"zero max", capacity(0, 0), CapacityFull},
		{"overbooked", capacity(10, 12), CapacityFull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCapacity(tt.cap))
		})
	}
}

func TestBookableAndLabel(t *testing.T) {
	assert.False(t, Bookable(capacity(12, 12)))
	assert.True(t, Bookable(capacity(30, 26)))

	assert.Equal(t, "Fully booked", CapacityLabel(capacity(12, 12)))
	assert.Equal(t, "Only 4 places left", CapacityLabel(capacity(30, 26)))
	assert.Equal(t, "20 places available", CapacityLabel(capacity(30, 10)))
}

func TestEligibleParticipants(t *testing.T) {
	party := []domain.Participant{
		{ID: "p1", DisplayName: "Adam", Age: 45},
		{ID: "p3", DisplayName: "Eva", Age: 9},
	}

	kids := EligibleParticipants(party, domain.AgeProfile{Min: 4, Max: 12})
	assert.Len(t, kids, 1)
	assert.Equal(t, "p3", kids[0].ID)

	all := EligibleParticipants(party, domain.AgeProfile{Min: 0, Max: 99})
	assert.Len(t, all, 2)

	assert.True(t, Eligible(party[1], domain.AgeProfile{Min: 9, Max: 9}))
}
