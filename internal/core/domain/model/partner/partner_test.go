package partner_test

import (
	"testing"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/partner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryPartner(t *testing.T) {
	t.Run("should register available partner with default rating", func(t *testing.T) {
		p, err := partner.NewDeliveryPartner(kernel.NewID(), "mike.rider@example.com", "Mike Johnson", "+1-555-0201", "motorcycle")

		require.NoError(t, err)
		assert.True(t, p.IsAvailable())
		assert.Equal(t, 5.0, p.Rating())
		assert.Equal(t, kernel.RoleDelivery, p.Role())

		point, _ := p.LastKnownPosition()
		assert.Nil(t, point)
	})

	t.Run("should reject missing email", func(t *testing.T) {
		_, err := partner.NewDeliveryPartner(kernel.NewID(), "", "Mike", "", "bicycle")

		require.Error(t, err)
		assert.Equal(t, partner.ErrEmailIsRequired, err)
	})

	t.Run("should reject missing name", func(t *testing.T) {
		_, err := partner.NewDeliveryPartner(kernel.NewID(), "mike@example.com", "", "", "bicycle")

		require.Error(t, err)
		assert.Equal(t, partner.ErrNameIsRequired, err)
	})
}

func TestDeliveryPartner_SetAvailability(t *testing.T) {
	t.Run("should toggle availability", func(t *testing.T) {
		p, err := partner.NewDeliveryPartner(kernel.NewID(), "a@example.com", "A", "", "car")
		require.NoError(t, err)

		p.SetAvailability(false)
		assert.False(t, p.IsAvailable())

		p.SetAvailability(true)
		assert.True(t, p.IsAvailable())
	})
}

func TestDeliveryPartner_RecordPosition(t *testing.T) {
	t.Run("should keep the freshest denormalized position", func(t *testing.T) {
		p, err := partner.NewDeliveryPartner(kernel.NewID(), "a@example.com", "A", "", "car")
		require.NoError(t, err)
		point, err := kernel.NewGeoPoint(40.758, -73.9855)
		require.NoError(t, err)
		at := time.Now().UTC()

		require.NoError(t, p.RecordPosition(point, at))

		got, gotAt := p.LastKnownPosition()
		require.NotNil(t, got)
		assert.True(t, point.IsEqual(*got))
		assert.Equal(t, at, gotAt)
	})

	t.Run("should reject zero-value point", func(t *testing.T) {
		p, err := partner.NewDeliveryPartner(kernel.NewID(), "a@example.com", "A", "", "car")
		require.NoError(t, err)

		var zero kernel.GeoPoint
		require.Error(t, p.RecordPosition(zero, time.Now()))
	})
}

func TestDeliveryPartner_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var p partner.DeliveryPartner

		require.Error(t, p.Validate())
	})

	t.Run("should reject nil", func(t *testing.T) {
		var p *partner.DeliveryPartner

		require.Error(t, p.Validate())
	})
}
