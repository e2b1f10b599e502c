package kernel_test

import (
	"testing"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(40.7589, -73.9851)

		require.NoError(t, err)
		assert.InDelta(t, 40.7589, point.Latitude(), 0.0001)
		assert.InDelta(t, -73.9851, point.Longitude(), 0.0001)
		require.NoError(t, point.Validate())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		cases := [][2]float64{
			{kernel.LatitudeMin, 0},
			{kernel.LatitudeMax, 0},
			{0, kernel.LongitudeMin},
			{0, kernel.LongitudeMax},
		}

		for _, c := range cases {
			_, err := kernel.NewGeoPoint(c[0], c[1])
			require.NoError(t, err)
		}
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(95, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("should reject longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var point kernel.GeoPoint

		require.Error(t, point.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("should compare by coordinates", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(40.75, -73.98)
		b, _ := kernel.NewGeoPoint(40.75, -73.98)
		c, _ := kernel.NewGeoPoint(40.76, -73.98)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestID(t *testing.T) {
	t.Run("should generate unique ids", func(t *testing.T) {
		a := kernel.NewID()
		b := kernel.NewID()

		require.NoError(t, a.Validate())
		assert.NotEqual(t, a, b)
	})

	t.Run("should reject empty id", func(t *testing.T) {
		_, err := kernel.ParseID("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should accept opaque seed ids", func(t *testing.T) {
		id, err := kernel.ParseID("vendor-1")

		require.NoError(t, err)
		assert.Equal(t, "vendor-1", id.String())
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should validate known roles", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleVendor, kernel.RoleDelivery, kernel.RoleCustomer} {
			require.NoError(t, role.Validate())
		}
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		err := kernel.Role("admin").Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
