//go:build unit

package driver_test

import (
	"testing"

	"riderhub/internal/domain/driver"
	"riderhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLicenseCategoryEligibility(t *testing.T) {
	cases := []struct {
		name     string
		category driver.LicenseCategory
		permits  bool
	}{
		{name: "category A can rent", category: driver.CategoryA, permits: true},
		{name: "category A+B can rent", category: driver.CategoryAB, permits: true},
		{name: "category B cannot rent", category: driver.CategoryB, permits: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.permits, tc.category.PermitsMotorcycle())
		})
	}
}

func TestNewDriver(t *testing.T) {
	actual := builder.NewDriverBuilder().BuildDomain()
	require.NotNil(t, actual)

	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.Equal(t, "taro@example.com", actual.Email().Value())
	assert.Equal(t, "11222333000181", actual.CNPJ().Value())
	assert.Equal(t, driver.CategoryA, actual.Category())
}

func TestDriverValueObjects(t *testing.T) {
	t.Run("CNPJ must be exactly fourteen digits", func(t *testing.T) {
		for _, s := range []string{"", "1122233300018", "112223330001811", "1122233300018a"} {
			_, err := driver.NewCNPJ(s)
			assert.ErrorIs(t, err, driver.ErrInvalidCNPJ, "cnpj %q", s)
		}

		cnpj, err := driver.NewCNPJ(" 11222333000181 ")
		require.NoError(t, err)
		assert.Equal(t, "11222333000181", cnpj.Value())
	})

	t.Run("license category must be a known class", func(t *testing.T) {
		_, err := driver.NewLicenseCategory("C")
		assert.ErrorIs(t, err, driver.ErrInvalidLicenseCategory)
	})

	t.Run("license image must be png or bmp", func(t *testing.T) {
		for _, ref := range []string{"licenses/lic.png", "licenses/lic.bmp", "licenses/LIC.PNG"} {
			_, err := driver.NewLicenseImage(ref)
			assert.NoError(t, err, "ref %q", ref)
		}
		for _, ref := range []string{"licenses/lic.jpg", "licenses/lic", ""} {
			_, err := driver.NewLicenseImage(ref)
			assert.ErrorIs(t, err, driver.ErrInvalidLicenseImage, "ref %q", ref)
		}
	})

	t.Run("license number cannot be blank", func(t *testing.T) {
		_, err := driver.NewLicenseNumber("   ")
		assert.ErrorIs(t, err, driver.ErrInvalidLicenseNumber)
	})
}
