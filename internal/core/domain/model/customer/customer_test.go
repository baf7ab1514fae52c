package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
)

func customerPrototype(t *testing.T) *Customer {
	t.Helper()

	phone, err := kernel.NewPhone("0550123456")
	require.NoError(t, err)

	c, err := NewCustomer(phone, "Amine B", "12 rue Didouche Mourad", true)
	require.NoError(t, err)

	return c
}

func Test_NewCustomer(t *testing.T) {
	// Act
	c := customerPrototype(t)

	// Assert
	assert.NoError(t, c.Validate())
	assert.Equal(t, "Amine B", c.Name())
	assert.Equal(t, "12 rue Didouche Mourad", c.Address())
	assert.True(t, c.WhatsApp())
	assert.False(t, c.IsAdmin())
}

func Test_NewCustomer_EmptyName(t *testing.T) {
	// Arrange
	phone, err := kernel.NewPhone("0550123456")
	require.NoError(t, err)

	// Act
	_, err = NewCustomer(phone, "", "", false)

	// Assert
	assert.ErrorIs(t, err, ErrCustomerNameIsRequired)
}

func Test_RestoreCustomer_Admin(t *testing.T) {
	// Arrange
	phone, err := kernel.NewPhone("0770000000")
	require.NoError(t, err)

	// Act
	c, err := RestoreCustomer(phone, "Gérant", "", false, true)

	// Assert
	require.NoError(t, err)
	assert.True(t, c.IsAdmin())
}

func Test_Customer_UpdateProfile(t *testing.T) {
	// Arrange
	c := customerPrototype(t)

	// Act
	err := c.UpdateProfile("Amine Benali", "Cité 200 logements", false)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Amine Benali", c.Name())
	assert.Equal(t, "Cité 200 logements", c.Address())
	assert.False(t, c.WhatsApp())
}

func Test_Customer_UpdateProfile_EmptyName(t *testing.T) {
	// Arrange
	c := customerPrototype(t)

	// Act
	err := c.UpdateProfile("", "somewhere", false)

	// Assert
	assert.ErrorIs(t, err, ErrCustomerNameIsRequired)
	assert.Equal(t, "Amine B", c.Name())
}

func Test_Customer_Validate(t *testing.T) {
	// Arrange
	var nilCustomer *Customer

	// Assert
	assert.ErrorIs(t, nilCustomer.Validate(), ErrCustomerIsNotConstructed)
	assert.ErrorIs(t, (&Customer{}).Validate(), ErrCustomerIsNotConstructed)
	assert.NoError(t, customerPrototype(t).Validate())
}

func Test_Customer_IsEqual(t *testing.T) {
	// Arrange
	first := customerPrototype(t)
	second := customerPrototype(t)

	other, err := kernel.NewPhone("0661998877")
	require.NoError(t, err)
	third, err := NewCustomer(other, "Sarah K", "", false)
	require.NoError(t, err)

	// Assert
	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
	assert.False(t, first.IsEqual(nil))
}
