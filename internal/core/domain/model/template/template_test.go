package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewTemplate(t *testing.T) {
	// Act
	tpl, err := NewTemplate(OrderPreparing, "Commande #{{id}} en préparation")

	// Assert
	require.NoError(t, err)
	assert.NoError(t, tpl.Validate())
	assert.Equal(t, OrderPreparing, tpl.Key())
	assert.Equal(t, "Commande #{{id}} en préparation", tpl.Text())
}

func Test_NewTemplate_UnknownKey(t *testing.T) {
	// Act
	_, err := NewTemplate(Key("ord_refunded"), "n'importe quoi")

	// Assert
	assert.Error(t, err)
}

func Test_NewTemplate_EmptyText(t *testing.T) {
	// Act
	_, err := NewTemplate(OrderPreparing, "")

	// Assert
	assert.ErrorIs(t, err, ErrTemplateTextIsRequired)
}

func Test_Template_Render(t *testing.T) {
	// Arrange
	tpl, err := NewTemplate(OrderDelivering, "Commande #{{id}} livrée par {{livreur}}")
	require.NoError(t, err)

	// Act
	got := tpl.Render(map[string]string{"id": "a1b2", "livreur": "Karim"})

	// Assert
	assert.Equal(t, "Commande #a1b2 livrée par Karim", got)
}

func Test_Template_Render_RepeatedToken(t *testing.T) {
	// Arrange
	tpl, err := NewTemplate(OrderCompleted, "{{nom}}, merci {{nom}} !")
	require.NoError(t, err)

	// Act
	got := tpl.Render(map[string]string{"nom": "Amine"})

	// Assert
	assert.Equal(t, "Amine, merci Amine !", got)
}

func Test_Template_Render_UnknownTokenStays(t *testing.T) {
	// Arrange
	tpl, err := NewTemplate(OrderCompleted, "Commande #{{id}} pour {{noom}}")
	require.NoError(t, err)

	// Act
	got := tpl.Render(map[string]string{"id": "a1b2", "nom": "Amine"})

	// Assert
	assert.Equal(t, "Commande #a1b2 pour {{noom}}", got)
}

func Test_Template_Render_NoVars(t *testing.T) {
	// Arrange
	tpl, err := NewTemplate(OrderCompleted, "Bon appétit !")
	require.NoError(t, err)

	// Act
	got := tpl.Render(nil)

	// Assert
	assert.Equal(t, "Bon appétit !", got)
}

func Test_KeyFromString(t *testing.T) {
	tests := []struct {
		value   string
		want    Key
		wantErr bool
	}{
		{"res_confirmation", ReservationConfirmation, false},
		{"res_cancellation", ReservationCancellation, false},
		{"ord_preparing", OrderPreparing, false},
		{"ord_delivering", OrderDelivering, false},
		{"ord_completed", OrderCompleted, false},
		{"", "", true},
		{"ord_refunded", "", true},
	}

	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			got, err := KeyFromString(test.value)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func Test_Defaults(t *testing.T) {
	// Act
	defaults := Defaults()

	// Assert
	require.Len(t, defaults, len(Keys()))
	for i, tpl := range defaults {
		assert.NoError(t, tpl.Validate())
		assert.Equal(t, Keys()[i], tpl.Key())
		assert.NotEmpty(t, tpl.Text())
	}
}
