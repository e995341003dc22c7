package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storefront/checkout"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	allowed := [][2]checkout.State{
		{checkout.Idle, checkout.FormEntry},
		{checkout.FormEntry, checkout.Validating},
		{checkout.Validating, checkout.Rejected},
		{checkout.Validating, checkout.Processing},
		{checkout.Rejected, checkout.FormEntry},
		{checkout.Processing, checkout.Succeeded},
		{checkout.Processing, checkout.Declined},
		{checkout.Processing, checkout.FormEntry},
		{checkout.Declined, checkout.FormEntry},
	}
	for _, tr := range allowed {
		assert.True(t, checkout.CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	denied := [][2]checkout.State{
		{checkout.Idle, checkout.Processing},
		{checkout.FormEntry, checkout.Succeeded},
		{checkout.Rejected, checkout.Processing},
		{checkout.Succeeded, checkout.FormEntry},
		{checkout.Validating, checkout.Succeeded},
	}
	for _, tr := range denied {
		assert.False(t, checkout.CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	assert.True(t, checkout.Succeeded.Terminal())
	assert.False(t, checkout.Rejected.Terminal())
	assert.True(t, checkout.Declined.Editable())
	assert.False(t, checkout.Processing.Editable())
}
