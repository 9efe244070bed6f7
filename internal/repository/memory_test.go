package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"trucki/internal/models"
)

func TestMemoryDriverStoreDuplicateCheckIsActiveScoped(t *testing.T) {
	store := NewMemoryDriverStore(nil)

	first := models.Driver{Name: "Joe", EmailAddress: "a@x.com", Phone: "555", IsActive: true}
	require.NoError(t, store.Create(context.Background(), &first))

	// Active rows block reuse of either identity value.
	err := store.Create(context.Background(), &models.Driver{
		Name: "Other", EmailAddress: "a@x.com", Phone: "556", IsActive: true,
	})
	require.ErrorIs(t, err, ErrDuplicate)
	err = store.Create(context.Background(), &models.Driver{
		Name: "Other", EmailAddress: "b@x.com", Phone: "555", IsActive: true,
	})
	require.ErrorIs(t, err, ErrDuplicate)

	// Deactivation releases both values.
	first.IsActive = false
	require.NoError(t, store.Update(context.Background(), &first))
	require.NoError(t, store.Create(context.Background(), &models.Driver{
		Name: "Joe II", EmailAddress: "a@x.com", Phone: "555", IsActive: true,
	}))
}
