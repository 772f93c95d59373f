package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	lines := []commands.OrderLine{{ProductID: kernel.NewUUID(), Quantity: 2}}

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), "Jane Doe", testEmail(t), testAddress(t), "rush", "admin", lines)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Len(t, cmd.Lines(), 1)
	})

	t.Run("invalid order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, "Jane Doe", testEmail(t), testAddress(t), "", "admin", lines)
		require.Error(t, err)
	})

	t.Run("no lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), "Jane Doe", testEmail(t), testAddress(t), "", "admin", nil)
		require.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
	})

	t.Run("non-positive line quantity", func(t *testing.T) {
		bad := []commands.OrderLine{{ProductID: kernel.NewUUID(), Quantity: 0}}
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), "Jane Doe", testEmail(t), testAddress(t), "", "admin", bad)
		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.CreateOrderCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
