package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbxweb/rbxweb/internal/constants"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := parseID("156", constants.ErrInvalidUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(156), id)

	_, err = parseID("abc", constants.ErrInvalidUserID)
	assert.ErrorIs(t, err, constants.ErrInvalidUserID)

	_, err = parseID("0", constants.ErrInvalidUserID)
	assert.ErrorIs(t, err, constants.ErrInvalidUserID)

	_, err = parseID("-5", constants.ErrInvalidGroupID)
	assert.ErrorIs(t, err, constants.ErrInvalidGroupID)
}

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	assert.Equal(t, constants.NotAvailable, maskSecret(""))
	assert.Equal(t, constants.MaskedSecret, maskSecret("abc"))
	assert.Equal(t, "_|WA"+constants.MaskedSecret, maskSecret("_|WARNING:-DO-NOT-SHARE"))
}
