package zerror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/invoicing-api/pkg/zerror"
)

func TestZError(t *testing.T) {
	notFound := zerror.NewNotFound("CLIENT_NOT_FOUND", "client not found")

	t.Run("Should match predefined error after wrapping", func(t *testing.T) {
		parent := errors.New("no rows")
		err := fmt.Errorf("get client: %w", notFound.WrapParent(parent))

		assert.ErrorIs(t, err, notFound)
		assert.ErrorIs(t, err, parent)
	})

	t.Run("Should not match a different code", func(t *testing.T) {
		other := zerror.NewNotFound("PRODUCT_NOT_FOUND", "product not found")
		assert.NotErrorIs(t, notFound, other)
	})

	t.Run("Should extract with errors.As", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", notFound.WithMsg("custom"))

		var zErr zerror.ZError
		assert.True(t, errors.As(err, &zErr))
		assert.Equal(t, zerror.StatusNotFound, zErr.Status())
		assert.Equal(t, "CLIENT_NOT_FOUND", zErr.Code())
		assert.Equal(t, "custom", zErr.Msg())
	})

	t.Run("Should format error string", func(t *testing.T) {
		assert.Equal(t, "Code=CLIENT_NOT_FOUND, Msg=client not found", notFound.Error())
		assert.Equal(t, "Code=CLIENT_NOT_FOUND, Msg=client not found, Parent=(boom)",
			notFound.WrapParent(errors.New("boom")).Error())
	})
}
