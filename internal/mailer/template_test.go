package mailer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pizzamaker/pizzamaker-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfirmBody(t *testing.T) {
	name := "Ada"
	order := &models.Order{ID: uuid.MustParse("a9f9cd68-0c04-4d7a-8c33-03de8b3f6a5a"), Name: &name}

	body, err := RenderConfirmBody("http://pizza.test", order, "deadbeef")
	require.NoError(t, err)

	assert.Contains(t, body, "Hi Ada")
	assert.Contains(t, body, "http://pizza.test/order/a9f9cd68-0c04-4d7a-8c33-03de8b3f6a5a/confirm/deadbeef")
}

func TestRenderConfirmBodyWithoutName(t *testing.T) {
	order := &models.Order{ID: uuid.New()}

	body, err := RenderConfirmBody("http://pizza.test", order, "deadbeef")
	require.NoError(t, err)

	assert.Contains(t, body, "Hi,")
}

func TestLogMailerNeverFails(t *testing.T) {
	assert.NoError(t, NewLogMailer().Send("a@b.com", "subject", "<p>hi</p>"))
}
