package rabbitmq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	ID   string `json:"message_id"`
	Body string `json:"body"`
}

func (e envelope) MessageKey() string { return e.ID }

func TestEncode(t *testing.T) {
	t.Run("uses_envelope_message_id", func(t *testing.T) {
		body, id, err := encode(envelope{ID: "m-1", Body: "x"})
		require.NoError(t, err)
		assert.Equal(t, "m-1", id)
		assert.JSONEq(t, `{"message_id":"m-1","body":"x"}`, string(body))
	})

	t.Run("generates_id_for_plain_payloads", func(t *testing.T) {
		_, id, err := encode(map[string]string{"k": "v"})
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("unencodable_payload", func(t *testing.T) {
		_, _, err := encode(make(chan int))
		assert.Error(t, err)
	})
}

func TestPublisher_PublishEvent_Guards(t *testing.T) {
	p := &Publisher{exchange: DefaultExchange}

	err := p.PublishEvent(context.Background(), "", envelope{ID: "m"})
	assert.EqualError(t, err, "missing routingKey")

	err = p.PublishEvent(context.Background(), "state.created", envelope{ID: "m"})
	assert.EqualError(t, err, "publisher channel not ready")
}
