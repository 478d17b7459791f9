package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishBuildsStockUpdateEvent(t *testing.T) {
	hub := NewHub()

	go hub.Publish("sale_recorded", "Sold 3 x Widget for 30.00", map[string]interface{}{
		"product_id": 1,
		"new_stock":  2,
	})

	raw := <-hub.Broadcast

	var evt Event
	require.NoError(t, json.Unmarshal(raw, &evt))
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, "stock_update", evt.Type)
	assert.Equal(t, "sale_recorded", evt.Action)
	assert.Equal(t, "Sold 3 x Widget for 30.00", evt.Message)
	assert.EqualValues(t, 2, evt.Payload["new_stock"])
}

func TestPublishWithoutPayload(t *testing.T) {
	hub := NewHub()

	go hub.Publish("data_cleared", "All data cleared", nil)

	raw := <-hub.Broadcast

	var evt Event
	require.NoError(t, json.Unmarshal(raw, &evt))
	assert.Equal(t, "data_cleared", evt.Action)
	assert.Nil(t, evt.Payload)
}
