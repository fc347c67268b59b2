package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFrame(t *testing.T) {
	raw, err := Encode(TypeTyping, "room-1", TypingPayload{Typing: "Alice"})
	require.NoError(t, err)

	var frame Frame
	require.NoError(t, json.Unmarshal(raw, &frame))

	assert.Equal(t, TypeTyping, frame.Type)
	assert.Equal(t, "room-1", frame.RoomID)

	var payload TypingPayload
	require.NoError(t, json.Unmarshal(frame.Data, &payload))
	assert.Equal(t, "Alice", payload.Typing)

	_, err = time.Parse(time.RFC3339, frame.Timestamp)
	assert.NoError(t, err)
}

func TestEncodeFrameWithoutData(t *testing.T) {
	raw, err := Encode(TypePong, "", nil)
	require.NoError(t, err)

	var frame Frame
	require.NoError(t, json.Unmarshal(raw, &frame))
	assert.Equal(t, TypePong, frame.Type)
	assert.Empty(t, frame.RoomID)
	assert.Nil(t, frame.Data)
}
