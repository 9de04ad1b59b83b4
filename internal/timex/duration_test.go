package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	var v struct {
		D Duration `json:"d"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"d":"720h"}`), &v))
	assert.Equal(t, 720*time.Hour, v.D.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"d":1000000000}`), &v))
	assert.Equal(t, time.Second, v.D.Duration)

	assert.Error(t, json.Unmarshal([]byte(`{"d":"bogus"}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"d":true}`), &v))
}
