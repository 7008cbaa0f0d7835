package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRatio_MarshalJSON(t *testing.T) {
	t.Run("finite", func(t *testing.T) {
		b, err := json.Marshal(Ratio(0.5))
		require.NoError(t, err)
		require.Equal(t, "0.5", string(b))
	})

	t.Run("non finite", func(t *testing.T) {
		b, err := json.Marshal(map[string]Ratio{
			"nan":    Ratio(math.NaN()),
			"posInf": Ratio(math.Inf(1)),
			"negInf": Ratio(math.Inf(-1)),
		})
		require.NoError(t, err)
		require.JSONEq(t, `{"nan":"NaN","posInf":"+Inf","negInf":"-Inf"}`, string(b))
	})

	t.Run("round trip of NaN", func(t *testing.T) {
		var r Ratio
		require.NoError(t, json.Unmarshal([]byte(`"NaN"`), &r))
		require.True(t, math.IsNaN(float64(r)))
		require.False(t, r.IsFinite())
	})
}
