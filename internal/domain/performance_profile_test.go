package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerformanceProfile(t *testing.T) {
	t.Run("records events in order", func(t *testing.T) {
		p := NewPerformanceProfile()
		p.Add("fetched")
		p.Add("computed")
		p.End()

		require.Len(t, p.Events, 2)
		require.Equal(t, "fetched", p.Events[0].Name)
		require.Equal(t, "computed", p.Events[1].Name)
		require.GreaterOrEqual(t, p.TotalMs, int64(0))

		fields := p.Fields()
		require.Equal(t, []interface{}{"totalMs", p.TotalMs, "fetchedMs", p.Events[0].ElapsedMs, "computedMs", p.Events[1].ElapsedMs}, fields)
	})

	t.Run("missing from ctx", func(t *testing.T) {
		p := GetPerformanceProfile(context.Background())
		require.NotNil(t, p)
	})

	t.Run("found in ctx", func(t *testing.T) {
		p := NewPerformanceProfile()
		ctx := context.WithValue(context.Background(), ContextProfileKey, p)
		require.Same(t, p, GetPerformanceProfile(ctx))
	})
}
