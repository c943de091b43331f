package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	t.Run("IntOr", func(t *testing.T) {
		assert.Equal(t, 2.0, Int(2).IntOr(1))
		assert.Equal(t, 12.0, Text("12abc").IntOr(1))
		assert.Equal(t, 1.0, Float(1.9).IntOr(0), "integers truncate")
		assert.Equal(t, -3.0, Text(" -3 ").IntOr(0))
		assert.True(t, math.IsNaN(Text("abc").IntOr(1)))
		assert.True(t, math.IsNaN(Text("invalid").IntOr(0)))
		assert.Equal(t, 1500.0, Float(1.5e3).IntOr(0))
		assert.Equal(t, 2.0, Text("2e3").IntOr(0), "strings stop at the exponent")
	})

	t.Run("FloatOr", func(t *testing.T) {
		assert.Equal(t, 0.5, Text("0.5").FloatOr(0))
		assert.Equal(t, 2.5, Text("2.5 hours").FloatOr(0))
		assert.Equal(t, 1e3, Text("1e3").FloatOr(0))
		assert.True(t, math.IsInf(Text("Infinity").FloatOr(0), 1))
		assert.True(t, math.IsNaN(Text(".").FloatOr(0)))
	})

	t.Run("falsy values take the default", func(t *testing.T) {
		assert.Equal(t, 1.0, Number{}.IntOr(1))
		assert.Equal(t, 1.0, Int(0).IntOr(1))
		assert.Equal(t, 1.0, Text("").IntOr(1))

		var n Number
		require.NoError(t, json.Unmarshal([]byte("false"), &n))
		assert.Equal(t, 7.0, n.FloatOr(7))

		// "0" is a non-empty string and therefore parsed
		assert.Equal(t, 0.0, Text("0").IntOr(1))
	})

	t.Run("Float64", func(t *testing.T) {
		assert.True(t, math.IsNaN(Number{}.Float64()))
		assert.Equal(t, 0.0, Int(0).Float64())
		assert.Equal(t, 60.0, Text("60").Float64())
	})

	t.Run("non numeric JSON", func(t *testing.T) {
		var n Number
		require.NoError(t, json.Unmarshal([]byte(`{"a":1}`), &n))
		assert.True(t, math.IsNaN(n.IntOr(1)))
		require.NoError(t, json.Unmarshal([]byte(`true`), &n))
		assert.True(t, math.IsNaN(n.FloatOr(0)))
	})

	t.Run("JSON round trip", func(t *testing.T) {
		type row struct {
			A Number `json:"a"`
			B Number `json:"b"`
			C Number `json:"c"`
			D Number `json:"d"`
		}
		in := row{A: Int(3), B: Text("4.5"), C: Float(0.25)}
		b, err := json.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":3,"b":"4.5","c":0.25,"d":null}`, string(b))

		var out row
		require.NoError(t, json.Unmarshal(b, &out))
		assert.Equal(t, in, out)
	})

	t.Run("NaN becomes null", func(t *testing.T) {
		assert.True(t, Float(math.NaN()).IsNull())
		assert.True(t, Float(math.Inf(1)).IsNull())
	})
}

func TestNumberExponentJSON(t *testing.T) {
	var v struct {
		Wattage  Number `json:"wattage"`
		Quantity Number `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"wattage":1.5e3,"quantity":2E0}`), &v))
	assert.Equal(t, 1500.0, v.Wattage.IntOr(0))
	assert.Equal(t, 2.0, v.Quantity.IntOr(1))
}
