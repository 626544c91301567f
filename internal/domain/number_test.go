package domain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		state NumberState
		value float64
	}{
		{name: "número inteiro", input: `{"v": 10}`, state: NumberValid, value: 10},
		{name: "número decimal", input: `{"v": 50.75}`, state: NumberValid, value: 50.75},
		{name: "string numérica", input: `{"v": " 12.5 "}`, state: NumberValid, value: 12.5},
		{name: "null", input: `{"v": null}`, state: NumberAbsent},
		{name: "campo ausente", input: `{}`, state: NumberAbsent},
		{name: "string vazia", input: `{"v": ""}`, state: NumberAbsent},
		{name: "string não numérica", input: `{"v": "abc"}`, state: NumberInvalid},
		{name: "booleano", input: `{"v": true}`, state: NumberInvalid},
		{name: "objeto", input: `{"v": {"a": 1}}`, state: NumberInvalid},
		{name: "NaN em string", input: `{"v": "NaN"}`, state: NumberInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				V OptionalNumber `json:"v"`
			}

			err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(tt.input), &out)
			require.NoError(t, err)

			assert.Equal(t, tt.state, out.V.State)
			assert.Equal(t, tt.value, out.V.Value)
			assert.Equal(t, tt.state != NumberAbsent, out.V.IsPresent())
		})
	}
}

func TestFallbackAccountName(t *testing.T) {
	assert.Equal(t, "Conta - 123-456-7890", FallbackAccountName("123-456-7890"))
}

func TestCalculateProfit(t *testing.T) {
	assert.Equal(t, 150.0, CalculateProfit(200, 50))
	assert.Equal(t, 120.0, CalculateProfit(200, 80))
	assert.Equal(t, -200.0, CalculateProfit(0, 200))
	assert.Equal(t, 0.2, CalculateProfit(0.3, 0.1))
}
