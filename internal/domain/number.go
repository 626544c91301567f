package domain

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// NumberState indica como um campo numérico chegou no payload
type NumberState int

const (
	NumberAbsent NumberState = iota
	NumberValid
	NumberInvalid
)

// OptionalNumber aceita número JSON ou string numérica.
// null, campo ausente e string vazia contam como ausentes.
type OptionalNumber struct {
	State NumberState
	Value float64
	Raw   string
}

// Num cria um OptionalNumber válido
func Num(v float64) OptionalNumber {
	return OptionalNumber{State: NumberValid, Value: v}
}

func (n *OptionalNumber) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*n = OptionalNumber{}
		return nil
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := jsoniter.Unmarshal(raw, &s); err != nil {
			*n = OptionalNumber{State: NumberInvalid, Raw: text}
			return nil
		}

		text = strings.TrimSpace(s)
		if text == "" {
			*n = OptionalNumber{}
			return nil
		}
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		*n = OptionalNumber{State: NumberInvalid, Raw: text}
		return nil
	}

	*n = OptionalNumber{State: NumberValid, Value: value}
	return nil
}

func (n OptionalNumber) IsPresent() bool {
	return n.State != NumberAbsent
}
