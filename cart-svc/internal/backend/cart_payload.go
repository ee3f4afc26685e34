package backend

import (
	"bytes"
	"encoding/json"

	"restaurant-client/cart-svc/internal/domain"
)

type CartPayloadKind int

const (
	CartLines CartPayloadKind = iota
	CartEmptyMarker
	CartErrorMarker
)

func (k CartPayloadKind) String() string {
	switch k {
	case CartLines:
		return "lines"
	case CartEmptyMarker:
		return "empty"
	case CartErrorMarker:
		return "error"
	default:
		return "unknown"
	}
}

type CartPayload struct {
	Kind    CartPayloadKind
	Lines   []domain.CartLine
	Message string
}

const unexpectedCartPayload = "unexpected cart payload"

func ParseCartPayload(body []byte) CartPayload {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return CartPayload{Kind: CartEmptyMarker}
	}

	switch trimmed[0] {
	case '[':
		var lines []domain.CartLine
		if err := json.Unmarshal(trimmed, &lines); err != nil {
			return CartPayload{Kind: CartErrorMarker, Message: unexpectedCartPayload}
		}
		return CartPayload{Kind: CartLines, Lines: lines}
	case '{':
		return parseCartObject(trimmed)
	}
	return CartPayload{Kind: CartErrorMarker, Message: unexpectedCartPayload}
}

func parseCartObject(body []byte) CartPayload {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return CartPayload{Kind: CartErrorMarker, Message: unexpectedCartPayload}
	}

	if raw, ok := fields["cart"]; ok {
		var marker string
		if err := json.Unmarshal(raw, &marker); err == nil {
			return CartPayload{Kind: CartEmptyMarker, Message: marker}
		}
		var lines []domain.CartLine
		if err := json.Unmarshal(raw, &lines); err == nil {
			return CartPayload{Kind: CartLines, Lines: lines}
		}
	}

	for _, key := range []string{"error", "message"} {
		if raw, ok := fields[key]; ok {
			var text string
			if err := json.Unmarshal(raw, &text); err == nil && text != "" {
				return CartPayload{Kind: CartErrorMarker, Message: text}
			}
		}
	}
	return CartPayload{Kind: CartErrorMarker, Message: unexpectedCartPayload}
}
