package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const receiptQRSize = 256

type ReceiptQRGenerator struct {
	BaseURL string
}

func (g ReceiptQRGenerator) Generate(orderID int) ([]byte, error) {
	link := fmt.Sprintf("%s/orders/receipt?order_id=%d", strings.TrimRight(g.BaseURL, "/"), orderID)
	return qrcode.Encode(link, qrcode.Medium, receiptQRSize)
}
