// internal/domain/checkout/payment.go
package checkout

import (
	"fmt"
	"strings"
)

// Method is a payment method as the terminal selector names it. The
// wire payload wants it lowercased; Wire is the only place that
// conversion happens.
type Method string

const (
	MethodEfectivo      Method = "EFECTIVO"
	MethodTarjeta       Method = "TARJETA"
	MethodTransferencia Method = "TRANSFERENCIA"
)

// ParseMethod accepts either casing of a known method
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(MethodEfectivo):
		return MethodEfectivo, nil
	case string(MethodTarjeta):
		return MethodTarjeta, nil
	case string(MethodTransferencia):
		return MethodTransferencia, nil
	}
	return "", fmt.Errorf("método de pago desconocido: %q", s)
}

// Wire returns the lowercase form POST /ventas expects
func (m Method) Wire() string {
	return strings.ToLower(string(m))
}

// IsCash reports whether the method takes tendered cash and change
func (m Method) IsCash() bool {
	return m == MethodEfectivo
}

// PaymentSelection is the seller's current payment choice.
// MontoPagado is only meaningful for cash.
type PaymentSelection struct {
	Metodo      Method `json:"metodo_pago"`
	MontoPagado int64  `json:"monto_pagado"`
}

// DefaultSelection is the state a screen starts from and returns to
// after a successful sale
func DefaultSelection() PaymentSelection {
	return PaymentSelection{Metodo: MethodEfectivo}
}
