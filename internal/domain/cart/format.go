// internal/domain/cart/format.go
package cart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// es-CL groups thousands with dots and has no decimal subunit in
// everyday peso amounts, so "$1.234" is the whole story.
var pesoPrinter = message.NewPrinter(language.Spanish)

// FormatPesos renders an amount the way the terminal displays money
func FormatPesos(amount int64) string {
	return pesoPrinter.Sprintf("$%d", amount)
}
