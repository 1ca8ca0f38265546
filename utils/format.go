package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rubPrinter = message.NewPrinter(language.Russian)

// FormatPrice renders a whole-ruble price with locale thousands grouping
// and the currency suffix, e.g. 12500 -> "12 500 руб.".
func FormatPrice(price int) string {
	return rubPrinter.Sprintf("%d руб.", price)
}
