package recipe

import (
	"Foodgram-Backend/domain"
	"fmt"
	"strings"
)

// RenderShoppingList writes the header line followed by "{name} {unit} - {total}"
// for every item. Each line ends with a newline.
func RenderShoppingList(items []domain.ShoppingListItem) string {
	var b strings.Builder
	b.WriteString(domain.ShoppingListHeader)
	b.WriteByte('\n')
	for _, item := range items {
		fmt.Fprintf(&b, "%s %s - %d\n", item.Name, item.MeasurementUnit, item.TotalAmount)
	}
	return b.String()
}
