package domain

import (
	"slices"
	"strings"
)

// EmptyInventoryMessage is reported when the player holds nothing.
const EmptyInventoryMessage = "Your inventory is empty."

// Inventory is an ordered set of item names.
type Inventory []string

// Has reports whether the item is held.
func (inv Inventory) Has(item string) bool {
	return slices.Contains(inv, item)
}

// Add appends the item unless already held. It reports whether the inventory changed.
func (inv *Inventory) Add(item string) bool {
	if inv.Has(item) {
		return false
	}
	*inv = append(*inv, item)
	return true
}

// InventoryReport is a snapshot of held items in grant order.
type InventoryReport struct {
	Items []string `json:"items"`
	Empty bool     `json:"empty"`
}

// Report builds a snapshot detached from the inventory.
func (inv Inventory) Report() InventoryReport {
	items := slices.Clone([]string(inv))
	if items == nil {
		items = []string{}
	}
	return InventoryReport{Items: items, Empty: len(items) == 0}
}

// String renders the report as player-facing narrative.
func (r InventoryReport) String() string {
	if r.Empty || len(r.Items) == 0 {
		return EmptyInventoryMessage
	}
	var sb strings.Builder
	sb.WriteString("Your inventory contains:")
	for _, item := range r.Items {
		sb.WriteString("\n- ")
		sb.WriteString(item)
	}
	return sb.String()
}
