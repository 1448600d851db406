package services

import (
	"strings"

	"pulsebite/entity"
)

// Priority is the kitchen attention tier of a ticket.
type Priority string

const (
	PriorityExpedite Priority = "Expedite"
	PriorityRush     Priority = "Rush"
	PriorityStandard Priority = "Standard"
)

// ResolvePriority classifies an order from its lines against the current
// menu. Stateless; recomputed whenever the lines or the catalog change.
//
// Expedite: any line in a category containing "hot", or 3+ lines.
// Rush: 2 lines. Standard: everything else.
// Lines whose menu item is gone skip the category check but still count
// toward the line thresholds.
func ResolvePriority(lines []entity.OrderLine, menuByID map[uint]entity.MenuItem) Priority {
	containsHot := false
	for _, line := range lines {
		item, ok := menuByID[line.MenuItemID]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(item.Category), "hot") {
			containsHot = true
			break
		}
	}
	if containsHot || len(lines) >= 3 {
		return PriorityExpedite
	}
	if len(lines) >= 2 {
		return PriorityRush
	}
	return PriorityStandard
}
