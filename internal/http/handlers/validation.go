package handlers

import "strings"

// validateItem checks a create request. Bulk rows use validateBulkRow
// instead, which tolerates a missing category.
func validateItem(req ItemRequest) string {
	if strings.TrimSpace(req.Item) == "" || strings.TrimSpace(req.Supplier) == "" || strings.TrimSpace(req.Category) == "" {
		return "item, supplier, category required"
	}
	return validateNumbers(req)
}

func validateBulkRow(req ItemRequest) string {
	if strings.TrimSpace(req.Item) == "" || strings.TrimSpace(req.Supplier) == "" {
		return "item, supplier required"
	}
	return validateNumbers(req)
}

func validateNumbers(req ItemRequest) string {
	if req.Quantity < 0 {
		return "quantity cannot be negative"
	}
	if req.Price < 0 {
		return "price cannot be negative"
	}
	return ""
}

// validatePatch applies the same non-negativity rules to the fields a
// partial update actually carries.
func validatePatch(req ItemPatchRequest) string {
	if req.Quantity != nil && *req.Quantity < 0 {
		return "quantity cannot be negative"
	}
	if req.Price != nil && *req.Price < 0 {
		return "price cannot be negative"
	}
	return ""
}
