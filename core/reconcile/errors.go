package reconcile

import "fmt"

// LookupError reports an item that matched no stock record by SKU or name.
type LookupError struct {
	Name string
	SKU  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("stock entry for %q (SKU %q) was not found", e.Name, e.SKU)
}
