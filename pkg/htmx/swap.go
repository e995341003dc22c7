package htmx

// SwapStrategy is a value for hx-swap or HX-Reswap.
type SwapStrategy string

const (
	SwapInnerHTML SwapStrategy = "innerHTML"
	SwapOuterHTML SwapStrategy = "outerHTML"
	SwapNone      SwapStrategy = "none"
)

// OOB returns the hx-swap-oob attribute value swapping the element with the
// same id as the rendered one.
func OOB(strategy SwapStrategy) string {
	if strategy == "" || strategy == SwapOuterHTML {
		return "true"
	}
	return string(strategy)
}
