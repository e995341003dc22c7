package htmx

// Response headers.
const (
	HeaderHXRedirect = "HX-Redirect"
	HeaderHXPushURL  = "HX-Push-Url"
	HeaderHXReswap   = "HX-Reswap"
	HeaderHXRetarget = "HX-Retarget"
	HeaderHXTrigger  = "HX-Trigger"
	HeaderHXRefresh  = "HX-Refresh"
)

// Request headers.
const (
	HeaderHXRequest    = "HX-Request"
	HeaderHXBoosted    = "HX-Boosted"
	HeaderHXTarget     = "HX-Target"
	HeaderHXCurrentURL = "HX-Current-URL"
)
