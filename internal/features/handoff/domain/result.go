package domain

// Result is the outcome of a hand-off attempt. The dispatcher cannot confirm
// actual delivery; Delivered only means the chat link navigation was not
// detectably blocked.
type Result string

const (
	// ResultDelivered means the chat link was opened and a handle obtained.
	ResultDelivered Result = "DELIVERED"
	// ResultFailedNeedsFallback means delivery could not be attempted or was
	// blocked; the caller must present the text for manual copy.
	ResultFailedNeedsFallback Result = "FAILED_NEEDS_FALLBACK"
)
