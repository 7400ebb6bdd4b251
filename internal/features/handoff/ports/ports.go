package ports

// LinkOpener defines the interface for opening a deep link in the customer's
// environment. This is a Secondary Port (Driven Port); a nil error means a
// handle on the opened target was obtained, anything else is treated as a
// blocked or failed navigation.
type LinkOpener interface {
	// Open navigates to the URL.
	Open(url string) error
}
