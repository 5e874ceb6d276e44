package domain

// Quote is a cross-reference quote drawn from the dated-entries collection.
// When the same passage appears in another document, the two are linked.
type Quote struct {
	// Text is the trimmed quote text.
	Text string

	// Date is the display label of the day featuring this quote.
	Date string
}
