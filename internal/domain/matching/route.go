package matching

// FeedThreshold is the lowest ATS score that is routed to the full job feed.
const FeedThreshold = 50

type Destination string

const (
	DestinationFeed        Destination = "feed"
	DestinationSuggestions Destination = "suggestions"
)

// Route decides where a scored candidate goes next.
func Route(score int) Destination {
	if score >= FeedThreshold {
		return DestinationFeed
	}
	return DestinationSuggestions
}
