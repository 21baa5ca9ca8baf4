package domain

// FeedConfig represents RSS feed configuration
type FeedConfig struct {
	Title string `json:"title"`
	// Link is the feed's home link, usually the notes folder.
	Link string `json:"link"`
	// Path is where the RSS document is written.
	Path string `json:"path"`
}
