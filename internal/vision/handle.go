package vision

// Handle is the process-wide model slot. It is either loaded or unavailable
// and never changes after startup, so it is safe to share between requests.
type Handle struct {
	classifier *Classifier
}

// Loaded returns a handle holding c. A nil c yields an unavailable handle.
func Loaded(c *Classifier) Handle {
	return Handle{classifier: c}
}

// Unavailable returns a handle for a model that failed to load.
func Unavailable() Handle {
	return Handle{}
}

// Classifier returns the loaded classifier and true, or nil and false.
func (h Handle) Classifier() (*Classifier, bool) {
	return h.classifier, h.classifier != nil
}

// Available reports whether a model is loaded.
func (h Handle) Available() bool {
	return h.classifier != nil
}

// Close releases the model if one is loaded.
func (h Handle) Close() error {
	if h.classifier == nil {
		return nil
	}
	return h.classifier.Close()
}
