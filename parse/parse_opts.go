package parse

type options struct {
	commentMarker byte
}

func defaultOpts() options {
	return options{commentMarker: '#'}
}

// Option configures the sentence iterator.
type Option func(*options)

// WithCommentMarker sets the single character that starts a metadata line.
// The default is '#'.
func WithCommentMarker(marker byte) Option {
	return func(o *options) { o.commentMarker = marker }
}
