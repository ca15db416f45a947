package qa

// RemoteStatus enumerates the outcomes of a remote generation attempt. Making
// the cascade explicit keeps all three paths testable instead of hiding them
// behind nil returns and caught panics.
type RemoteStatus int

const (
	// RemoteSuccess carries usable generated text.
	RemoteSuccess RemoteStatus = iota
	// RemoteUnavailable means the remote path cannot serve this request and
	// the caller should compose a local answer. Never surfaced as an error.
	RemoteUnavailable
	// RemoteFatal marks an unexpected failure that should become the terminal
	// user-visible error string.
	RemoteFatal
)

// RemoteResult is the outcome of the remote generation adapter.
type RemoteResult struct {
	Status RemoteStatus
	Text   string
	Err    error
}
