package session

// User facing error messages. Every failure mode collapses to
// one of these or to the underlying error's own message.
const (
	MessageEmptyAddress    = "Please enter an IP or use 'Use my IP'."
	MessageLookupFailed    = "Lookup failed"
	MessageNoPublicIP      = "Could not determine your public IP"
	MessageDetectionFailed = "Could not fetch your public IP"
)

func errorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
