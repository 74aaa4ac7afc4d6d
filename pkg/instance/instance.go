package instance

import "os"

// GetID returns the process instance identifier used to tag logs. It prefers the
// explicit STOREFRONT_INSTANCE_ID, then the platform-provided DYNO or HOSTNAME.
func GetID() string {
	for _, key := range []string{"STOREFRONT_INSTANCE_ID", "DYNO", "HOSTNAME"} {
		if id := os.Getenv(key); id != "" {
			return id
		}
	}
	return "local"
}
