package domain

// User is a profile resolved from the user directory.
type User struct {
	ID     string
	Name   string
	Sector string
	Role   string
}

// Client is an entry of the client directory.
type Client struct {
	ID       string
	Name     string
	Features []string
}

// HasFeature reports whether the client carries the feature flag.
// An empty id matches any client that carries at least one feature.
func (c Client) HasFeature(id string) bool {
	if id == "" {
		return len(c.Features) > 0
	}
	for _, f := range c.Features {
		if f == id {
			return true
		}
	}
	return false
}
