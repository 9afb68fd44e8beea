package models

// WorkProfile is an independent attendance context, e.g. a separate job.
type WorkProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

const (
	DefaultProfileID    = "default"
	DefaultProfileName  = "Main Job"
	DefaultProfileColor = "blue"
)

func DefaultProfile() WorkProfile {
	return WorkProfile{
		ID:    DefaultProfileID,
		Name:  DefaultProfileName,
		Color: DefaultProfileColor,
	}
}
