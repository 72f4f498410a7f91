package domain

import "time"

// Repository is a public source repository shown in the Projects app
type Repository struct {
	Archived    bool
	Description string
	Fork        bool
	Language    string
	Name        string
	PushedAt    time.Time
	Stars       int
	URL         string
}
