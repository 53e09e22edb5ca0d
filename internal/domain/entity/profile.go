package entity

// Profile is a named AWS credential profile and the region it resolves to.
type Profile struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}
