package models

// Player is a person sessions and loans can reference.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// PlayerInput is the payload for create/update calls.
type PlayerInput struct {
	Name string `json:"name"`
}

func (in PlayerInput) Validate() FieldErrors {
	fe := FieldErrors{}
	if in.Name == "" {
		fe["name"] = "name is required"
	}
	return fe
}

// Location is a place where sessions happen. PlayCount is derived by the
// backend.
type Location struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PlayCount int    `json:"playCount"`
}

// LocationInput is the payload for create/update calls.
type LocationInput struct {
	Name string `json:"name"`
}

func (in LocationInput) Validate() FieldErrors {
	fe := FieldErrors{}
	if in.Name == "" {
		fe["name"] = "name is required"
	}
	return fe
}
