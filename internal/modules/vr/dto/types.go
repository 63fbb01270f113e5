package dto

type StartInput struct {
	ContentID string
}

type StartOutput struct {
	RunID           string
	ContentID       string
	Name            string
	DurationMinutes int
	Steps           int
}

type EntryOutput struct {
	ID              string
	Name            string
	DurationMinutes int
	ContentType     string
	Description     string
	Difficulty      string
}
