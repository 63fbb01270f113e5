package dto

type CommandInput struct {
	Command string
}

type RouteOutput struct {
	Command   string
	Action    string
	ContentID string
}

type ScanOutput struct {
	State  string
	Effect string
	Action string
}
