package command

// Outcome identifies which message a successful command produced.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGreeting
	OutcomeAdded
	OutcomeExists    // add with the same name and phone
	OutcomeConflict  // add with the same name and another phone
	OutcomeChanged
	OutcomeUnchanged // change to the phone already stored
	OutcomePhone
	OutcomeList
	OutcomeHelp
	OutcomeExit
)

// Entry is one name/phone pair in a listing.
type Entry struct {
	Name  string
	Phone string
}

// Result describes what a command did. Rendering is left to the caller.
type Result struct {
	Outcome  Outcome
	Name     string
	Phone    string
	Previous string  // Phone held before a change, or the conflicting stored phone.
	Entries  []Entry // Populated for OutcomeList.
}

// Quit reports whether the session should end after this result.
func (r Result) Quit() bool {
	return r.Outcome == OutcomeExit
}
