package shell

// User facing text.
const (
	MenuTitle   = "Note Taking App"
	MenuAdd     = "1. Add Note"
	MenuView    = "2. View Notes"
	MenuExit    = "3. Exit"
	PromptInput = "Enter your choice: "
	PromptNote  = "Enter your note: "

	MsgNoteAdded     = "Note added!"
	MsgExiting       = "Exiting application."
	MsgInvalidChoice = "Invalid choice. Please try again."
	MsgNoNotes       = "No notes found. Add a note first!"
	MsgEmpty         = "Your notebook is empty."
	MsgWriteError    = "Error: Could not write to the notes file."
	MsgReadError     = "Error: Could not read the notes file."

	Header = "--- Your Notes ---"
	Footer = "------------------"
)

const (
	choiceAdd  = "1"
	choiceView = "2"
	choiceExit = "3"
)
