package dashboard

// Settings is the externally-injected, process-wide UI preference object.
// It is deliberately detached from document data flow; persistence, if any,
// belongs to a settings collaborator.
type Settings struct {
	DarkMode bool
}
