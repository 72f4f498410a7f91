package ui

// projectsLoadedMsg reports the end of a repository fetch. The repositories
// themselves are read back from the ProjectsService.
type projectsLoadedMsg struct {
	Count int
	Err   error
}

// OpenAppMsg asks the desktop to open or focus an application window
type OpenAppMsg struct {
	App string
}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// QuitMsg requests quitting the desktop
type QuitMsg struct{}
