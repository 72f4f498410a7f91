package domain

import (
	"sort"
	"strings"
)

// AppID identifies one of the virtual applications a window can host
type AppID string

const (
	AppAbout    AppID = "about"
	AppContact  AppID = "contact"
	AppFinder   AppID = "finder"
	AppNotes    AppID = "notes"
	AppProjects AppID = "projects"
	AppSettings AppID = "settings"
	AppTerminal AppID = "terminal"
)

// AppDescriptor is the single per-app record of presentation and sizing data
type AppDescriptor struct {
	Aliases       []string
	DefaultHeight int
	DefaultWidth  int
	ID            AppID
	IconKey       string
	MinHeight     int
	MinWidth      int
	Title         string
}

// Apps is the closed set of applications, in desktop icon order
var Apps = []AppDescriptor{
	{
		ID: AppAbout, Title: "About Me", IconKey: "AB",
		DefaultWidth: 560, DefaultHeight: 460, MinWidth: 340, MinHeight: 260,
		Aliases: []string{"about", "sobre", "aboutme"},
	},
	{
		ID: AppProjects, Title: "Projects", IconKey: "PR",
		DefaultWidth: 620, DefaultHeight: 440, MinWidth: 360, MinHeight: 260,
		Aliases: []string{"projects", "projetos", "repos"},
	},
	{
		ID: AppTerminal, Title: "Terminal", IconKey: "TM",
		DefaultWidth: 640, DefaultHeight: 420, MinWidth: 380, MinHeight: 260,
		Aliases: []string{"terminal", "term", "shell"},
	},
	{
		ID: AppContact, Title: "Contact", IconKey: "CT",
		DefaultWidth: 420, DefaultHeight: 300, MinWidth: 280, MinHeight: 200,
		Aliases: []string{"contact", "contato", "mail"},
	},
	{
		ID: AppFinder, Title: "Finder", IconKey: "FD",
		DefaultWidth: 560, DefaultHeight: 380, MinWidth: 320, MinHeight: 220,
		Aliases: []string{"finder", "files"},
	},
	{
		ID: AppNotes, Title: "Notes", IconKey: "NT",
		DefaultWidth: 480, DefaultHeight: 360, MinWidth: 300, MinHeight: 220,
		Aliases: []string{"notes", "notas"},
	},
	{
		ID: AppSettings, Title: "Settings", IconKey: "ST",
		DefaultWidth: 460, DefaultHeight: 340, MinWidth: 300, MinHeight: 220,
		Aliases: []string{"settings", "config", "ajustes"},
	},
}

// DefaultDock is the dock content used when no snapshot exists
var DefaultDock = []AppID{AppFinder, AppNotes, AppTerminal, AppProjects, AppSettings}

// DesktopShortcuts are the icons drawn on the desktop surface
var DesktopShortcuts = []AppID{AppAbout, AppProjects, AppTerminal, AppContact}

// MenuItems are the labels of the top menu bar
var MenuItems = []string{"Finder", "File", "Edit", "View", "Go", "Window", "Help"}

// Descriptor returns the descriptor of an app, or false if the id is not part of the set
func Descriptor(id AppID) (AppDescriptor, bool) {
	for _, a := range Apps {
		if a.ID == id {
			return a, true
		}
	}
	return AppDescriptor{}, false
}

// IsValidApp reports whether id names a known app
func IsValidApp(id AppID) bool {
	_, ok := Descriptor(id)
	return ok
}

// ResolveAlias maps a user-typed name to an app id (case-insensitive)
func ResolveAlias(name string) (AppID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	for _, a := range Apps {
		if string(a.ID) == name {
			return a.ID, true
		}
		for _, alias := range a.Aliases {
			if alias == name {
				return a.ID, true
			}
		}
	}
	return "", false
}

// AliasNames returns every accepted alias, sorted
func AliasNames() []string {
	var names []string
	for _, a := range Apps {
		names = append(names, a.Aliases...)
	}
	sort.Strings(names)
	return names
}
