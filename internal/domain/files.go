package domain

import "strings"

// VirtualFile is a read-only text file listed by `ls` and printed by `cat`
type VirtualFile struct {
	Content []string
	Name    string
}

// VirtualFiles is the fixed content of the home directory
var VirtualFiles = []VirtualFile{
	{
		Name: "about.txt",
		Content: []string{
			"Full stack developer, 20 years old, building things since 2023.",
			"Two years working in tech, mostly TypeScript, Go and SQL.",
			"Favourite food: feijoada. Favourite dessert: lemon pie.",
		},
	},
	{
		Name: "skills.txt",
		Content: []string{
			"languages : Go, TypeScript, Python, SQL",
			"frontend  : Angular, HTML, SCSS",
			"backend   : REST, gRPC, PostgreSQL, SQLite",
			"tooling   : git, docker, linux, tmux",
		},
	},
	{
		Name: "contact.txt",
		Content: []string{
			"email   : hello@deskfolio.dev",
			"github  : github.com/deskfolio",
			"linkedin: linkedin.com/in/deskfolio",
		},
	},
	{
		Name: "readme.md",
		Content: []string{
			"# deskfolio",
			"A portfolio that pretends to be a classic desktop.",
			"Type `help` to see what this terminal can do.",
		},
	},
}

// FindFile looks a virtual file up by name (case-insensitive)
func FindFile(name string) (VirtualFile, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range VirtualFiles {
		if strings.ToLower(f.Name) == name {
			return f, true
		}
	}
	return VirtualFile{}, false
}
