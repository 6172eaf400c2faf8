package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/openfleet/fleetbook"
)

// UsersMarkdown renders the user roster. Passwords never appear.
func UsersMarkdown(u *fleetbook.Users) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Users")

	var rows [][]string
	for user := range u.All() {
		active := "yes"
		if !user.Active {
			active = "no"
		}
		rows = append(rows, []string{user.ID, user.Username, user.Role.Name(), active})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Username", "Role", "Active"},
		Rows:   rows,
	})
	return doc.String()
}

// WhoamiMarkdown renders the active session.
func WhoamiMarkdown(s *fleetbook.Session) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Session")
	doc.Table(md.TableSet{
		Header: []string{"Username", "Role", "Logged in"},
		Rows: [][]string{
			{s.Username, s.Role.Name(), s.LoginTime.Format("2006-01-02 15:04")},
		},
	})
	return doc.String()
}
