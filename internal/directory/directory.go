// Package directory is the read-only set of users documents can be shared with.
package directory

import (
	"slices"
	"strings"

	"doclib/internal/model"
)

// Directory looks up users by id and by free text.
type Directory struct {
	users []model.User
	byID  map[string]int
}

// New indexes users. Later duplicates of an id are ignored.
func New(users []model.User) *Directory {
	d := &Directory{byID: make(map[string]int, len(users))}
	for _, u := range users {
		if _, dup := d.byID[u.ID]; dup {
			continue
		}
		d.byID[u.ID] = len(d.users)
		d.users = append(d.users, u)
	}
	return d
}

// Get returns the user with id.
func (d *Directory) Get(id string) (model.User, bool) {
	i, ok := d.byID[id]
	if !ok {
		return model.User{}, false
	}
	return d.users[i], true
}

// List returns every user in directory order.
func (d *Directory) List() []model.User {
	return slices.Clone(d.users)
}

// Search matches query case-insensitively against name, email and
// department. An empty query matches everyone.
func (d *Directory) Search(query string) []model.User {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.User, 0, len(d.users))
	for _, u := range d.users {
		if q == "" ||
			strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) ||
			strings.Contains(strings.ToLower(u.Department), q) {
			out = append(out, u)
		}
	}
	return out
}

// Candidates returns the users doc is not yet shared with.
func (d *Directory) Candidates(doc model.Document) []model.User {
	out := make([]model.User, 0, len(d.users))
	for _, u := range d.users {
		shared := slices.ContainsFunc(doc.SharedWith, func(g model.SharingGrant) bool { return g.UserID == u.ID })
		if !shared {
			out = append(out, u)
		}
	}
	return out
}
