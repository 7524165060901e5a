package models

import "time"

// AuthorRef is the image's stored author reference. An image either carries
// an explicit author identifier (which may point at a user that no longer
// exists) or no author at all; the two cases resolve differently.
type AuthorRef struct {
	id       string
	explicit bool
}

// ExplicitAuthor returns a reference to the given user identifier.
func ExplicitAuthor(id string) AuthorRef {
	return AuthorRef{id: id, explicit: true}
}

// NoAuthor returns the absent-author reference.
func NoAuthor() AuthorRef {
	return AuthorRef{}
}

// ID reports the stored author identifier and whether one is present.
func (r AuthorRef) ID() (string, bool) {
	return r.id, r.explicit
}

// Image is a stored image row. ID is generated by the store on insert.
type Image struct {
	ID        string    `db:"id"`
	Src       string    `db:"src"`
	Name      string    `db:"name"`
	Author    AuthorRef `db:"author"`
	CreatedAt time.Time `db:"created_at"`
}

// APIImage is the denormalized image record returned to clients. It is
// derived from Image plus the user set, never stored.
type APIImage struct {
	ID     string  `json:"id"`
	Src    string  `json:"src"`
	Name   string  `json:"name"`
	Author APIUser `json:"author"`
}
