package services

import "github.com/avoronova/imagevault/internal/server/models"

// unknownAuthor is the sentinel embedded when an image has no author and
// the user collection is empty.
var unknownAuthor = models.APIUser{ID: "unknown", Username: "unknown"}

// userIndex is the in-memory lookup built once per catalog call from a full
// scan of the user collection. It trades memory for avoiding a per-image
// store lookup; fine for small datasets.
type userIndex struct {
	byID        map[string]models.APIUser
	defaultUser models.APIUser
}

// buildUserIndex maps users by identifier and picks the default author:
// the first user in store order, or the unknown sentinel when there are
// no users at all.
func buildUserIndex(users []models.User) userIndex {
	idx := userIndex{
		byID:        make(map[string]models.APIUser, len(users)),
		defaultUser: unknownAuthor,
	}
	for i, u := range users {
		api := models.APIUser{ID: u.ID, Username: u.Username}
		idx.byID[u.ID] = api
		if i == 0 {
			idx.defaultUser = api
		}
	}
	return idx
}

// resolveAuthor implements the author resolution policy:
//
//  1. an explicit author id matching a known user embeds that user;
//  2. an explicit author id with no matching user embeds a synthetic user
//     whose id and username both equal the stored id (graceful
//     degradation, not an error);
//  3. an absent author embeds the index's default user.
func resolveAuthor(ref models.AuthorRef, idx userIndex) models.APIUser {
	id, ok := ref.ID()
	if !ok {
		return idx.defaultUser
	}
	if user, found := idx.byID[id]; found {
		return user
	}
	return models.APIUser{ID: id, Username: id}
}

// resolveOwner returns the identifier the ownership check compares the
// acting identity against, using the same default-assignment rule as
// resolveAuthor.
func resolveOwner(ref models.AuthorRef, idx userIndex) string {
	return resolveAuthor(ref, idx).ID
}
