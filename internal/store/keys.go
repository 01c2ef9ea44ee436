package store

// Storage keys. Board data is namespaced per user; the label catalog,
// the account list and the session are single global documents. The
// catalog key is deliberately not user-scoped: labels are a shared
// taxonomy across accounts on the same machine.
const (
	LabelsKey  = "labels"
	UsersKey   = "users"
	SessionKey = "loggedInUser"
)

// BoardsKey returns the board-tree document key for one user
func BoardsKey(userID string) string {
	return "boardsData_" + userID
}
