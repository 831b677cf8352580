// Package repository contains the repository layer for the Aethelgard Community API
package repository

// Repositories bundles one repository instance per collection. The file-backed
// repositories serialize writes through a per-collection mutex, so every
// consumer must share the same instance.
type Repositories struct {
	Users      *UsersRepository
	Forum      *ForumRepository
	Events     *EventsRepository
	Accounts   *AccountRepository
	Characters *CharacterRepository
}

// NewRepositories creates the repository set over the document store and the
// external game databases
func NewRepositories(store *FileStore, gameDB *GameDB) *Repositories {
	return &Repositories{
		Users:      NewUsersRepository(store),
		Forum:      NewForumRepository(store),
		Events:     NewEventsRepository(store),
		Accounts:   NewAccountRepository(gameDB.Auth),
		Characters: NewCharacterRepository(gameDB.Characters),
	}
}
