package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons.
// It is constructed once at startup and passed down; there is no global
// instance.
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory.
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories.
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = &Repositories{
			Comment: NewCommentRepository(f.db),
			Guest:   NewGuestRepository(f.db),
		}
	})
	return f.repos
}

// GetCommentRepository returns the comment repository instance.
func (f *Factory) GetCommentRepository() CommentRepository {
	return f.GetRepositories().Comment
}

// GetGuestRepository returns the guest repository instance.
func (f *Factory) GetGuestRepository() GuestRepository {
	return f.GetRepositories().Guest
}
