package memory

import (
	"time"

	"tutorhive-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// TutorCache keeps recently read tutor profiles in process memory so
// listing and detail endpoints do not hit the database on every request.
// Entries are invalidated whenever a review mutation changes the rating.
type TutorCache struct {
	cache *cache.Cache
}

func NewTutorCache() *TutorCache {
	// Create a cache with a default expiration time of 5 minutes, and which
	// purges expired items every 10 minutes
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &TutorCache{
		cache: c,
	}
}

func (r *TutorCache) Save(profile *entity.TutorProfile) {
	r.cache.Set(profile.UserId.String(), profile, cache.DefaultExpiration)
}

func (r *TutorCache) Get(tutorId uuid.UUID) (*entity.TutorProfile, bool) {
	if x, found := r.cache.Get(tutorId.String()); found {
		return x.(*entity.TutorProfile), true
	}
	return nil, false
}

func (r *TutorCache) Invalidate(tutorId uuid.UUID) {
	r.cache.Delete(tutorId.String())
}
