package session

import (
	"strconv"

	"github.com/patrickmn/go-cache"
)

// Store keeps one session per user for the process lifetime.
// Sessions never expire and the store is unbounded; at this bot's
// scale that is a documented limit, not a bug. The cache handles
// concurrent access for different users; updates to one user's
// session arrive sequentially from the bot's update loop.
type Store struct {
	c *cache.Cache
}

// NewStore creates an empty in-memory session store.
func NewStore() *Store {
	return &Store{c: cache.New(cache.NoExpiration, 0)}
}

// Get returns the user's session, or the default StepNone session
// if the user has none. It never fails.
func (st *Store) Get(userID int64) Session {
	if v, ok := st.c.Get(key(userID)); ok {
		return v.(Session)
	}
	return New()
}

// Set overwrites the user's session.
func (st *Store) Set(userID int64, s Session) {
	st.c.Set(key(userID), s, cache.NoExpiration)
}

// Clear resets the user's session to the default state.
func (st *Store) Clear(userID int64) {
	st.c.Delete(key(userID))
}

// Len returns the number of stored sessions.
func (st *Store) Len() int {
	return st.c.ItemCount()
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
