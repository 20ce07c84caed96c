package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

var ErrCacheUnavailable = errors.New("session state cache unavailable")

const (
	draftKey  = "draft"
	filterKey = "filter"
)

// SessionState keeps the small per-session values that should survive a
// page reload: the unsubmitted form fields and the active filter. Drafts
// expire with the session; the filter is kept until replaced.
type SessionState struct {
	client    *redis.Client
	draftTTL  time.Duration
	cacheLock sync.RWMutex
}

// DraftFields are the raw creation-form values, stored as typed by the
// user, before any validation.
type DraftFields struct {
	Text     string `json:"text"`
	Date     string `json:"date"`
	Priority string `json:"priority"`
}

// NewSessionState connects to Redis and verifies the connection.
func NewSessionState(redisURL string, draftTTL time.Duration) (*SessionState, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &SessionState{
		client:   client,
		draftTTL: draftTTL,
	}, nil
}

func (s *SessionState) available() bool {
	return s != nil && s.client != nil
}

// SaveDraft caches the form fields with the session TTL.
func (s *SessionState) SaveDraft(draft DraftFields) error {
	if !s.available() {
		return ErrCacheUnavailable
	}

	s.cacheLock.Lock()
	defer s.cacheLock.Unlock()

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %v", err)
	}

	ctx := context.Background()
	if err := s.client.Set(ctx, draftKey, data, s.draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache draft: %v", err)
	}
	return nil
}

// LoadDraft retrieves the cached form fields. A miss (or an unavailable
// cache) is not an error; the form simply starts empty.
func (s *SessionState) LoadDraft() (DraftFields, bool, error) {
	if !s.available() {
		return DraftFields{}, false, nil
	}

	s.cacheLock.RLock()
	defer s.cacheLock.RUnlock()

	ctx := context.Background()
	data, err := s.client.Get(ctx, draftKey).Bytes()
	if err == redis.Nil {
		return DraftFields{}, false, nil
	}
	if err != nil {
		return DraftFields{}, false, fmt.Errorf("failed to get draft: %v", err)
	}

	var draft DraftFields
	if err := json.Unmarshal(data, &draft); err != nil {
		return DraftFields{}, false, fmt.Errorf("failed to unmarshal draft: %v", err)
	}
	return draft, true, nil
}

// ClearDraft drops the cached form fields, the reset after a successful
// submission.
func (s *SessionState) ClearDraft() error {
	if !s.available() {
		return ErrCacheUnavailable
	}

	s.cacheLock.Lock()
	defer s.cacheLock.Unlock()

	ctx := context.Background()
	if err := s.client.Del(ctx, draftKey).Err(); err != nil {
		return fmt.Errorf("failed to clear draft: %v", err)
	}
	return nil
}

// SaveFilter persists the active filter so a reload restores it.
func (s *SessionState) SaveFilter(filter model.Filter) error {
	if !s.available() {
		return ErrCacheUnavailable
	}

	s.cacheLock.Lock()
	defer s.cacheLock.Unlock()

	ctx := context.Background()
	if err := s.client.Set(ctx, filterKey, string(filter), 0).Err(); err != nil {
		return fmt.Errorf("failed to persist filter: %v", err)
	}
	return nil
}

// LoadFilter retrieves the persisted filter, reporting whether one was
// stored. Unknown stored values fall back to the all filter.
func (s *SessionState) LoadFilter() (model.Filter, bool, error) {
	if !s.available() {
		return model.FilterAll, false, nil
	}

	s.cacheLock.RLock()
	defer s.cacheLock.RUnlock()

	ctx := context.Background()
	value, err := s.client.Get(ctx, filterKey).Result()
	if err == redis.Nil {
		return model.FilterAll, false, nil
	}
	if err != nil {
		return model.FilterAll, false, fmt.Errorf("failed to get filter: %v", err)
	}
	return model.ParseFilter(value), true, nil
}

func (s *SessionState) IsConnected() bool {
	if !s.available() {
		return false
	}
	ctx := context.Background()
	return s.client.Ping(ctx).Err() == nil
}

// Close closes the Redis connection.
func (s *SessionState) Close() error {
	if !s.available() {
		return nil
	}
	return s.client.Close()
}
