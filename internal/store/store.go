// Package store holds the loaded dataset for the lifetime of the process.
// The dataset is written once at startup and only read afterwards.
package store

import (
	"errors"
	"sync"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/models"
)

var (
	// ErrAlreadyPopulated is returned when the store has already been
	// populated or marked failed.
	ErrAlreadyPopulated = errors.New("store already populated")

	// ErrNotLoaded is returned by Dataset before any load has finished.
	ErrNotLoaded = errors.New("dataset not loaded")
)

// Store is a write-once holder for the dataset and the outcome of loading it.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	dataset *models.Dataset
	loadErr error
	done    bool
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Populate stores ds. The dataset must not be modified afterwards.
func (s *Store) Populate(ds *models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return ErrAlreadyPopulated
	}
	if ds == nil {
		ds = &models.Dataset{}
	}
	ds.Normalize()
	s.dataset = ds
	s.done = true
	return nil
}

// Fail records that loading failed. The store stays empty.
func (s *Store) Fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return ErrAlreadyPopulated
	}
	if err == nil {
		err = ErrNotLoaded
	}
	s.loadErr = err
	s.done = true
	return nil
}

// Dataset returns the loaded dataset, the load error if loading failed, or
// ErrNotLoaded if neither has happened yet.
func (s *Store) Dataset() (*models.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.loadErr != nil:
		return nil, s.loadErr
	case s.dataset == nil:
		return nil, ErrNotLoaded
	}
	return s.dataset, nil
}

// Ready reports whether a dataset is available.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset != nil
}

// Stats is a point-in-time size summary of the dataset.
type Stats struct {
	Plants          int `json:"plants"`
	SoilEntries     int `json:"soilEntries"`
	MoistureEntries int `json:"moistureEntries"`
}

// Stats returns dataset sizes; all zero when nothing is loaded.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dataset == nil {
		return Stats{}
	}
	return Stats{
		Plants:          len(s.dataset.Plants),
		SoilEntries:     len(s.dataset.SoilData),
		MoistureEntries: len(s.dataset.MoistureData),
	}
}
