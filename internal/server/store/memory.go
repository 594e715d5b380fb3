package store

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/biovault/internal/common"
	"github.com/dmitrijs2005/biovault/internal/cryptox"
	"github.com/dmitrijs2005/biovault/internal/matcher"
	"github.com/dmitrijs2005/biovault/internal/models"
)

// templateKey indexes users by template content within one modality. The
// hash narrows candidates; equality is always confirmed on the decrypted
// bytes, so the index never decides a collision by hash alone.
type templateKey struct {
	modality models.Modality
	digest   [sha256.Size]byte
}

// MemoryStore is the in-memory Repository. A single RWMutex makes the
// check-then-insert of Save one atomic step; templates are held encrypted
// and decrypted transiently for comparisons.
type MemoryStore struct {
	mu         sync.RWMutex
	byID       map[string]*models.User
	byTemplate map[templateKey][]string
	cipher     *cryptox.TemplateCipher
}

func NewMemoryStore(cipher *cryptox.TemplateCipher) *MemoryStore {
	return &MemoryStore{
		byID:       make(map[string]*models.User),
		byTemplate: make(map[templateKey][]string),
		cipher:     cipher,
	}
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty user id", common.ErrInvalidArgument)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

func (s *MemoryStore) FindByTemplate(ctx context.Context, template []byte, modality models.Modality) (*models.User, error) {
	if len(template) == 0 {
		return nil, fmt.Errorf("%w: empty template", common.ErrInvalidArgument)
	}

	m, err := matcher.ForModality(modality)
	if err != nil {
		return nil, err
	}
	threshold, err := matcher.Threshold(modality)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Inactive users are still returned; the caller decides what a match
	// against a deactivated record means.
	for _, user := range s.byID {
		if user.Modality != modality {
			continue
		}

		stored, err := s.cipher.Decrypt(user.EncryptedTemplate)
		if err != nil {
			// A record this key cannot open never matches.
			continue
		}
		if len(stored) != len(template) {
			continue
		}

		score, err := m.Similarity(template, stored)
		if err != nil {
			continue
		}
		if score >= threshold {
			return user, nil
		}
	}

	return nil, common.ErrorNotFound
}

func (s *MemoryStore) Save(ctx context.Context, user *models.User) bool {
	if user == nil || user.ID == "" {
		return false
	}

	plain, err := s.cipher.Decrypt(user.EncryptedTemplate)
	if err != nil {
		return false
	}
	key := templateKey{modality: user.Modality, digest: sha256.Sum256(plain)}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[user.ID]; exists {
		return false
	}

	// Hash hit alone is not enough: confirm content equality against each
	// candidate's decrypted template.
	for _, candidateID := range s.byTemplate[key] {
		candidate, ok := s.byID[candidateID]
		if !ok || !candidate.Active {
			continue
		}
		candidatePlain, err := s.cipher.Decrypt(candidate.EncryptedTemplate)
		if err != nil {
			continue
		}
		if bytes.Equal(candidatePlain, plain) {
			return false
		}
	}

	s.byID[user.ID] = user
	s.byTemplate[key] = append(s.byTemplate[key], user.ID)
	return true
}

func (s *MemoryStore) Update(ctx context.Context, user *models.User) bool {
	if user == nil || user.ID == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old, exists := s.byID[user.ID]
	if !exists {
		return false
	}

	if !bytes.Equal(old.EncryptedTemplate, user.EncryptedTemplate) {
		oldPlain, errOld := s.cipher.Decrypt(old.EncryptedTemplate)
		newPlain, errNew := s.cipher.Decrypt(user.EncryptedTemplate)
		if errOld == nil {
			s.removeFromIndex(templateKey{modality: old.Modality, digest: sha256.Sum256(oldPlain)}, user.ID)
		}
		if errNew == nil {
			key := templateKey{modality: user.Modality, digest: sha256.Sum256(newPlain)}
			s.byTemplate[key] = append(s.byTemplate[key], user.ID)
		}
	}

	s.byID[user.ID] = user
	return true
}

func (s *MemoryStore) removeFromIndex(key templateKey, id string) {
	ids := s.byTemplate[key]
	for i, candidate := range ids {
		if candidate == id {
			s.byTemplate[key] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(s.byTemplate[key]) == 0 {
		delete(s.byTemplate, key)
	}
}
