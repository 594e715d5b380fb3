package store

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/dmitrijs2005/biovault/internal/common"
	"github.com/dmitrijs2005/biovault/internal/cryptox"
	"github.com/dmitrijs2005/biovault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*MemoryStore, *cryptox.TemplateCipher) {
	t.Helper()
	cipher, err := cryptox.NewRandomTemplateCipher()
	require.NoError(t, err)
	return NewMemoryStore(cipher), cipher
}

func testTemplate(t *testing.T, seed int64) []byte {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	template := make([]byte, 512)
	r.Read(template)
	return template
}

func enrolledUser(t *testing.T, cipher *cryptox.TemplateCipher, id string, template []byte) *models.User {
	t.Helper()
	encrypted, err := cipher.Encrypt(template)
	require.NoError(t, err)
	return &models.User{
		ID:                id,
		Name:              "Test Subject",
		Role:              "analyst",
		MaxAccessLevel:    models.AccessLevelRestricted,
		EncryptedTemplate: encrypted,
		Modality:          models.ModalityFacial,
		Active:            true,
	}
}

func TestMemoryStore_SaveAndFindByID(t *testing.T) {
	s, cipher := newTestStore(t)
	ctx := context.Background()

	user := enrolledUser(t, cipher, "USER-001", testTemplate(t, 1))
	require.True(t, s.Save(ctx, user))

	found, err := s.FindByID(ctx, "USER-001")
	require.NoError(t, err)
	assert.Equal(t, "USER-001", found.ID)

	_, err = s.FindByID(ctx, "USER-404")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.FindByID(ctx, "")
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestMemoryStore_SaveRejectsDuplicateID(t *testing.T) {
	s, cipher := newTestStore(t)
	ctx := context.Background()

	require.True(t, s.Save(ctx, enrolledUser(t, cipher, "USER-001", testTemplate(t, 1))))
	assert.False(t, s.Save(ctx, enrolledUser(t, cipher, "USER-001", testTemplate(t, 2))))
}

func TestMemoryStore_SaveRejectsDuplicateTemplate(t *testing.T) {
	s, cipher := newTestStore(t)
	ctx := context.Background()
	template := testTemplate(t, 3)

	require.True(t, s.Save(ctx, enrolledUser(t, cipher, "USER-001", template)))

	// Same biometric under a different identity must be refused even though
	// the ciphertexts differ (fresh nonce per encryption).
	assert.False(t, s.Save(ctx, enrolledUser(t, cipher, "USER-002", template)))

	// A different template is fine.
	assert.True(t, s.Save(ctx, enrolledUser(t, cipher, "USER-003", testTemplate(t, 4))))
}

func TestMemoryStore_SaveValidation(t *testing.T) {
	s, cipher := newTestStore(t)
	ctx := context.Background()

	assert.False(t, s.Save(ctx, nil))
	assert.False(t, s.Save(ctx, enrolledUser(t, cipher, "", testTemplate(t, 5))))

	// A template this store's key cannot open is rejected outright.
	other, err := cryptox.NewRandomTemplateCipher()
	require.NoError(t, err)
	foreign, err := other.Encrypt(testTemplate(t, 6))
	require.NoError(t, err)
	assert.False(t, s.Save(ctx, &models.User{ID: "USER-001", EncryptedTemplate: foreign, Modality: models.ModalityFacial, Active: true}))
}

func TestMemoryStore_FindByTemplate(t *testing.T) {
	s, cipher := newTestStore(t)
	ctx := context.Background()
	template := testTemplate(t, 7)

	require.True(t, s.Save(ctx, enrolledUser(t, cipher, "USER-001", template)))

	found, err := s.FindByTemplate(ctx, template, models.ModalityFacial)
	require.NoError(t, err)
	assert.Equal(t, "USER-001", found.ID)

	// Unrelated template scores below the threshold.
	_, err = s.FindByTemplate(ctx, testTemplate(t, 8), models.ModalityFacial)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// Validation and unsupported modalities.
	_, err = s.FindByTemplate(ctx, nil, models.ModalityFacial)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	_, err = s.FindByTemplate(ctx, template, models.ModalityIris)
	assert.ErrorIs(t, err, common.ErrUnsupportedModality)
}

func TestMemoryStore_FindByTemplate_ReturnsInactiveSkipsOtherLengths(t *testing.T) {
	s, cipher := newTestStore(t)
	ctx := context.Background()
	template := testTemplate(t, 9)

	user := enrolledUser(t, cipher, "USER-001", template)
	require.True(t, s.Save(ctx, user))
	require.True(t, s.Update(ctx, user.Deactivated()))

	// A deactivated record still identifies; rejecting it is the engine's job.
	found, err := s.FindByTemplate(ctx, template, models.ModalityFacial)
	require.NoError(t, err)
	assert.Equal(t, "USER-001", found.ID)
	assert.False(t, found.Active)

	// Length mismatch never reaches the matcher.
	_, err = s.FindByTemplate(ctx, template[:256], models.ModalityFacial)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryStore_Update(t *testing.T) {
	s, cipher := newTestStore(t)
	ctx := context.Background()

	user := enrolledUser(t, cipher, "USER-001", testTemplate(t, 10))
	require.True(t, s.Save(ctx, user))

	assert.False(t, s.Update(ctx, enrolledUser(t, cipher, "USER-404", testTemplate(t, 11))))

	require.True(t, s.Update(ctx, user.Deactivated()))
	found, err := s.FindByID(ctx, "USER-001")
	require.NoError(t, err)
	assert.False(t, found.Active)
}

func TestMemoryStore_ConcurrentSaveSameID(t *testing.T) {
	s, cipher := newTestStore(t)
	ctx := context.Background()

	const attempts = 32
	results := make(chan bool, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		user := enrolledUser(t, cipher, "USER-001", testTemplate(t, int64(100+i)))
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.Save(ctx, user)
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "exactly one concurrent save of the same id may succeed")
}

func TestMemoryStore_ConcurrentSaveDistinctIDs(t *testing.T) {
	s, cipher := newTestStore(t)
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	failures := make(chan string, n)

	for i := 0; i < n; i++ {
		id := fmt.Sprintf("USER-%03d", i)
		user := enrolledUser(t, cipher, id, testTemplate(t, int64(200+i)))
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !s.Save(ctx, user) {
				failures <- user.ID
			}
		}()
	}
	wg.Wait()
	close(failures)

	for id := range failures {
		t.Errorf("enrollment of distinct id %s failed", id)
	}

	for i := 0; i < n; i++ {
		_, err := s.FindByID(ctx, fmt.Sprintf("USER-%03d", i))
		if errors.Is(err, common.ErrorNotFound) {
			t.Errorf("USER-%03d missing after concurrent enrollment", i)
		}
	}
}
