package usecases

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/repositories"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/services"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
)

type mockSelectionRepository struct {
	mu      sync.Mutex
	items   map[entities.SessionID]entities.OutfitSelection
	loadErr error
	saveErr error
	saves   int
}

func newMockSelectionRepository() *mockSelectionRepository {
	return &mockSelectionRepository{items: make(map[entities.SessionID]entities.OutfitSelection)}
}

func (m *mockSelectionRepository) Load(ctx context.Context, id entities.SessionID) (entities.OutfitSelection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return entities.OutfitSelection{}, m.loadErr
	}
	sel, ok := m.items[id]
	if !ok {
		return entities.OutfitSelection{}, repositories.ErrSelectionNotFound
	}
	return sel, nil
}

func (m *mockSelectionRepository) Save(ctx context.Context, id entities.SessionID, selection entities.OutfitSelection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[id] = selection
	m.saves++
	return nil
}

func (m *mockSelectionRepository) Close() error {
	return nil
}

type mockStyleAdvisor struct {
	text     string
	err      error
	received *entities.AdviceRequest
}

func (m *mockStyleAdvisor) GenerateAdvice(ctx context.Context, request *entities.AdviceRequest) (*entities.AdviceResult, error) {
	m.received = request
	if m.err != nil {
		return nil, m.err
	}
	return entities.NewAdviceResult(request.ID(), m.text), nil
}

func (m *mockStyleAdvisor) Close() error {
	return nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	return buf.Bytes()
}

func newSelectionUseCase() (*SelectionUseCase, *mockSelectionRepository) {
	repo := newMockSelectionRepository()
	return NewSelectionUseCase(repo, services.NewRecommendationDomainService()), repo
}

const session = entities.SessionID("session-1")

func TestSelectionUseCase_ViewEmptySession(t *testing.T) {
	uc, repo := newSelectionUseCase()

	out, err := uc.View(context.Background(), session)
	require.NoError(t, err)
	assert.False(t, out.Selection.HasAnyInput())
	assert.Empty(t, out.Recommendations)
	assert.Zero(t, repo.saves, "viewing must not create a session")
}

func TestSelectionUseCase_Actions(t *testing.T) {
	uc, _ := newSelectionUseCase()
	ctx := context.Background()

	_, err := uc.ApplySwatch(ctx, session, valueobjects.SlotUpper, "#FF0000")
	require.NoError(t, err)
	_, err = uc.SetColor(ctx, session, valueobjects.SlotLower, "#0000FF")
	require.NoError(t, err)
	_, err = uc.SetColor(ctx, session, valueobjects.SlotShoe, "#00FF00")
	require.NoError(t, err)
	_, err = uc.SelectOccasion(ctx, session, valueobjects.OccasionDating)
	require.NoError(t, err)

	out, err := uc.View(ctx, session)
	require.NoError(t, err)
	require.Len(t, out.Recommendations, 3)
	assert.Equal(t, "Current Date Night Look", out.Recommendations[0].Title)

	t.Run("rejected swatch leaves selection unchanged", func(t *testing.T) {
		_, err := uc.ApplySwatch(ctx, session, valueobjects.SlotUpper, "#ABCDEF")
		assert.True(t, errors.Is(err, entities.ErrNotSwatch))

		sel, err := uc.Load(ctx, session)
		require.NoError(t, err)
		assert.Equal(t, valueobjects.Color("#FF0000"), sel.Color(valueobjects.SlotUpper))
	})

	t.Run("reset", func(t *testing.T) {
		sel, err := uc.Reset(ctx, session)
		require.NoError(t, err)
		assert.False(t, sel.HasAnyInput())

		out, err := uc.View(ctx, session)
		require.NoError(t, err)
		assert.Empty(t, out.Recommendations)
	})
}

func TestSelectionUseCase_ViewFreeTextColor(t *testing.T) {
	uc, _ := newSelectionUseCase()
	ctx := context.Background()

	_, _ = uc.SetColor(ctx, session, valueobjects.SlotUpper, "beige")
	_, _ = uc.SetColor(ctx, session, valueobjects.SlotLower, "#000000")
	_, _ = uc.SetColor(ctx, session, valueobjects.SlotShoe, "#000000")
	_, _ = uc.SelectOccasion(ctx, session, valueobjects.OccasionMovie)

	out, err := uc.View(ctx, session)
	require.NoError(t, err)
	require.Len(t, out.Recommendations, 3)
	assert.Equal(t, valueobjects.Color("beige"), out.Selection.Color(valueobjects.SlotUpper))
	assert.Equal(t, "Cozy Comfort", out.Recommendations[1].Title)
	assert.Equal(t, valueobjects.Color("#0000aa"), out.Recommendations[2].Colors.Lower)
}

func TestSelectionUseCase_AttachImage(t *testing.T) {
	ctx := context.Background()

	t.Run("stored as data url", func(t *testing.T) {
		uc, _ := newSelectionUseCase()

		sel, err := uc.AttachImage(ctx, session, ImageUploadInput{Slot: valueobjects.SlotUpper, Data: pngBytes(t)})
		require.NoError(t, err)
		assert.Contains(t, sel.Image(valueobjects.SlotUpper).String(), "data:image/png;base64,")
	})

	t.Run("unreadable file leaves slot unchanged", func(t *testing.T) {
		uc, repo := newSelectionUseCase()

		_, err := uc.AttachImage(ctx, session, ImageUploadInput{Slot: valueobjects.SlotUpper, Data: []byte("not an image")})
		assert.True(t, errors.Is(err, valueobjects.ErrUnsupportedImage))
		assert.Zero(t, repo.saves)
	})

	t.Run("upload started before clear is discarded", func(t *testing.T) {
		uc, _ := newSelectionUseCase()

		before, err := uc.Load(ctx, session)
		require.NoError(t, err)
		generation := before.Generation(valueobjects.SlotLower)

		_, err = uc.ClearImage(ctx, session, valueobjects.SlotLower)
		require.NoError(t, err)

		_, err = uc.AttachImage(ctx, session, ImageUploadInput{Slot: valueobjects.SlotLower, Generation: generation, Data: pngBytes(t)})
		assert.True(t, errors.Is(err, entities.ErrStaleUpload))

		sel, err := uc.Load(ctx, session)
		require.NoError(t, err)
		assert.True(t, sel.Image(valueobjects.SlotLower).IsEmpty())
	})
}

func TestSelectionUseCase_StoreErrors(t *testing.T) {
	uc, repo := newSelectionUseCase()
	ctx := context.Background()

	repo.saveErr = errors.New("disk full")
	_, err := uc.SetColor(ctx, session, valueobjects.SlotUpper, "#000000")
	assert.ErrorContains(t, err, "disk full")

	repo.saveErr = nil
	repo.loadErr = errors.New("connection reset")
	_, err = uc.View(ctx, session)
	assert.ErrorContains(t, err, "connection reset")
}

func TestSelectionUseCase_ConcurrentUpdates(t *testing.T) {
	uc, repo := newSelectionUseCase()
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, slot := range valueobjects.Slots {
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(slot valueobjects.Slot) {
				defer wg.Done()
				_, _ = uc.ClearImage(ctx, session, slot)
			}(slot)
		}
	}
	wg.Wait()

	sel, err := uc.Load(ctx, session)
	require.NoError(t, err)
	for _, slot := range valueobjects.Slots {
		assert.Equal(t, uint64(20), sel.Generation(slot), "no update may be lost for %s", slot)
	}
	assert.Equal(t, 60, repo.saves)
	assert.Zero(t, uc.locks.len())
}

func TestRecommendationUseCase_Execute(t *testing.T) {
	uc := NewRecommendationUseCase(services.NewRecommendationDomainService())

	out := uc.Execute(context.Background(), RecommendationInput{
		Upper: "#FF0000", Lower: "#0000FF", Shoe: "#00FF00", Occasion: "unknown-tag",
	})
	assert.Equal(t, valueobjects.GeneralOccasion, out.Occasion)
	assert.Len(t, out.Recommendations, 2)

	out = uc.Execute(context.Background(), RecommendationInput{Occasion: "dating"})
	assert.NotNil(t, out.Recommendations)
	assert.Empty(t, out.Recommendations)

	out = uc.Execute(context.Background(), RecommendationInput{Upper: "#XYZ", Lower: "#000000", Shoe: "#000000"})
	require.Len(t, out.Recommendations, 2)
	assert.Equal(t, entities.Palette{Upper: "#XYZ", Lower: "#000000", Shoe: "#000000"}, out.Recommendations[1].Colors)
}

func TestAdviceUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	recommender := services.NewRecommendationDomainService()

	completeSession := func(t *testing.T, selections *SelectionUseCase) {
		for slot, color := range map[valueobjects.Slot]valueobjects.Color{
			valueobjects.SlotUpper: "#800080",
			valueobjects.SlotLower: "#808080",
			valueobjects.SlotShoe:  "#000000",
		} {
			_, err := selections.SetColor(ctx, session, slot, color)
			require.NoError(t, err)
		}
		_, err := selections.AttachImage(ctx, session, ImageUploadInput{Slot: valueobjects.SlotShoe, Data: pngBytes(t)})
		require.NoError(t, err)
	}

	t.Run("disabled", func(t *testing.T) {
		selections, _ := newSelectionUseCase()
		uc := NewAdviceUseCase(selections, recommender, nil)

		_, err := uc.Execute(ctx, session)
		assert.True(t, errors.Is(err, ErrAdvisorDisabled))
		assert.False(t, uc.Enabled())
	})

	t.Run("incomplete selection", func(t *testing.T) {
		selections, _ := newSelectionUseCase()
		advisor := &mockStyleAdvisor{text: "unused"}
		uc := NewAdviceUseCase(selections, recommender, services.NewAdviceDomainService(advisor))

		_, err := uc.Execute(ctx, session)
		assert.True(t, errors.Is(err, services.ErrInvalidAdvice))
		assert.Nil(t, advisor.received)
	})

	t.Run("success", func(t *testing.T) {
		selections, _ := newSelectionUseCase()
		completeSession(t, selections)
		advisor := &mockStyleAdvisor{text: "Go with the monochrome look."}
		uc := NewAdviceUseCase(selections, recommender, services.NewAdviceDomainService(advisor))

		out, err := uc.Execute(ctx, session)
		require.NoError(t, err)
		assert.Equal(t, "Go with the monochrome look.", out.Advice)
		assert.NotEmpty(t, out.RequestID)

		require.NotNil(t, advisor.received)
		assert.Len(t, advisor.received.Recommendations(), 2)
		shoe := advisor.received.Image(valueobjects.SlotShoe)
		require.NotNil(t, shoe)
		assert.True(t, shoe.IsJPEG())
		assert.Nil(t, advisor.received.Image(valueobjects.SlotUpper))
	})

	t.Run("quota", func(t *testing.T) {
		selections, _ := newSelectionUseCase()
		completeSession(t, selections)
		advisor := &mockStyleAdvisor{err: errors.New("Error 429: RESOURCE_EXHAUSTED")}
		uc := NewAdviceUseCase(selections, recommender, services.NewAdviceDomainService(advisor))

		_, err := uc.Execute(ctx, session)
		assert.True(t, errors.Is(err, services.ErrAdvisorBusy))
	})
}
