package repositories

import (
	"context"
	"time"

	"github.com/shashiranjanraj/cartinhas/app/models"
	"github.com/shashiranjanraj/cartinhas/pkg/cache"
	"github.com/shashiranjanraj/cartinhas/pkg/feed"
	"github.com/shashiranjanraj/cartinhas/pkg/orm"
)

const (
	catalogCacheKey = "cartinhas:catalog:all"
	catalogCacheTTL = 5 * time.Minute
)

// CardRepository handles database operations for Card. Writes publish
// feed events and invalidate the catalog cache.
type CardRepository struct {
	hub *feed.Hub
}

func NewCardRepository(hub *feed.Hub) *CardRepository {
	return &CardRepository{hub: hub}
}

// All returns the full catalog, served from Redis when warm.
func (r *CardRepository) All(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	err := orm.DB().Model(&models.Card{}).Order("created_at desc").
		Cached(ctx, catalogCacheKey, catalogCacheTTL, &cards)
	return cards, err
}

// Paginated returns one catalog page straight from the database.
func (r *CardRepository) Paginated(page, perPage int) ([]models.Card, orm.Pagination, error) {
	var cards []models.Card
	pagination, err := orm.DB().Model(&models.Card{}).Order("created_at desc").
		Paginate(page, perPage, &cards)
	return cards, pagination, err
}

// FindByID looks up a card by primary key.
func (r *CardRepository) FindByID(id uint) (models.Card, error) {
	var card models.Card
	err := orm.DB().Model(&models.Card{}).Where("id = ?", id).First(&card)
	return card, err
}

// FindByIDs returns the cards matching ids.
func (r *CardRepository) FindByIDs(ids []uint) ([]models.Card, error) {
	var cards []models.Card
	err := orm.DB().Model(&models.Card{}).Where("id IN ?", ids).Get(&cards)
	return cards, err
}

// Create persists a new card and announces it on the feed.
func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	if err := orm.DB().Create(card); err != nil {
		return err
	}
	r.invalidate(ctx)
	r.publish(feed.CardCreated, card)
	return nil
}

// Update persists changes and announces them on the feed.
func (r *CardRepository) Update(ctx context.Context, card *models.Card) error {
	if err := orm.DB().Save(card); err != nil {
		return err
	}
	r.invalidate(ctx)
	r.publish(feed.CardUpdated, card)
	return nil
}

// Delete removes a card and announces the removal.
func (r *CardRepository) Delete(ctx context.Context, card *models.Card) error {
	if err := orm.DB().Delete(card); err != nil {
		return err
	}
	r.invalidate(ctx)
	r.publish(feed.CardDeleted, map[string]uint{"id": card.ID})
	return nil
}

func (r *CardRepository) invalidate(ctx context.Context) {
	_ = cache.Forget(ctx, catalogCacheKey)
}

func (r *CardRepository) publish(kind string, data any) {
	if r.hub != nil {
		r.hub.Publish(kind, data)
	}
}
