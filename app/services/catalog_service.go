package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shashiranjanraj/cartinhas/app/models"
	"github.com/shashiranjanraj/cartinhas/app/repositories"
	"github.com/shashiranjanraj/cartinhas/pkg/httpclient"
	"github.com/shashiranjanraj/cartinhas/pkg/logger"
	"github.com/shashiranjanraj/cartinhas/pkg/orm"
	"github.com/shashiranjanraj/cartinhas/pkg/storage"
)

// CardInput carries admin-supplied card fields.
type CardInput struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image" validate:"nullable,url"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// CatalogService manages the card catalog: public listing and admin
// CRUD, including mirroring remote card images onto our own storage.
type CatalogService struct {
	cards *repositories.CardRepository
}

func NewCatalogService(cards *repositories.CardRepository) *CatalogService {
	return &CatalogService{cards: cards}
}

// List returns the full catalog.
func (s *CatalogService) List(ctx context.Context) ([]models.Card, error) {
	return s.cards.All(ctx)
}

// Paginated returns one catalog page with the total count.
func (s *CatalogService) Paginated(page, perPage int) ([]models.Card, orm.Pagination, error) {
	return s.cards.Paginated(page, perPage)
}

// Find returns one card.
func (s *CatalogService) Find(id uint) (models.Card, error) {
	card, err := s.cards.FindByID(id)
	if err != nil {
		return models.Card{}, ErrCardNotFound
	}
	return card, nil
}

// Create adds a card to the catalog. Remote images are mirrored onto
// our storage so upstream URL churn never breaks the storefront.
func (s *CatalogService) Create(ctx context.Context, input CardInput) (models.Card, error) {
	card := models.Card{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Stock:       input.Stock,
	}
	if err := s.cards.Create(ctx, &card); err != nil {
		return models.Card{}, err
	}

	if mirrored := s.mirrorImage(ctx, card.ID, card.Image); mirrored != "" && mirrored != card.Image {
		card.Image = mirrored
		if err := s.cards.Update(ctx, &card); err != nil {
			return models.Card{}, err
		}
	}
	return card, nil
}

// Update edits an existing card.
func (s *CatalogService) Update(ctx context.Context, id uint, input CardInput) (models.Card, error) {
	card, err := s.cards.FindByID(id)
	if err != nil {
		return models.Card{}, ErrCardNotFound
	}

	imageChanged := card.Image != input.Image

	card.Name = input.Name
	card.Description = input.Description
	card.Price = input.Price
	card.Image = input.Image
	card.Stock = input.Stock

	if imageChanged {
		if mirrored := s.mirrorImage(ctx, card.ID, card.Image); mirrored != "" {
			card.Image = mirrored
		}
	}

	if err := s.cards.Update(ctx, &card); err != nil {
		return models.Card{}, err
	}
	return card, nil
}

// Delete removes a card from the catalog.
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	card, err := s.cards.FindByID(id)
	if err != nil {
		return ErrCardNotFound
	}
	return s.cards.Delete(ctx, &card)
}

// mirrorImage downloads a remote image and stores it on the default
// disk. Best effort: on any failure the original URL stays in use.
func (s *CatalogService) mirrorImage(ctx context.Context, cardID uint, imageURL string) string {
	if imageURL == "" || !strings.HasPrefix(imageURL, "http") {
		return ""
	}

	resp, err := httpclient.Get(imageURL).
		WithContext(ctx).
		Timeout(10 * time.Second).
		Send()
	if err != nil || !resp.OK() {
		logger.Warn("catalog: image mirror failed", "card_id", cardID, "url", imageURL, "error", err)
		return ""
	}

	path := fmt.Sprintf("cards/%d%s", cardID, imageExt(imageURL))
	if err := storage.Put(path, resp.Raw); err != nil {
		logger.Warn("catalog: image store failed", "card_id", cardID, "error", err)
		return ""
	}
	return storage.URL(path)
}

func imageExt(url string) string {
	url = strings.SplitN(url, "?", 2)[0]
	for _, ext := range []string{".png", ".webp", ".gif", ".jpeg", ".jpg"} {
		if strings.HasSuffix(url, ext) {
			return ext
		}
	}
	return ".jpg"
}
