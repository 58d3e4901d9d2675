package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sipwell/hydrokit-backend/internal/hydration"
	"github.com/sipwell/hydrokit-backend/internal/models"
)

// ErrKitNotFound means the requested kit name is not in the catalog.
var ErrKitNotFound = errors.New("kit not found")

// KitService owns the fixed product catalog.
type KitService struct {
	db *gorm.DB
}

var _ IKitService = (*KitService)(nil)

func NewKitService(db *gorm.DB) *KitService {
	return &KitService{db: db}
}

// ListKits returns the whole catalog in name order.
func (s *KitService) ListKits(ctx context.Context) ([]models.Kit, error) {
	var kits []models.Kit
	if err := s.db.WithContext(ctx).Order("name asc").Find(&kits).Error; err != nil {
		return nil, err
	}
	return kits, nil
}

// GetKit fetches one kit by name.
func (s *KitService) GetKit(ctx context.Context, name string) (*models.Kit, error) {
	var kit models.Kit
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&kit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKitNotFound
		}
		return nil, err
	}
	return &kit, nil
}

// SimilarKits ranks the rest of the catalog by embedding distance to the
// named kit. Only meaningful on postgres; other dialects fall back to
// catalog order.
func (s *KitService) SimilarKits(ctx context.Context, name string, limit int) ([]models.Kit, error) {
	kit, err := s.GetKit(ctx, name)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 3
	}

	var kits []models.Kit
	query := s.db.WithContext(ctx).Where("name <> ?", name).Limit(limit)
	if s.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{kit.Embedding}},
		})
	} else {
		query = query.Order("name asc")
	}
	if err := query.Find(&kits).Error; err != nil {
		return nil, err
	}
	return kits, nil
}

// SetArtwork records the uploaded artwork URL for a kit.
func (s *KitService) SetArtwork(ctx context.Context, name, url string) (*models.Kit, error) {
	kit, err := s.GetKit(ctx, name)
	if err != nil {
		return nil, err
	}
	kit.ArtworkURL = url
	if err := s.db.WithContext(ctx).Save(kit).Error; err != nil {
		return nil, err
	}
	return kit, nil
}

// kitCopy is the seed copy for the catalog: description plus the ordered
// ritual steps shown after purchase.
var kitCopy = map[hydration.KitName]struct {
	description string
	ritual      []string
}{
	hydration.KitSkySalt: {
		"A bright mineral base for steady daytime sipping.",
		[]string{"Pour over still water", "Stir until clear", "Sip through the morning"},
	},
	hydration.KitWhiteEmber: {
		"Rapid rehydration for the hour after heavy sweat.",
		[]string{"Shake with cold water", "Drink half immediately", "Finish within the hour"},
	},
	hydration.KitSilverMirage: {
		"A slow-release blend for long screen stretches.",
		[]string{"Dissolve in warm water", "Drink between meetings"},
	},
	hydration.KitGhostBloom: {
		"An evening wind-down blend with low sodium.",
		[]string{"Steep five minutes", "Dim the lights", "Drink warm before bed"},
	},
	hydration.KitCopperWhisper: {
		"Electrolyte-forward recovery for tight, worked muscles.",
		[]string{"Mix with cool water", "Drink after stretching"},
	},
	hydration.KitIronDrift: {
		"A settling blend for heavy meals.",
		[]string{"Sip slowly after eating", "Wait before seconds"},
	},
	hydration.KitColdHalo: {
		"A crisp afternoon reset for foggy focus.",
		[]string{"Serve over ice", "Drink in one sitting"},
	},
	hydration.KitAmberStatic: {
		"Gentle carbonation and bitters for digestion.",
		[]string{"Pour over sparkling water", "Drink within ten minutes"},
	},
	hydration.KitNightTide: {
		"Magnesium-leaning support for late nights.",
		[]string{"Mix with warm water", "Drink half an hour before sleep"},
	},
	hydration.KitPaleFern: {
		"A light green blend for fasted mornings.",
		[]string{"Stir into cold water", "Sip before the first meal"},
	},
	hydration.KitMossVeil: {
		"A mild daily blend for gentle reset days.",
		[]string{"Dissolve fully", "Sip across the afternoon"},
	},
}

// SeedCatalog inserts any missing kits. Safe to run repeatedly.
func (s *KitService) SeedCatalog(ctx context.Context) error {
	for _, name := range hydration.AllKits {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Kit{}).Where("name = ?", string(name)).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		copyEntry := kitCopy[name]
		var archetypes models.StringList
		for _, a := range hydration.AllArchetypes {
			for _, k := range hydration.KitsFor(a) {
				if k == name {
					archetypes = append(archetypes, string(a))
				}
			}
		}

		kit := models.Kit{
			ID:          uuid.New(),
			Name:        string(name),
			Description: copyEntry.description,
			RitualSteps: models.StringList(copyEntry.ritual),
			Archetypes:  archetypes,
			Embedding:   GenerateEmbedding(string(name) + " " + copyEntry.description),
		}
		if err := s.db.WithContext(ctx).Create(&kit).Error; err != nil {
			return err
		}
	}
	return nil
}
