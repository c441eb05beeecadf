package migration

import (
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for the hot paths
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// Partial index over wallet listings: most owned coupons end up used,
	// the wallet tab mostly wants the unused ones
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_owned_coupons_owner_unused
		ON owned_coupons (owner_id, purchase_date DESC)
		WHERE used = false
	`).Error; err != nil {
		m.logger.Error("Failed to create unused owned coupons partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Composite index for the recommendation feed filtered by service type
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_recommendations_type_created
		ON recommendations (service_type, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create recommendation feed composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN index for the append-only ledger, cheap for temporal scans
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_points_transactions_created_at_brin
		ON points_transactions USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on ledger created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Comments are always fetched per recommendation in posting order
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_comments_recommendation_created
		ON comments (recommendation_id, created_at ASC)
	`).Error; err != nil {
		m.logger.Error("Failed to create comments composite index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created", nil)
	return nil
}
