package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/Djiento/ActionnaireInscrit/internal/domain/models"
	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/config"
	Logger "github.com/Djiento/ActionnaireInscrit/pkg/logger"
)

// InvestorPageSize is the fixed dashboard page size.
const InvestorPageSize = 50

const statsCacheKey = "dashboard:stats"
const statsCacheTTL = 1 * time.Minute

// InvestorFilter carries the dashboard's query parameters. Search, experience
// and amount combine with logical AND when more than one is supplied.
type InvestorFilter struct {
	Search     string
	Experience string
	Amount     string
	Page       int
}

// DashboardStats are the dashboard aggregates. Both numbers are computed over
// the whole table, ignoring any active filter; the estimated total maps each
// record's bracket to its representative midpoint. This whole-table behaviour
// is intentional.
type DashboardStats struct {
	TotalInvestors int64 `json:"total_investors"`
	EstimatedTotal int64 `json:"estimated_total"`
}

// InterfaceInvestorService defines the registration store and the admin query
// engine over it.
type InterfaceInvestorService interface {
	Register(investor *models.Investor) error
	ListInvestors(filter InvestorFilter) ([]models.Investor, models.PaginationResult, error)
	CountInvestors() (int64, error)
	EstimatedTotal() (int64, error)
	GetDashboardStats() (DashboardStats, error)
	GetAllInvestors() ([]models.Investor, error)
}

// InvestorService provides investor persistence and queries.
type InvestorService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceCacheService
}

// NewInvestorService creates a new investor service. cache may be nil.
func NewInvestorService(db *gorm.DB, cfg *config.Config, cache InterfaceCacheService) InterfaceInvestorService {
	return &InvestorService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// 1 Register inserts a new investor row in a single transaction and drops the
// cached aggregates. No dedup by email or WhatsApp number: a resubmission
// creates an independent record.
func (s *InvestorService) Register(investor *models.Investor) error {
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(investor).Error
	}); err != nil {
		return err
	}

	if s.Cache != nil {
		if err := s.Cache.Delete(statsCacheKey); err != nil {
			Logger.Warning("invalidate stats cache: %v", err)
		}
	}
	return nil
}

// 2 ListInvestors returns one dashboard page, most recent first. The search
// term matches as a case-insensitive substring of full_name, email or
// whatsapp_number (MySQL utf8mb4 collation). Out-of-range pages yield an
// empty slice, not an error.
func (s *InvestorService) ListInvestors(filter InvestorFilter) ([]models.Investor, models.PaginationResult, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}

	query := s.DB.Model(&models.Investor{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"full_name LIKE ? OR email LIKE ? OR whatsapp_number LIKE ?",
			like, like, like,
		)
	}
	if filter.Experience != "" {
		query = query.Where("experience_level = ?", filter.Experience)
	}
	if filter.Amount != "" {
		query = query.Where("investment_amount = ?", filter.Amount)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}

	var investors []models.Investor
	offset := (page - 1) * InvestorPageSize
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(InvestorPageSize).
		Find(&investors).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}

	return investors, models.NewPaginationResult(total, page, InvestorPageSize), nil
}

// 3 CountInvestors returns the unfiltered record count.
func (s *InvestorService) CountInvestors() (int64, error) {
	var total int64
	err := s.DB.Model(&models.Investor{}).Count(&total).Error
	return total, err
}

// 4 EstimatedTotal sums midpoint(bracket) over every record. Brackets outside
// the known set contribute nothing.
func (s *InvestorService) EstimatedTotal() (int64, error) {
	type bracketCount struct {
		InvestmentAmount string
		N                int64
	}

	var rows []bracketCount
	if err := s.DB.Model(&models.Investor{}).
		Select("investment_amount, COUNT(*) AS n").
		Group("investment_amount").
		Scan(&rows).Error; err != nil {
		return 0, err
	}

	var total int64
	for _, row := range rows {
		total += models.InvestmentMidpoints[row.InvestmentAmount] * row.N
	}
	return total, nil
}

// 5 GetDashboardStats returns the whole-table aggregates, served from the
// cache when one is configured.
func (s *InvestorService) GetDashboardStats() (DashboardStats, error) {
	var stats DashboardStats

	if s.Cache != nil {
		if err := s.Cache.Get(statsCacheKey, &stats); err == nil {
			return stats, nil
		}
	}

	count, err := s.CountInvestors()
	if err != nil {
		return DashboardStats{}, err
	}
	estimated, err := s.EstimatedTotal()
	if err != nil {
		return DashboardStats{}, err
	}

	stats = DashboardStats{TotalInvestors: count, EstimatedTotal: estimated}

	if s.Cache != nil {
		if err := s.Cache.Set(statsCacheKey, stats, statsCacheTTL); err != nil {
			Logger.Warning("store stats cache: %v", err)
		}
	}
	return stats, nil
}

// 6 GetAllInvestors returns every record in insertion order, for the export.
func (s *InvestorService) GetAllInvestors() ([]models.Investor, error) {
	var investors []models.Investor
	if err := s.DB.Order("id").Find(&investors).Error; err != nil {
		return nil, err
	}
	return investors, nil
}
