package services

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/Djiento/ActionnaireInscrit/internal/infrastructure/config"
	"gorm.io/gorm"
)

// exportHeader is the fixed 12-column order of the CSV snapshot.
var exportHeader = []string{
	"ID", "Nom complet", "WhatsApp", "Email", "Nationalité",
	"Ville/Pays", "Profession", "Montant", "Expérience",
	"Paiement", "Remarques", "Date d'inscription",
}

// InterfaceExportService defines the tabular export of all records.
type InterfaceExportService interface {
	WriteCSV(w io.Writer) error
}

// ExportService serializes the full investor table.
type ExportService struct {
	DB        *gorm.DB
	Config    *config.Config
	Investors InterfaceInvestorService
}

// NewExportService creates a new export service.
func NewExportService(db *gorm.DB, cfg *config.Config, investors InterfaceInvestorService) InterfaceExportService {
	return &ExportService{
		DB:        db,
		Config:    cfg,
		Investors: investors,
	}
}

// WriteCSV writes the header plus one row per investor, unfiltered and
// unpaginated. Absent remarks become the empty string; timestamps use
// "YYYY-MM-DD HH:MM:SS".
func (s *ExportService) WriteCSV(w io.Writer) error {
	investors, err := s.Investors.GetAllInvestors()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, inv := range investors {
		record := []string{
			strconv.FormatUint(uint64(inv.ID), 10),
			inv.FullName,
			inv.WhatsappNumber,
			inv.Email,
			inv.Nationality,
			inv.CityCountry,
			inv.Profession,
			inv.InvestmentAmount,
			inv.ExperienceLevel,
			inv.PaymentMethod,
			inv.AdditionalRemarks,
			inv.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
