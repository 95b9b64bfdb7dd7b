package models

// Investor represents one registration submission. Rows are immutable after
// creation except WhatsappInvited, which a later invitation process may flip.
type Investor struct {
	BaseModel
	FullName          string `gorm:"type:varchar(100);not null" json:"full_name"`
	WhatsappNumber    string `gorm:"type:varchar(20);not null" json:"whatsapp_number"`
	Email             string `gorm:"type:varchar(120);not null" json:"email"`
	Nationality       string `gorm:"type:varchar(50);not null" json:"nationality"`
	CityCountry       string `gorm:"type:varchar(100);not null" json:"city_country"`
	Profession        string `gorm:"type:varchar(100);not null" json:"profession"`
	InvestmentAmount  string `gorm:"type:varchar(50);not null" json:"investment_amount"`
	ExperienceLevel   string `gorm:"type:varchar(20);not null" json:"experience_level"`
	IdentityDocument  string `gorm:"type:varchar(255)" json:"identity_document"` // stored filename under the upload dir
	PaymentMethod     string `gorm:"type:varchar(50);not null" json:"payment_method"`
	AdditionalRemarks string `gorm:"type:text" json:"additional_remarks"`
	TermsAccepted     bool   `gorm:"not null" json:"terms_accepted"`
	WhatsappInvited   bool   `gorm:"default:false" json:"whatsapp_invited"`
}
