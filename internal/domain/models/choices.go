package models

// Choice is one allowed value of an enumerated form field, with the label
// shown in the select.
type Choice struct {
	Value string
	Label string
}

// InvestmentAmountChoices are the closed investment brackets.
var InvestmentAmountChoices = []Choice{
	{"1000-5000", "1 000 - 5 000 €"},
	{"5000-10000", "5 000 - 10 000 €"},
	{"10000-25000", "10 000 - 25 000 €"},
	{"25000-50000", "25 000 - 50 000 €"},
	{"50000-100000", "50 000 - 100 000 €"},
	{"100000+", "100 000 € et plus"},
}

// InvestmentMidpoints maps each bracket to the representative amount used by
// the dashboard's estimated-total aggregate. Unknown brackets contribute 0.
var InvestmentMidpoints = map[string]int64{
	"1000-5000":    3000,
	"5000-10000":   7500,
	"10000-25000":  17500,
	"25000-50000":  37500,
	"50000-100000": 75000,
	"100000+":      150000,
}

// ExperienceLevelChoices are the closed experience levels.
var ExperienceLevelChoices = []Choice{
	{"debutant", "Débutant"},
	{"intermediaire", "Intermédiaire"},
	{"avance", "Avancé"},
}

// PaymentMethodChoices are the closed payment methods.
var PaymentMethodChoices = []Choice{
	{"mobile_money", "Mobile Money"},
	{"virement", "Virement bancaire"},
	{"autre", "Autre"},
}

// NationalityChoices is the closed nationality list of the registration form.
var NationalityChoices = []Choice{
	{"algérienne", "Algérienne"},
	{"béninoise", "Béninoise"},
	{"burkinabé", "Burkinabé"},
	{"camerounaise", "Camerounaise"},
	{"centrafricaine", "Centrafricaine"},
	{"comorienne", "Comorienne"},
	{"congolaise_brazzaville", "Congolaise (Brazzaville)"},
	{"congolaise_kinshasa", "Congolaise (Kinshasa)"},
	{"djiboutienne", "Djiboutienne"},
	{"égyptienne", "Égyptienne"},
	{"française", "Française"},
	{"gabonaise", "Gabonaise"},
	{"ghanéenne", "Ghanéenne"},
	{"guinéenne", "Guinéenne"},
	{"ivoirienne", "Ivoirienne"},
	{"malienne", "Malienne"},
	{"marocaine", "Marocaine"},
	{"mauritanienne", "Mauritanienne"},
	{"nigériane", "Nigériane"},
	{"nigérienne", "Nigérienne"},
	{"sénégalaise", "Sénégalaise"},
	{"tchadienne", "Tchadienne"},
	{"togolaise", "Togolaise"},
	{"tunisienne", "Tunisienne"},
	{"autre", "Autre"},
}

// CityCountryChoices is the closed residence list of the registration form.
var CityCountryChoices = []Choice{
	{"abidjan_cote_ivoire", "Abidjan, Côte d'Ivoire"},
	{"accra_ghana", "Accra, Ghana"},
	{"bamako_mali", "Bamako, Mali"},
	{"bangui_centrafrique", "Bangui, République Centrafricaine"},
	{"brazzaville_congo", "Brazzaville, Congo"},
	{"cotonou_benin", "Cotonou, Bénin"},
	{"dakar_senegal", "Dakar, Sénégal"},
	{"douala_cameroun", "Douala, Cameroun"},
	{"kinshasa_rdc", "Kinshasa, RD Congo"},
	{"libreville_gabon", "Libreville, Gabon"},
	{"lome_togo", "Lomé, Togo"},
	{"ndjamena_tchad", "N'Djamena, Tchad"},
	{"niamey_niger", "Niamey, Niger"},
	{"nouakchott_mauritanie", "Nouakchott, Mauritanie"},
	{"ouagadougou_burkina", "Ouagadougou, Burkina Faso"},
	{"paris_france", "Paris, France"},
	{"yaounde_cameroun", "Yaoundé, Cameroun"},
	{"autre", "Autre"},
}

// AllowedDocumentExtensions is the identity-document extension allow-list,
// matched case-insensitively on the part after the last dot.
var AllowedDocumentExtensions = map[string]bool{
	"pdf":  true,
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// HasChoice reports whether value is a member of the choice set.
func HasChoice(choices []Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}
