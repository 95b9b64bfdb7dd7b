package forms

import (
	"net/url"
	"strings"

	"github.com/Djiento/ActionnaireInscrit/internal/domain/models"
	"github.com/Djiento/ActionnaireInscrit/internal/error/code"
	"github.com/Djiento/ActionnaireInscrit/utils"
)

// RegistrationSchema declares every rule of the public registration form.
var RegistrationSchema = []Field{
	{
		Name: "full_name", Label: "Nom complet",
		Required: true, MinLen: 2, MaxLen: 100,
		RequiredMessage: "Le nom complet est obligatoire",
		LengthMessage:   "Le nom doit contenir entre 2 et 100 caractères",
	},
	{
		Name: "whatsapp_number", Label: "Numéro WhatsApp",
		Required: true, MinLen: 8, MaxLen: 20, Digits: true,
		RequiredMessage: "Le numéro WhatsApp est obligatoire",
		LengthMessage:   "Le numéro doit contenir entre 8 et 20 caractères",
		InvalidMessage:  "Le numéro WhatsApp ne doit contenir que des chiffres",
	},
	{
		Name: "email", Label: "Adresse e-mail",
		Required: true, Email: true,
		RequiredMessage: "L'adresse e-mail est obligatoire",
		InvalidMessage:  "Veuillez entrer une adresse e-mail valide",
	},
	{
		Name: "nationality", Label: "Nationalité",
		Required: true, Choices: models.NationalityChoices,
		RequiredMessage: "Veuillez sélectionner votre nationalité",
		InvalidMessage:  "Veuillez sélectionner votre nationalité",
	},
	{
		Name: "city_country", Label: "Ville / Pays de résidence",
		Required: true, Choices: models.CityCountryChoices,
		RequiredMessage: "Veuillez sélectionner votre ville/pays de résidence",
		InvalidMessage:  "Veuillez sélectionner votre ville/pays de résidence",
	},
	{
		Name: "profession", Label: "Profession / Activité principale",
		Required: true, MinLen: 2, MaxLen: 100,
		RequiredMessage: "La profession est obligatoire",
		LengthMessage:   "La profession doit contenir entre 2 et 100 caractères",
	},
	{
		Name: "investment_amount", Label: "Montant estimé à investir",
		Required: true, Choices: models.InvestmentAmountChoices,
		RequiredMessage: "Veuillez sélectionner un montant",
		InvalidMessage:  "Veuillez sélectionner un montant",
	},
	{
		Name: "experience_level", Label: "Expérience en investissement",
		Required: true, Choices: models.ExperienceLevelChoices,
		RequiredMessage: "Veuillez sélectionner votre niveau d'expérience",
		InvalidMessage:  "Veuillez sélectionner votre niveau d'expérience",
	},
	{
		Name: "payment_method", Label: "Moyen de paiement préféré",
		Required: true, Choices: models.PaymentMethodChoices,
		RequiredMessage: "Veuillez sélectionner un moyen de paiement",
		InvalidMessage:  "Veuillez sélectionner un moyen de paiement",
	},
}

const termsRequiredMessage = "Vous devez accepter les conditions et la politique de confidentialité"

// Registration is the validated, typed outcome of a registration submission.
type Registration struct {
	FullName          string
	WhatsappNumber    string
	Email             string
	Nationality       string
	CityCountry       string
	Profession        string
	InvestmentAmount  string
	ExperienceLevel   string
	PaymentMethod     string
	AdditionalRemarks string
	TermsAccepted     bool
	DocumentFilename  string // client-supplied name; stored name assigned at intake
}

// ParseRegistration validates a raw submission. documentFilename is the
// client-supplied upload name, empty when no file was attached. Either the
// typed Registration or a non-empty error map is returned, never both.
func ParseRegistration(values url.Values, documentFilename string) (*Registration, Errors) {
	errs := Validate(RegistrationSchema, values.Get)

	terms := strings.TrimSpace(values.Get("terms_accepted"))
	accepted := terms == "on" || terms == "true" || terms == "1" || terms == "y"
	if !accepted {
		errs.Add("terms_accepted", termsRequiredMessage)
	}

	if documentFilename == "" {
		errs.Add("identity_document", code.GetMessage(code.ErrUploadMissing))
	} else if !models.AllowedDocumentExtensions[utils.FileExtension(documentFilename)] {
		errs.Add("identity_document", code.GetMessage(code.ErrUploadRejected))
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Registration{
		FullName:          strings.TrimSpace(values.Get("full_name")),
		WhatsappNumber:    strings.TrimSpace(values.Get("whatsapp_number")),
		Email:             strings.TrimSpace(values.Get("email")),
		Nationality:       strings.TrimSpace(values.Get("nationality")),
		CityCountry:       strings.TrimSpace(values.Get("city_country")),
		Profession:        strings.TrimSpace(values.Get("profession")),
		InvestmentAmount:  strings.TrimSpace(values.Get("investment_amount")),
		ExperienceLevel:   strings.TrimSpace(values.Get("experience_level")),
		PaymentMethod:     strings.TrimSpace(values.Get("payment_method")),
		AdditionalRemarks: strings.TrimSpace(values.Get("additional_remarks")),
		TermsAccepted:     true,
		DocumentFilename:  documentFilename,
	}, nil
}
