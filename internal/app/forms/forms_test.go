package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() url.Values {
	return url.Values{
		"full_name":         {"Jean Martin"},
		"whatsapp_number":   {"+225 07-00-00-00"},
		"email":             {"jean.martin@example.com"},
		"nationality":       {"ivoirienne"},
		"city_country":      {"abidjan_cote_ivoire"},
		"profession":        {"Commerçant"},
		"investment_amount": {"1000-5000"},
		"experience_level":  {"debutant"},
		"payment_method":    {"mobile_money"},
		"terms_accepted":    {"on"},
	}
}

func TestParseRegistrationValid(t *testing.T) {
	reg, errs := ParseRegistration(validSubmission(), "passport.pdf")
	require.Nil(t, errs)
	require.NotNil(t, reg)

	assert.Equal(t, "Jean Martin", reg.FullName)
	assert.Equal(t, "+225 07-00-00-00", reg.WhatsappNumber)
	assert.Equal(t, "1000-5000", reg.InvestmentAmount)
	assert.True(t, reg.TermsAccepted)
	assert.Equal(t, "passport.pdf", reg.DocumentFilename)
}

func TestParseRegistrationTrimsWhitespace(t *testing.T) {
	values := validSubmission()
	values.Set("full_name", "  Jean Martin  ")
	values.Set("email", " jean.martin@example.com ")

	reg, errs := ParseRegistration(values, "passport.pdf")
	require.Nil(t, errs)
	assert.Equal(t, "Jean Martin", reg.FullName)
	assert.Equal(t, "jean.martin@example.com", reg.Email)
}

func TestParseRegistrationMissingRequiredFields(t *testing.T) {
	reg, errs := ParseRegistration(url.Values{}, "")
	require.Nil(t, reg)
	require.NotNil(t, errs)

	for _, field := range []string{
		"full_name", "whatsapp_number", "email", "nationality",
		"city_country", "profession", "investment_amount",
		"experience_level", "payment_method", "terms_accepted",
		"identity_document",
	} {
		assert.True(t, errs.Has(field), "expected an error for %s", field)
	}
}

func TestParseRegistrationFullNameLength(t *testing.T) {
	values := validSubmission()
	values.Set("full_name", "A")
	_, errs := ParseRegistration(values, "passport.pdf")
	require.NotNil(t, errs)
	assert.True(t, errs.Has("full_name"))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	values.Set("full_name", string(long))
	_, errs = ParseRegistration(values, "passport.pdf")
	require.NotNil(t, errs)
	assert.True(t, errs.Has("full_name"))
}

func TestParseRegistrationWhatsappNumber(t *testing.T) {
	values := validSubmission()

	// Separators are tolerated, letters are not.
	values.Set("whatsapp_number", "07AB0000")
	_, errs := ParseRegistration(values, "passport.pdf")
	require.NotNil(t, errs)
	assert.Equal(t, "Le numéro WhatsApp ne doit contenir que des chiffres", errs.First("whatsapp_number"))

	values.Set("whatsapp_number", "1234567")
	_, errs = ParseRegistration(values, "passport.pdf")
	require.NotNil(t, errs)
	assert.True(t, errs.Has("whatsapp_number"))

	values.Set("whatsapp_number", "(225) 07 00 00 00")
	reg, errs := ParseRegistration(values, "passport.pdf")
	require.Nil(t, errs)
	require.NotNil(t, reg)
}

func TestParseRegistrationEmail(t *testing.T) {
	values := validSubmission()
	for _, bad := range []string{"not-an-email", "a@b", "a b@c.com", "@c.com"} {
		values.Set("email", bad)
		_, errs := ParseRegistration(values, "passport.pdf")
		require.NotNil(t, errs, "expected %q to be rejected", bad)
		assert.True(t, errs.Has("email"))
	}
}

func TestParseRegistrationRejectsUnknownChoices(t *testing.T) {
	values := validSubmission()
	values.Set("nationality", "martienne")
	values.Set("investment_amount", "999999")
	values.Set("experience_level", "expert")
	values.Set("payment_method", "cheque")

	_, errs := ParseRegistration(values, "passport.pdf")
	require.NotNil(t, errs)
	assert.True(t, errs.Has("nationality"))
	assert.True(t, errs.Has("investment_amount"))
	assert.True(t, errs.Has("experience_level"))
	assert.True(t, errs.Has("payment_method"))
}

func TestParseRegistrationTerms(t *testing.T) {
	values := validSubmission()
	values.Del("terms_accepted")
	_, errs := ParseRegistration(values, "passport.pdf")
	require.NotNil(t, errs)
	assert.True(t, errs.Has("terms_accepted"))

	for _, ok := range []string{"on", "true", "1", "y"} {
		values.Set("terms_accepted", ok)
		reg, errs := ParseRegistration(values, "passport.pdf")
		require.Nil(t, errs, "expected %q to be accepted", ok)
		assert.True(t, reg.TermsAccepted)
	}
}

func TestParseRegistrationDocumentExtension(t *testing.T) {
	values := validSubmission()

	for _, name := range []string{"id.pdf", "id.jpg", "id.JPEG", "id.png"} {
		_, errs := ParseRegistration(values, name)
		assert.Nil(t, errs, "expected %q to be accepted", name)
	}

	for _, name := range []string{"id.exe", "id.gif", "id", "id.pdf.exe"} {
		_, errs := ParseRegistration(values, name)
		require.NotNil(t, errs, "expected %q to be rejected", name)
		assert.True(t, errs.Has("identity_document"))
	}
}

func TestParseLogin(t *testing.T) {
	login, errs := ParseLogin(url.Values{
		"username": {" admin "},
		"password": {" secret "},
	})
	require.Nil(t, errs)
	assert.Equal(t, "admin", login.Username)
	// The password keeps its surrounding spaces.
	assert.Equal(t, " secret ", login.Password)

	_, errs = ParseLogin(url.Values{})
	require.NotNil(t, errs)
	assert.True(t, errs.Has("username"))
	assert.True(t, errs.Has("password"))
}

func TestParseWhatsAppSettings(t *testing.T) {
	settings, errs := ParseWhatsAppSettings(url.Values{
		"whatsapp_group_link": {"https://chat.whatsapp.com/ABC123"},
	})
	require.Nil(t, errs)
	assert.Equal(t, "https://chat.whatsapp.com/ABC123", settings.GroupLink)

	_, errs = ParseWhatsAppSettings(url.Values{"whatsapp_group_link": {"short"}})
	require.NotNil(t, errs)
	assert.True(t, errs.Has("whatsapp_group_link"))

	_, errs = ParseWhatsAppSettings(url.Values{})
	require.NotNil(t, errs)
	assert.True(t, errs.Has("whatsapp_group_link"))
}
