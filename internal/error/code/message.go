package code

// User-facing messages, in the application's locale.
var codeMessageMap = map[int]string{
	ErrSuccess:         "Succès",
	ErrUnknown:         "Erreur interne du serveur",
	ErrBind:            "Paramètres de requête invalides",
	ErrValidation:      "Données invalides",
	ErrTooManyRequests: "Trop de requêtes, veuillez réessayer plus tard",

	ErrLoginFailed:    "Nom d'utilisateur ou mot de passe incorrect.",
	ErrSessionInvalid: "Veuillez vous connecter pour accéder à cette page.",

	ErrUploadMissing:  "La pièce d'identité est obligatoire",
	ErrUploadRejected: "Seuls les fichiers PDF, JPG, JPEG et PNG sont autorisés",
	ErrUploadTooLarge: "Le fichier est trop volumineux. Taille maximale autorisée : 16 MB",
	ErrUploadWrite:    "Erreur lors du téléchargement du fichier. Veuillez réessayer.",

	ErrSettingsUpdate: "Erreur lors de la mise à jour.",

	ErrDatabase:       "Erreur lors de l'inscription. Veuillez réessayer.",
	ErrRecordNotFound: "Page non trouvée",
}

var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTooManyRequests: StatusTooManyRequests,

	ErrLoginFailed:    StatusUnauthorized,
	ErrSessionInvalid: StatusUnauthorized,

	ErrUploadMissing:  StatusBadRequest,
	ErrUploadRejected: StatusBadRequest,
	ErrUploadTooLarge: StatusPayloadTooLarge,
	ErrUploadWrite:    StatusInternalServerError,

	ErrSettingsUpdate: StatusInternalServerError,

	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code.
func GetMessage(errorCode int) string {
	if msg, ok := codeMessageMap[errorCode]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code.
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
