package api

type passphraseInput struct {
	Passphrase string `json:"passphrase" form:"passphrase"`
}

type changePassphraseInput struct {
	CurrentPassphrase string `json:"current_passphrase" form:"current_passphrase"`
	NewPassphrase     string `json:"new_passphrase" form:"new_passphrase"`
}

type profileInput struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}

type themeInput struct {
	Mode string `json:"mode" form:"mode"`
}

type statusInput struct {
	Status string `json:"status" form:"status"`
}

type hoursInput struct {
	Hours   float64 `json:"hours" form:"hours"`
	Ignored bool    `json:"ignored" form:"ignored"`
}

type moodInput struct {
	Date  string `json:"date" form:"date"`
	Scale int    `json:"scale" form:"scale"`
	Notes string `json:"notes" form:"notes"`
}

type principleInput struct {
	Text string `json:"text" form:"text"`
}
