package domain

// Account is a meal platform account registered for auto-ordering
type Account struct {
	Name     string `json:"account_name" validate:"required,max=64"`
	Password string `json:"-" validate:"required"`
	Cookie   string `json:"cookie,omitempty"`
}
