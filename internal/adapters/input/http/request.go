package http

type (
	// LoginRequest struct - HTTP request DTO
	LoginRequest struct {
		Username string `json:"username" validate:"required,max=64" form:"username"`
	}

	// NavigateQuery struct - HTTP query request DTO
	NavigateQuery struct {
		To string `json:"to" validate:"required" query:"to"`
	}

	// ExclusionRequest struct - HTTP request DTO
	ExclusionRequest struct {
		Dish string `json:"dish" validate:"required,max=100" form:"dish"`
	}

	// ExpireDateRequest struct - HTTP request DTO
	ExpireDateRequest struct {
		ExpireDate string `json:"expireDate" validate:"required,datetime=2006-01-02" form:"expireDate"`
	}

	// SubmitOrderRequest struct - HTTP request DTO
	SubmitOrderRequest struct {
		OrderDish string `json:"orderDish" validate:"required,max=100" form:"orderDish"`
		OrderDate string `json:"orderDate" validate:"required,datetime=2006-01-02" form:"orderDate"`
	}

	// DishQuery struct - HTTP query request DTO
	DishQuery struct {
		Date string `json:"date" validate:"omitempty,datetime=2006-01-02" query:"date"`
	}

	// AccountRequest struct - HTTP request DTO
	AccountRequest struct {
		AccountName     string `json:"accountName" validate:"required,max=64" form:"accountName"`
		AccountPassword string `json:"accountPassword" validate:"required" form:"accountPassword"`
		AccountCookie   string `json:"accountCookie" validate:"omitempty" form:"accountCookie"`
	}
)
