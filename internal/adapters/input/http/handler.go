package http

import (
	"context"
	"net/url"
	"time"

	"meal-order-client/internal/domain"
	"meal-order-client/internal/ports/input"
	"meal-order-client/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	guard      input.SessionGuard
	exclusions input.ExclusionService
	orders     input.OrderService
	accounts   input.AccountService
	validator  validator.Validator
	location   *time.Location
	pings      []func(ctx context.Context) error
}

// New func - Creates new HTTP handler
func New(guard input.SessionGuard, exclusions input.ExclusionService, orders input.OrderService, accounts input.AccountService, location *time.Location) *HTTPHandler {
	if location == nil {
		location = time.Local
	}
	return &HTTPHandler{
		guard:      guard,
		exclusions: exclusions,
		orders:     orders,
		accounts:   accounts,
		validator:  validator.New(),
		location:   location,
	}
}

// WithPing adds a dependency check to the health endpoint
func (hdl *HTTPHandler) WithPing(ping func(ctx context.Context) error) *HTTPHandler {
	hdl.pings = append(hdl.pings, ping)
	return hdl
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	for _, ping := range hdl.pings {
		if err := ping(c.UserContext()); err != nil {
			logrus.Errorln(err)
			return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
		}
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// RequireAuth rejects requests while the session is anonymous
func (hdl *HTTPHandler) RequireAuth(c *fiber.Ctx) error {
	if !hdl.guard.Session().IsAuthenticated() {
		return unauthorized(c)
	}
	return c.Next()
}

// Login godoc
// @Summary Login
// @Description Record the user as logged in. There is no password check.
// @Tags SESSION
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/login	[post]
// @Produce json
// @param Login body LoginRequest true "Login"
func (hdl *HTTPHandler) Login(c *fiber.Ctx) error {
	var request LoginRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return writeError(c, err)
	}
	if err := hdl.guard.Login(c.UserContext(), request.Username); err != nil {
		return writeError(c, err)
	}

	response := newSessionResponse(hdl.guard.Session())
	response.Redirect = domain.HomePath
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// Logout godoc
// @Summary Logout
// @Description Clear the session
// @Tags SESSION
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/logout	[post]
// @Produce json
func (hdl *HTTPHandler) Logout(c *fiber.Ctx) error {
	if err := hdl.guard.Logout(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: RedirectResponse{Redirect: domain.LoginPath}})
}

// GetSession godoc
// @Summary Get session
// @Description Current authentication state
// @Tags SESSION
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/session	[get]
// @Produce json
func (hdl *HTTPHandler) GetSession(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: newSessionResponse(hdl.guard.Session())})
}

// Navigate godoc
// @Summary Navigate
// @Description Ask the navigation guard whether a view may be entered
// @Tags SESSION
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/navigate	[get]
// @Produce json
// @param to query string true "view path"
func (hdl *HTTPHandler) Navigate(c *fiber.Ctx) error {
	var request NavigateQuery
	if err := c.QueryParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: hdl.guard.Navigate(request.To)})
}

// GetExclusions godoc
// @Summary Get exclusions
// @Description Dishes currently excluded from auto-ordering. Empty when none are set or they have expired.
// @Tags EXCLUSION
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/exclusions	[get]
// @Produce json
func (hdl *HTTPHandler) GetExclusions(c *fiber.Ctx) error {
	dishes, err := hdl.exclusions.GetActiveExclusions(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: dishes})
}

// GetExclusionDetail godoc
// @Summary Get exclusion detail
// @Description Full exclusion record. 409 when it is missing or expired.
// @Tags EXCLUSION
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/exclusions/detail	[get]
// @Produce json
func (hdl *HTTPHandler) GetExclusionDetail(c *fiber.Ctx) error {
	record, err := hdl.exclusions.GetExclusionDetail(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: newExclusionResponse(record, hdl.location)})
}

// GetAutoOrderInfo godoc
// @Summary Get auto-order info
// @Description Stored exclusion settings, expired or not
// @Tags EXCLUSION
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/exclusions/info	[get]
// @Produce json
func (hdl *HTTPHandler) GetAutoOrderInfo(c *fiber.Ctx) error {
	info, err := hdl.exclusions.GetAutoOrderInfo(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	response := AutoOrderInfoResponse{NoOrderDishes: info.ExcludedDishes}
	if info.ExpireAt != nil {
		expireDate := domain.FormatDate(*info.ExpireAt, hdl.location)
		response.ExpireDate = &expireDate
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// AddExclusion godoc
// @Summary Add exclusion
// @Description Add a dish to the exclusion list
// @Tags EXCLUSION
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/exclusions	[post]
// @Produce json
// @param AddExclusion body ExclusionRequest true "AddExclusion"
func (hdl *HTTPHandler) AddExclusion(c *fiber.Ctx) error {
	var request ExclusionRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return writeError(c, err)
	}
	record, err := hdl.exclusions.AddExclusion(c.UserContext(), request.Dish)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: newExclusionResponse(record, hdl.location)})
}

// RemoveExclusion godoc
// @Summary Remove exclusion
// @Description Remove a dish from the exclusion list
// @Tags EXCLUSION
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/exclusions/{dish}	[delete]
// @Produce json
// @param dish path string true "dish name"
func (hdl *HTTPHandler) RemoveExclusion(c *fiber.Ctx) error {
	dish, err := url.PathUnescape(c.Params("dish"))
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	record, err := hdl.exclusions.RemoveExclusion(c.UserContext(), dish)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: newExclusionResponse(record, hdl.location)})
}

// UpdateExpireDate godoc
// @Summary Update expire date
// @Description Set the date until which the exclusion list applies
// @Tags EXCLUSION
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/exclusions/expire-date	[put]
// @Produce json
// @param UpdateExpireDate body ExpireDateRequest true "UpdateExpireDate"
func (hdl *HTTPHandler) UpdateExpireDate(c *fiber.Ctx) error {
	var request ExpireDateRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return writeError(c, err)
	}
	date, err := domain.ParseDate(request.ExpireDate, hdl.location)
	if err != nil {
		return writeError(c, err)
	}
	record, err := hdl.exclusions.UpdateExpireDate(c.UserContext(), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: newExclusionResponse(record, hdl.location)})
}

// ListOrders godoc
// @Summary List orders
// @Description Order tasks known to the meal backend
// @Tags ORDER
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/orders	[get]
// @Produce json
func (hdl *HTTPHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := hdl.orders.ListOrders(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	response := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, newOrderResponse(order, hdl.location))
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// SubmitOrder godoc
// @Summary Submit order
// @Description Create an order task for a dish on a date
// @Tags ORDER
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/orders	[post]
// @Produce json
// @param SubmitOrder body SubmitOrderRequest true "SubmitOrder"
func (hdl *HTTPHandler) SubmitOrder(c *fiber.Ctx) error {
	var request SubmitOrderRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return writeError(c, err)
	}
	date, err := domain.ParseDate(request.OrderDate, hdl.location)
	if err != nil {
		return writeError(c, err)
	}
	if err := hdl.orders.SubmitOrder(c.UserContext(), request.OrderDish, date); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// DeleteOrder godoc
// @Summary Delete order
// @Description Remove an order task
// @Tags ORDER
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/orders/{id}	[delete]
// @Produce json
// @param id path string true "order task id"
func (hdl *HTTPHandler) DeleteOrder(c *fiber.Ctx) error {
	if err := hdl.orders.DeleteOrder(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// ListDishes godoc
// @Summary List dishes
// @Description Dishes on offer on a date, today when omitted
// @Tags ACCOUNT
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/dishes	[get]
// @Produce json
// @param date query string false "yyyy-mm-dd"
func (hdl *HTTPHandler) ListDishes(c *fiber.Ctx) error {
	var request DishQuery
	if err := c.QueryParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return writeError(c, err)
	}
	var date time.Time
	if request.Date != "" {
		parsed, err := domain.ParseDate(request.Date, hdl.location)
		if err != nil {
			return writeError(c, err)
		}
		date = parsed
	}
	dishes, err := hdl.accounts.ListDishes(c.UserContext(), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: dishes})
}

// ListAccounts godoc
// @Summary List accounts
// @Description Meal accounts registered for auto-ordering
// @Tags ACCOUNT
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/accounts	[get]
// @Produce json
func (hdl *HTTPHandler) ListAccounts(c *fiber.Ctx) error {
	accounts, err := hdl.accounts.ListAccounts(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	response := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, AccountResponse{AccountName: account.Name, HasCookie: account.Cookie != ""})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// AddAccount godoc
// @Summary Add account
// @Description Register a meal account for auto-ordering
// @Tags ACCOUNT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/accounts	[post]
// @Produce json
// @param AddAccount body AccountRequest true "AddAccount"
func (hdl *HTTPHandler) AddAccount(c *fiber.Ctx) error {
	var request AccountRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return writeError(c, err)
	}
	account := domain.Account{
		Name:     request.AccountName,
		Password: request.AccountPassword,
		Cookie:   request.AccountCookie,
	}
	if err := hdl.accounts.AddAccount(c.UserContext(), account); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}
