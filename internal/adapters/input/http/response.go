package http

import (
	"errors"
	"net/http"
	"time"

	"meal-order-client/internal/domain"
	"meal-order-client/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// Unauthorized response
	Unauthorized = Status{Code: http.StatusUnauthorized, Message: []string{"Sorry, Your session has ended. Please log in again"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
	// ConFlict response
	ConFlict = Status{Code: http.StatusConflict, Message: []string{"Please maintain your auto-order settings first"}}
	// BadGateway response
	BadGateway = Status{Code: http.StatusBadGateway, Message: []string{"Sorry, The meal service is not responding. Please try again"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// SessionResponse struct - HTTP response DTO for the session
	SessionResponse struct {
		State         domain.SessionState `json:"state"`
		Principal     string              `json:"principal,omitempty"`
		Authenticated bool                `json:"authenticated"`
		Redirect      string              `json:"redirect,omitempty"`
	}

	// RedirectResponse struct - HTTP response DTO telling the view where to go
	RedirectResponse struct {
		Redirect string `json:"redirect"`
	}

	// ExclusionResponse struct - HTTP response DTO for an exclusion record
	ExclusionResponse struct {
		AccountName   string   `json:"accountName"`
		NoOrderDishes []string `json:"noOrderDishes"`
		ExpireDate    string   `json:"expireDate,omitempty"`
	}

	// AutoOrderInfoResponse struct - HTTP response DTO for the stored settings
	AutoOrderInfoResponse struct {
		NoOrderDishes []string `json:"noOrderDishes"`
		ExpireDate    *string  `json:"expireDate"`
	}

	// OrderResponse struct - HTTP response DTO for an order task
	OrderResponse struct {
		ID          string             `json:"id"`
		AccountName string             `json:"accountName,omitempty"`
		OrderDish   string             `json:"orderDish"`
		OrderDate   string             `json:"orderDate,omitempty"`
		OrderStatus domain.OrderStatus `json:"orderStatus"`
		CreateDate  *time.Time         `json:"createDate,omitempty"`
		ErrorMsg    *string            `json:"errorMsg,omitempty"`
	}

	// AccountResponse struct - HTTP response DTO for a meal account
	AccountResponse struct {
		AccountName string `json:"accountName"`
		HasCookie   bool   `json:"hasCookie"`
	}
)

func newSessionResponse(session domain.Session) SessionResponse {
	return SessionResponse{
		State:         session.State(),
		Principal:     session.Principal,
		Authenticated: session.IsAuthenticated(),
	}
}

func newExclusionResponse(record *domain.ExclusionRecord, location *time.Location) ExclusionResponse {
	response := ExclusionResponse{
		AccountName:   record.Owner,
		NoOrderDishes: domain.NormalizeDishes(record.ExcludedDishes),
	}
	if !record.ExpireAt.IsZero() {
		response.ExpireDate = domain.FormatDate(record.ExpireAt, location)
	}
	return response
}

func newOrderResponse(order domain.OrderRequest, location *time.Location) OrderResponse {
	response := OrderResponse{
		ID:          order.ID,
		AccountName: order.Owner,
		OrderDish:   order.DishName,
		OrderStatus: order.Status,
		ErrorMsg:    order.ErrorMessage,
	}
	if !order.Date.IsZero() {
		response.OrderDate = domain.FormatDate(order.Date, location)
	}
	if !order.CreatedAt.IsZero() {
		createdAt := order.CreatedAt
		response.CreateDate = &createdAt
	}
	return response
}

// statusWith copies status and appends detail to its messages
func statusWith(status Status, detail ...string) Status {
	messages := make([]string, 0, len(status.Message)+len(detail))
	messages = append(messages, status.Message...)
	messages = append(messages, detail...)
	return Status{Code: status.Code, Message: messages}
}

// unauthorized answers 401 and points the view at the login page
func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{
		Status: Unauthorized,
		Data:   RedirectResponse{Redirect: domain.LoginPath},
	})
}

// writeError maps a use case error onto a status code and response body
func writeError(c *fiber.Ctx, err error) error {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: statusWith(BadRequest, verr.Messages...)})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrNotAuthenticated):
		return unauthorized(c)
	case errors.Is(err, domain.ErrNotConfigured), errors.Is(err, domain.ErrExpired):
		return c.Status(fiber.StatusConflict).JSON(ResponseBody{Status: statusWith(ConFlict, err.Error())})
	case errors.Is(err, domain.ErrInvalidRequest):
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: statusWith(BadRequest, err.Error())})
	case errors.Is(err, domain.ErrUpdateFailed), errors.Is(err, domain.ErrTransport):
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadGateway).JSON(ResponseBody{Status: statusWith(BadGateway, err.Error())})
	default:
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: statusWith(InternalServerError, err.Error())})
	}
}
