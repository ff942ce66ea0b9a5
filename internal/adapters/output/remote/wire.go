package remote

import (
	"encoding/json"
	"strings"
	"time"

	"meal-order-client/internal/domain"

	"github.com/sirupsen/logrus"
)

// API request/response structures for the meal backend

// envelope wraps every meal backend response
type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// exclusionRecordAPI is an exclusion record as listed by the backend
type exclusionRecordAPI struct {
	AccountName   string `json:"accountName"`
	NoOrderDishes string `json:"noOrderDishes"`
	ExpireDate    string `json:"expireDate"`
}

// exclusionUpsertAPI is the body of the exclusion upsert call
type exclusionUpsertAPI struct {
	AccountName   string `json:"accountName"`
	ExpireDate    string `json:"expireDate"`
	NoOrderDishes string `json:"noOrderDishes"`
}

// orderTaskPageAPI is one page of order tasks
type orderTaskPageAPI struct {
	Records []orderTaskAPI `json:"records"`
}

// orderTaskAPI is an order task as listed by the backend
type orderTaskAPI struct {
	UID         flexString `json:"uid"`
	OrderDish   string     `json:"orderDish"`
	AccountName string     `json:"accountName"`
	OrderDate   string     `json:"orderDate"`
	OrderStatus flexString `json:"orderStatus"`
	CreateDate  string     `json:"createDate"`
	ErrorMsg    *string    `json:"errorMsg"`
}

// orderTaskCreateAPI is the body of the order creation call
type orderTaskCreateAPI struct {
	AccountName string `json:"accountName"`
	OrderDish   string `json:"orderDish"`
	OrderDate   string `json:"orderDate"`
}

// accountAPI is a meal platform account on the wire
type accountAPI struct {
	AccountName     string `json:"accountName"`
	AccountPassword string `json:"accountPassword,omitempty"`
	AccountCookie   string `json:"accountCookie,omitempty"`
}

// flexString accepts a JSON string or number. Task ids and statuses are
// numeric in some backend versions; numbers are kept digit for digit.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// decodeDishList splits the comma-joined wire form into a dish set
func decodeDishList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return domain.NormalizeDishes(strings.Split(raw, ","))
}

// encodeDishList joins a dish set into its wire form
func encodeDishList(dishes []string) string {
	return strings.Join(domain.NormalizeDishes(dishes), ",")
}

func (r exclusionRecordAPI) toDomain(location *time.Location) domain.ExclusionRecord {
	record := domain.ExclusionRecord{
		Owner:          r.AccountName,
		ExcludedDishes: decodeDishList(r.NoOrderDishes),
	}
	if strings.TrimSpace(r.ExpireDate) != "" {
		expireAt, err := domain.ParseDate(r.ExpireDate, location)
		if err != nil {
			// Left zero, which reads as expired
			logrus.Warnf("Ignoring expire date of %s: %v", r.AccountName, err)
		} else {
			record.ExpireAt = expireAt
			record.ExpireText = r.ExpireDate
		}
	}
	return record
}

func (r orderTaskAPI) toDomain(location *time.Location) domain.OrderRequest {
	order := domain.OrderRequest{
		ID:           string(r.UID),
		Owner:        r.AccountName,
		DishName:     r.OrderDish,
		Status:       domain.ParseOrderStatus(string(r.OrderStatus), r.ErrorMsg),
		ErrorMessage: r.ErrorMsg,
	}
	if date, err := domain.ParseDate(r.OrderDate, location); err == nil {
		order.Date = domain.StartOfDay(date, location)
	}
	if createdAt, err := domain.ParseDate(r.CreateDate, location); err == nil {
		order.CreatedAt = createdAt
	}
	return order
}
