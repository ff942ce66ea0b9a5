package main

// @title Meal Order Client APIs
// @version 1.0
// @description Session, navigation guard, dish exclusion list and order submission for the meal auto-order backend.
// @termsOfService https://www.aofiee.dev/

// @contact.name API Support
// @contact.url https://www.aofiee.dev/
// @contact.email aofiee@aofiee.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	_ "time/tzdata"

	_ "meal-order-client/docs"
	protocol "meal-order-client/protocal"

	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
