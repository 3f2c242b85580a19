package main

import (
	_ "lotes_backoffice/docs"
	"lotes_backoffice/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Lotes Back-office API
// @version         1.0
// @description     Back-office BFF for lot sales: sale wizard, participant assignment and payment views over the sales backend.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Session
// @in header
// @name X-Session-ID
// @description Session id returned by POST /auth/login (also sent as the bo_session cookie).

func main() {
	routes.Run()
}
