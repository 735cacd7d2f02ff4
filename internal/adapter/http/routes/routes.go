package routes

import (
	"log"
	"os"
	"strconv"

	_ "fieldops/docs" // This will be auto-generated
	"fieldops/internal/adapter/http/handlers"
	repository2 "fieldops/internal/adapter/persistence/repository"
	"fieldops/internal/infrastructure/database"
	"fieldops/internal/infrastructure/payments"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	visitRepo := repository2.NewVisitDynamoRepository(ddb)
	techRepo := repository2.NewTechnicianDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	consentRepo := repository2.NewConsentEventDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	jobUseCase := usecase.NewJobUseCase(jobRepo, visitRepo)
	visitUseCase := usecase.NewVisitUseCase(visitRepo, jobRepo, paymentGateway)
	dispatchUseCase := usecase.NewDispatchUseCase(visitRepo, techRepo)
	technicianUseCase := usecase.NewTechnicianUseCase(techRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, techRepo)
	consentUseCase := usecase.NewConsentUseCase(consentRepo)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	visitHandler := handlers.NewVisitHandler(visitUseCase)
	dispatchHandler := handlers.NewDispatchHandler(dispatchUseCase)
	technicianHandler := handlers.NewTechnicianHandler(technicianUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	consentHandler := handlers.NewConsentHandler(consentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler, visitHandler)
	addVisitRoutes(v1, visitHandler)
	addDispatchRoutes(v1, dispatchHandler, visitHandler)
	addTeamRoutes(v1, technicianHandler, vehicleHandler)
	addConsentRoutes(v1, consentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
