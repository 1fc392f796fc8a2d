package routes

import (
	_ "buildsite/docs" // This will be auto-generated
	"buildsite/internal/adapter/http/handlers"
	repository2 "buildsite/internal/adapter/persistence/repository"
	"buildsite/internal/infrastructure/artifacts"
	"buildsite/internal/infrastructure/database"
	"buildsite/internal/infrastructure/payments"
	"buildsite/internal/usecase"
	"buildsite/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

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

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	milestoneRepo := repository2.NewMilestoneDynamoRepository(ddb)
	boqRepo := repository2.NewBOQItemDynamoRepository(ddb)
	expenseRepo := repository2.NewExpenseDynamoRepository(ddb)
	scheduleRepo := repository2.NewPaymentScheduleDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var artifactStore interfaces.IArtifactStore
	mediaStore, err := artifacts.NewMediaStore(os.Getenv("MEDIA_STORE_ENDPOINT"))
	if err != nil {
		log.Printf("Media store not configured: %v", err)
	} else {
		artifactStore = mediaStore
	}

	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	budgetUseCase := usecase.NewBudgetUseCase(boqRepo, milestoneRepo)
	expenseUseCase := usecase.NewExpenseUseCase(expenseRepo, milestoneRepo)
	paymentUseCase := usecase.NewPaymentUseCase(scheduleRepo, paymentRepo, milestoneRepo, paymentGateway)
	// Completed milestones release the next schedule entry for payment.
	milestoneUseCase := usecase.NewMilestoneUseCase(milestoneRepo, projectRepo, scheduleRepo, paymentUseCase)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	milestoneHandler := handlers.NewMilestoneHandler(milestoneUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	expenseHandler := handlers.NewExpenseHandler(expenseUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, artifactStore)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConstructionRoutes(v1, projectHandler, milestoneHandler, budgetHandler, expenseHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
