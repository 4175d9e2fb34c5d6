package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashurstore/commerce-api/internal/aws"
	"github.com/ashurstore/commerce-api/internal/cart"
	"github.com/ashurstore/commerce-api/internal/catalog"
	"github.com/ashurstore/commerce-api/internal/config"
	"github.com/ashurstore/commerce-api/internal/handlers"
	"github.com/ashurstore/commerce-api/internal/metrics"
	"github.com/ashurstore/commerce-api/internal/notify"
	"github.com/ashurstore/commerce-api/internal/orders"
	"github.com/ashurstore/commerce-api/internal/reports"
	"github.com/ashurstore/commerce-api/internal/session"
	"github.com/ashurstore/commerce-api/internal/validation"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(session.Middleware())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	session.RegisterRoutes(r)
	handlers.RegisterCartRoutes(r, cfg)
	handlers.RegisterOrderRoutes(r, cfg)
	handlers.RegisterProductRoutes(r, cfg)
	handlers.RegisterCategoryRoutes(r, cfg)
	handlers.RegisterOfferRoutes(r, cfg)

	return r
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.FromEnv()

	clients, err := aws.NewClients(context.Background())
	if err != nil {
		logger.Fatal("failed to init aws clients", zap.Error(err))
	}

	catalogSvc := catalog.NewService(
		catalog.NewProductStore(clients.DynamoDB, cfg.ProductsTable),
		catalog.NewDeletedProductStore(clients.DynamoDB, cfg.DeletedProductsTable),
		catalog.NewCategoryStore(clients.DynamoDB, cfg.CategoriesTable),
		catalog.NewOfferStore(clients.DynamoDB, cfg.OffersTable),
		logger,
	)

	cartSvc := cart.NewService(cart.NewStore(clients.DynamoDB, cfg.CartsTable), catalogSvc, logger)

	notifier := notify.NewQueueNotifier(aws.NewPublisher(clients.SQS, cfg.NotificationsQueueURL))
	sink := metrics.NewPublisher(clients.CloudWatch, logger)

	orderStore := orders.NewStore(clients.DynamoDB, cfg.OrdersTable)
	orderSvc := orders.NewService(orderStore, cartSvc, notifier, sink, logger)

	reportSvc := reports.NewService(orderStore, sink, logger)

	hcfg := handlers.HandlerConfig{
		Carts:    cartSvc,
		Orders:   orderSvc,
		Catalog:  catalogSvc,
		Reports:  reportSvc,
		Validate: validation.New(),
		Logger:   logger,
	}

	r := setupRouter(hcfg)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server
	// for development. The daily report job only runs in this mode; deployed
	// environments trigger it through a scheduled invocation of the worker.
	if cfg.RunLocal {
		mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
		job := reports.NewDailyJob(reportSvc, mailer, cfg.AdminEmail, logger)

		var sched reports.Scheduler = reports.NewCronScheduler()
		if err := sched.Schedule(cfg.ReportCron, job.Run); err != nil {
			logger.Fatal("failed to schedule daily report", zap.Error(err))
		}
		sched.Start()
		defer sched.Stop()

		logger.Info("running local server", zap.String("addr", cfg.ListenAddr))
		if err := r.Run(cfg.ListenAddr); err != nil {
			logger.Fatal("failed to run local server", zap.Error(err))
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
