package routes

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "insurance_xpto/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cleanup := getRoutes(ctx)
	defer cleanup()

	port := getenvDefault("PORT", defaultPort)
	errCh := make(chan error, 1)
	go func() {
		errCh <- router.Run(":" + port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	case <-ctx.Done():
		log.Printf("[http] shutdown signal received")
	}
}

func getRoutes(ctx context.Context) func() {
	deps, err := buildDependencies(ctx, configFromEnv())
	if err != nil {
		log.Fatalf("Failed to wire dependencies: %v", err)
	}

	v1 := router.Group("/v1")
	Register(v1, deps.handlers, deps.gate)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		deps.close(shutdownCtx)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
