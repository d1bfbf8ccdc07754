package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/devlink/backend/internal/client"
	"github.com/devlink/backend/internal/config"
	"github.com/devlink/backend/internal/db"
	"github.com/devlink/backend/internal/handler"
	"github.com/devlink/backend/internal/service"
)

// @title DevLink API
// @version 1.0
// @description Social network backend: users, profiles and posts.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-auth-token
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Main] no .env file: %v", err)
	}

	cfg := config.Load()
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("[Main] JWT_SECRET is required")
	}

	ctx := context.Background()

	store, err := db.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("[Main] postgres init failed: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("[Main] schema init failed: %v", err)
	}

	codec := service.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authSvc := service.NewAuthService(store, codec, client.NewGravatar())
	profileSvc := service.NewProfileService(store)
	postSvc := service.NewPostService(store, store)

	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(authSvc)
	profileHandler := handler.NewProfileHandler(profileSvc)
	postHandler := handler.NewPostHandler(postSvc)

	router := gin.Default()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins))
	}

	router.GET("/", handler.Root)
	router.GET("/api/openapi.json", handler.OpenAPIDoc)

	// Public surface: registration, sign-in and read-only listings.
	public := router.Group("/api")
	public.POST("/user", userHandler.Register)
	public.POST("/auth", authHandler.Login)
	public.GET("/profile/all", profileHandler.All)
	public.GET("/profile/user/:id", profileHandler.ByUserID)
	public.GET("/post", postHandler.All)

	// Everything else sits behind the auth gate.
	protected := router.Group("/api", handler.AuthMiddleware(codec))
	protected.GET("/auth", authHandler.Me)
	protected.GET("/profile/me", profileHandler.Me)
	protected.POST("/profile", profileHandler.Upsert)
	protected.DELETE("/profile", profileHandler.Delete)
	protected.PUT("/profile/experience", profileHandler.AddExperience)
	protected.PUT("/profile/experience/:exp_id", profileHandler.RemoveExperience)
	protected.PUT("/profile/education", profileHandler.AddEducation)
	protected.PUT("/profile/education/:edu_id", profileHandler.RemoveEducation)
	protected.POST("/post", postHandler.Create)
	protected.GET("/post/:post_id", postHandler.ByID)
	protected.PUT("/post/:post_id", postHandler.Update)
	protected.DELETE("/post/:post_id", postHandler.Delete)
	protected.PUT("/post/:post_id/like", postHandler.Like)
	protected.DELETE("/post/:post_id/like", postHandler.Unlike)
	protected.POST("/post/:post_id/comment", postHandler.AddComment)
	protected.DELETE("/post/:post_id/comment/:comment_id", postHandler.RemoveComment)

	addr := ":" + cfg.Server.Port
	log.Printf("[Main] server started on %s (mode=%s)", addr, cfg.Server.Mode)
	if err := router.Run(addr); err != nil {
		log.Fatalf("[Main] server stopped: %v", err)
	}
}
