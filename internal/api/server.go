package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/globetrotter/api/docs"
	v1 "github.com/globetrotter/api/internal/api/handler/v1"
	"github.com/globetrotter/api/internal/api/middleware"
	"github.com/globetrotter/api/internal/config"
	"github.com/globetrotter/api/internal/repository"
	"github.com/globetrotter/api/internal/repository/dao"
	"github.com/globetrotter/api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	tripHandler := s.initTripHandler(db)
	cityHandler := s.initCityHandler(db)
	postHandler := s.initPostHandler(db)
	adminHandler := s.initAdminHandler(db)
	s.MountHandlers(authHandler, tripHandler, cityHandler, postHandler, adminHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewAuthService(repo)
	uSvc := service.NewUserService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc, uSvc)

	return handler
}

func (s *Server) initTripHandler(db *gorm.DB) *v1.TripHandler {
	tripRepo := repository.NewTripRepository(dao.NewTripDAO(db))
	cityRepo := repository.NewCityRepository(dao.NewCityDAO(db))
	svc := service.NewTripService(tripRepo, cityRepo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewTripHandler(svc, uSvc)

	return handler
}

func (s *Server) initCityHandler(db *gorm.DB) *v1.CityHandler {
	repo := repository.NewCityRepository(dao.NewCityDAO(db))
	svc := service.NewCityService(repo)
	handler := v1.NewCityHandler(svc)

	return handler
}

func (s *Server) initPostHandler(db *gorm.DB) *v1.PostHandler {
	repo := repository.NewPostRepository(dao.NewPostDAO(db))
	svc := service.NewPostService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewPostHandler(svc, uSvc)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB) *v1.AdminHandler {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	tripRepo := repository.NewTripRepository(dao.NewTripDAO(db))
	postRepo := repository.NewPostRepository(dao.NewPostDAO(db))
	svc := service.NewAdminService(userRepo, tripRepo, postRepo)
	uSvc := service.NewUserService(userRepo)
	handler := v1.NewAdminHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	tripHandler *v1.TripHandler,
	cityHandler *v1.CityHandler,
	postHandler *v1.PostHandler,
	adminHandler *v1.AdminHandler,
) {
	const basePath = "/api/v1"

	open := s.Router.Group(basePath)
	{
		open.POST("/auth/register", authHandler.HandleRegister)
		open.POST("/auth/login", authHandler.HandleLogin)

		open.GET("/cities", cityHandler.HandleSearchCities)
		open.GET("/cities/:cityID", cityHandler.HandleGetCity)
		open.GET("/cities/:cityID/activities", cityHandler.HandleGetCityActivities)

		// Shared itineraries are readable without an account.
		open.GET("/public/trips/:publicURL", tripHandler.HandleGetPublicTrip)

		open.GET("/posts", postHandler.HandleGetPosts)
	}

	authed := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/auth/me", authHandler.HandleGetMe)
		authed.PUT("/auth/profile", authHandler.HandleUpdateProfile)

		authed.POST("/trips", tripHandler.HandleCreateTrip)
		authed.GET("/trips", tripHandler.HandleGetTrips)
		authed.GET("/trips/:tripID", tripHandler.HandleGetTrip)
		authed.PUT("/trips/:tripID", tripHandler.HandleUpdateTrip)
		authed.DELETE("/trips/:tripID", tripHandler.HandleDeleteTrip)
		authed.POST("/trips/:tripID/publish", tripHandler.HandlePublishTrip)

		authed.POST("/stops", tripHandler.HandleCreateStop)
		authed.GET("/trips/:tripID/stops", tripHandler.HandleGetStops)
		authed.DELETE("/stops/:stopID", tripHandler.HandleDeleteStop)

		authed.POST("/trip-activities", tripHandler.HandleCreateActivity)
		authed.GET("/trips/:tripID/activities", tripHandler.HandleGetActivities)
		authed.DELETE("/trip-activities/:activityID", tripHandler.HandleDeleteActivity)

		authed.POST("/expenses", tripHandler.HandleCreateExpense)
		authed.GET("/trips/:tripID/expenses", tripHandler.HandleGetExpenses)
		authed.GET("/trips/:tripID/budget", tripHandler.HandleGetBudget)

		authed.POST("/posts", postHandler.HandleCreatePost)
		authed.POST("/posts/:postID/like", postHandler.HandleLikePost)

		authed.GET("/admin/stats", adminHandler.HandleGetStats)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "GlobeTrotter API"
	docs.SwaggerInfo.Description = "Trip planning API with itineraries, budgets and a community feed."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
