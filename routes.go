package main

import (
	"net/http"
	"time"

	"agriadmin/config"
	_ "agriadmin/docs"
	"agriadmin/handlers"
	"agriadmin/metrics"
	"agriadmin/middleware"
	"agriadmin/models"
	"agriadmin/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// application carries the dependencies shared by every route.
type application struct {
	tokens     middleware.TokenValidator
	categories middleware.CategoryLookup
	auth       handlers.Authenticator
	users      handlers.UserStore
	farms      handlers.FarmStore
	crops      handlers.CropStore
	diseases   handlers.DiseaseStore
	remedies   handlers.RemedyStore
	images     handlers.ImageStore
	analysis   handlers.AnalysisStore
	subsidies  handlers.SubsidyStore
	catalogs   *services.Catalogs
	metrics    *metrics.Metrics
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowOrigins = origins
	c.AllowCredentials = true
	c.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept", "Origin", "Authorization",
		"X-Requested-With", "Cache-Control", middleware.RequestIDHeader,
	}
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.ExposeHeaders = []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader}
	c.MaxAge = 12 * time.Hour
	return c
}

func newRouter(app *application, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = 8 << 20
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log.StandardLogger()),
		app.metrics.Middleware(),
	)
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	}

	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.MessageResponse{Message: "pong"})
	})
	r.GET("/metrics", gin.WrapH(app.metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	jwt := middleware.JWTChecker(app.tokens)
	admin := middleware.AdminChecker(app.categories)

	// ==================== AUTH ====================
	r.POST("/api/login", handlers.Login(app.auth))
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", handlers.TokenLogin(app.auth))
		auth.POST("/refresh", handlers.RefreshToken(app.auth))
		auth.POST("/logout", jwt, handlers.Logout())
	}

	// ==================== USERS ====================
	users := r.Group("/api/users", jwt, admin)
	{
		users.GET("/getUser", handlers.GetUsers(app.users))
		users.GET("/getUser/:userid", handlers.GetUser(app.users))
		users.POST("/postUser", handlers.CreateUser(app.users))
		users.PUT("/putUser/:userid", handlers.UpdateUser(app.users))
		users.DELETE("/deleteUser/:userid", handlers.DeleteUser(app.users))
		users.GET("/categories", handlers.ListMasters[models.UserCategory](app.catalogs.Categories, "user categories"))
		users.GET("/export", handlers.ExportUsers(app.users))
	}

	// ==================== SUBSIDIES ====================
	subsidies := r.Group("/api/subsidies")
	{
		subsidies.GET("/getSubsidy", handlers.GetSubsidies(app.subsidies))
		subsidies.GET("/getSubsidy/:subsidyid", handlers.GetSubsidy(app.subsidies))
		subsidies.GET("/states", handlers.ListMasters[models.State](app.catalogs.States, "states"))

		managed := subsidies.Group("", jwt, admin)
		managed.POST("/postSubsidy", handlers.CreateSubsidy(app.subsidies))
		managed.PUT("/putSubsidy/:subsidyid", handlers.UpdateSubsidy(app.subsidies))
		managed.DELETE("/deleteSubsidy/:subsidyid", handlers.DeleteSubsidy(app.subsidies))
	}

	// ==================== FARMS & CROPS ====================
	farmcrop := r.Group("/api/farmcrop", jwt, admin)
	{
		farmcrop.GET("/farms", handlers.GetFarms(app.farms))
		farmcrop.GET("/farms/export", handlers.ExportFarms(app.farms))
		farmcrop.GET("/farms/:id", handlers.GetFarm(app.farms))
		farmcrop.GET("/farms/:id/qrcode", handlers.FarmQRCode(app.farms))
		farmcrop.POST("/addfarms", handlers.CreateFarm(app.farms))
		farmcrop.PUT("/updatefarms/:id", handlers.UpdateFarm(app.farms))
		farmcrop.DELETE("/deletefarms/:id", handlers.DeleteFarm(app.farms))

		farmcrop.GET("/crops", handlers.GetCrops(app.crops))
		farmcrop.GET("/crops/export", handlers.ExportCrops(app.crops))
		farmcrop.GET("/crops/:id", handlers.GetCrop(app.crops))
		farmcrop.POST("/addcrops", handlers.CreateCrop(app.crops))
		farmcrop.PUT("/updatecrops/:id", handlers.UpdateCrop(app.crops))
		farmcrop.DELETE("/deletecrops/:id", handlers.DeleteCrop(app.crops))

		masters := farmcrop.Group("/masters")
		registerMaster[models.SoilType](masters, "soiltypes", "soil type", app.catalogs.SoilTypes)
		registerMaster[models.Irrigation](masters, "irrigations", "irrigation method", app.catalogs.Irrigations)
		registerMaster[models.WaterSource](masters, "watersources", "water source", app.catalogs.WaterSources)
		registerMaster[models.CropType](masters, "croptypes", "crop type", app.catalogs.CropTypes)
		registerMaster[models.Plant](masters, "plants", "plant", app.catalogs.Plants)
	}

	// ==================== DISEASES & REMEDIES ====================
	dr := r.Group("/api/diseaseRemedies", jwt, admin)
	{
		dr.GET("/diseases", handlers.GetDiseases(app.diseases))
		dr.GET("/diseases/:diseaseid", handlers.GetDisease(app.diseases))
		dr.GET("/diseases/:diseaseid/remedies", handlers.GetDiseaseRemedies(app.remedies))
		dr.POST("/creatediseases", handlers.CreateDisease(app.diseases))
		dr.PUT("/updatediseases/:diseaseid", handlers.UpdateDisease(app.diseases))
		dr.DELETE("/deletediseases/:diseaseid", handlers.DeleteDisease(app.diseases))

		dr.GET("/remedies", handlers.GetRemedies(app.remedies))
		dr.GET("/remedies/:remedyid", handlers.GetRemedy(app.remedies))
		dr.POST("/createremedies", handlers.CreateRemedy(app.remedies))
		dr.PUT("/updateremedies/:remedyid", handlers.UpdateRemedy(app.remedies))
		dr.DELETE("/deleteremedies/:remedyid", handlers.DeleteRemedy(app.remedies))
		dr.POST("/remedies/map", handlers.MapRemedy(app.remedies))
		dr.DELETE("/remedies/unmap", handlers.UnmapRemedy(app.remedies))

		dr.GET("/images", handlers.GetImages(app.images))
		dr.POST("/addimages", handlers.AddImage(app.images))

		dr.GET("/disease-analysis-results", handlers.GetAnalysisResults(app.analysis))
		dr.GET("/disease-analysis-results/report", handlers.AnalysisReport(app.analysis))
		dr.POST("/createdisease-analysis-results", handlers.CreateAnalysisResult(app.analysis))
	}

	return r
}

// registerMaster mounts list/add/delete for one reference table, e.g.
// GET /masters/soiltypes, POST /masters/addsoiltypes, DELETE /masters/deletesoiltypes/:id.
func registerMaster[T any](g *gin.RouterGroup, kind, label string, cat handlers.MasterCatalog[T]) {
	g.GET("/"+kind, handlers.ListMasters[T](cat, label))
	g.POST("/add"+kind, handlers.AddMaster[T](cat, label))
	g.DELETE("/delete"+kind+"/:id", handlers.DeleteMaster[T](cat, label))
}
