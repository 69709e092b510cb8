package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nirvana726/Woods/controllers"
	"github.com/nirvana726/Woods/middleware"
)

// SetupRouter wires every controller into the HTTP surface. Mutation
// endpoints on content resources are admin-gated; booking and contact
// creation stay public.
func SetupRouter(
	db *gorm.DB,
	jwtSecret string,
	corsOrigins []string,
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	actc *controllers.ActivityController,
	bc *controllers.BookingController,
	cc *controllers.ContactController,
	gc *controllers.GalleryController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireSignIn := middleware.RequireSignIn(jwtSecret)
	isAdmin := middleware.IsAdmin(db)

	auth := r.Group("/auth/api")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.GET("/user-info", requireSignIn, ac.UserInfo)
	}

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/related/:currentRoomId", rc.GetRelatedRooms)
			rooms.GET("/amenities/list", rc.GetRoomAmenities)
			rooms.GET("/:slug", rc.GetRoom)
			rooms.POST("", requireSignIn, isAdmin, rc.CreateRoom)
			rooms.PUT("/:id", requireSignIn, isAdmin, rc.UpdateRoom)
			rooms.DELETE("/:id", requireSignIn, isAdmin, rc.DeleteRoom)
		}

		activities := api.Group("/activities")
		{
			activities.GET("", actc.GetActivities)
			activities.GET("/related/:category/:currentActivityId", actc.GetRelatedActivities)
			activities.GET("/:slug", actc.GetActivity)
			activities.POST("", requireSignIn, isAdmin, actc.CreateActivity)
			activities.PUT("/:id", requireSignIn, isAdmin, actc.UpdateActivity)
			activities.DELETE("/:id", requireSignIn, isAdmin, actc.DeleteActivity)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("", requireSignIn, isAdmin, bc.GetBookings)
			bookings.GET("/:id", requireSignIn, isAdmin, bc.GetBooking)
			bookings.PUT("/:id", requireSignIn, isAdmin, bc.UpdateBookingStatus)
			bookings.DELETE("/:id", requireSignIn, isAdmin, bc.DeleteBooking)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", cc.CreateContact)
			contact.GET("", requireSignIn, isAdmin, cc.GetContacts)
			contact.PUT("/:id", requireSignIn, isAdmin, cc.UpdateContactStatus)
			contact.DELETE("/:id", requireSignIn, isAdmin, cc.DeleteContact)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("", gc.GetGallery)
			gallery.POST("", requireSignIn, isAdmin, gc.UploadImages)
			gallery.DELETE("/:id", requireSignIn, isAdmin, gc.DeleteImage)
		}
	}

	return r
}
