// Package server assembles the HTTP API from the repositories, services and
// handlers.
package server

import (
	"motionklub/internal/middleware"
	"motionklub/internal/modules/animator"
	"motionklub/internal/modules/catalog"
	"motionklub/internal/modules/guest"
	"motionklub/internal/modules/session"
	jwtsvc "motionklub/internal/pkg/jwt"
	"motionklub/internal/realtime"
	"motionklub/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	DB       *gorm.DB
	JWT      *jwtsvc.Service
	Sessions session.Store
	Hub      *realtime.Hub
	Catalog  catalog.Options

	AllowedOrigins []string
}

// NewRouter builds the engine. The hub, if set, receives capacity changes
// unless Catalog.Notifier is already set.
func NewRouter(d Deps) *gin.Engine {
	hotelRepo := repository.NewHotelRepository(d.DB)
	activityRepo := repository.NewActivityRepository(d.DB)
	bookingRepo := repository.NewBookingRepository(d.DB)
	reservationRepo := repository.NewReservationRepository(d.DB)
	animatorRepo := repository.NewAnimatorRepository(d.DB)
	tx := repository.NewTransactor(d.DB)

	opts := d.Catalog
	if opts.Notifier == nil && d.Hub != nil {
		opts.Notifier = d.Hub
	}

	sessionService := session.NewService(d.Sessions, animatorRepo, hotelRepo, d.JWT)
	sessionHandler := session.NewHandler(sessionService)

	catalogService := catalog.NewService(activityRepo, bookingRepo, reservationRepo, hotelRepo, tx, opts)
	catalogHandler := catalog.NewHandler(catalogService)
	guestHandler := guest.NewHandler(catalogService)
	animatorHandler := animator.NewHandler(catalogService)

	r := gin.New()
	if gin.Mode() != gin.TestMode {
		r.Use(gin.Logger())
	}
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(d.AllowedOrigins))
	r.Use(middleware.RequestID())

	v1 := r.Group("/api/v1")

	// public
	sessionHandler.RegisterPublicRoutes(v1)
	if d.Hub != nil {
		realtime.NewHandler(d.Hub, d.AllowedOrigins).RegisterRoutes(v1)
	}

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(d.JWT), middleware.SessionRequired(sessionService))
	{
		sessionHandler.RegisterProtectedRoutes(protected)

		guestGroup := protected.Group("")
		guestGroup.Use(middleware.GuestOnly())
		catalogHandler.RegisterGuestRoutes(guestGroup)
		guestHandler.RegisterRoutes(guestGroup)

		animatorGroup := protected.Group("")
		animatorGroup.Use(middleware.AnimatorOnly())
		animatorHandler.RegisterRoutes(animatorGroup)
	}

	return r
}
