package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"flight-concierge/internal/middleware"
	userHTTP "flight-concierge/internal/user/delivery/http"
	userRepo "flight-concierge/internal/user/repository/mongo"
	userUC "flight-concierge/internal/user/usecase"
	"flight-concierge/pkg/hasher"
)

// setupUserDomain initializes the user domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.database, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := userRepo.New(srv.database, srv.l)

	// 2. UseCase
	uc := userUC.New(repo, hasher.NewBcryptHasher(0), srv.jwtManager, srv.l)

	// 3. HTTP Handler
	h := userHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/auth
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
