package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	chatUC "flight-concierge/internal/chat/usecase"
	"flight-concierge/internal/flightquery"
	"flight-concierge/pkg/flightsearch"
	"flight-concierge/pkg/gemini"
	"flight-concierge/pkg/log"
	"flight-concierge/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	database   *mongodriver.Database
	jwtManager scope.Manager

	// Conversation dependencies
	gen       gemini.IGemini
	search    flightsearch.ISearch
	extractor *flightquery.Extractor
	chatCfg   chatUC.Config

	// Edge policies
	corsOrigins []string
	rateRPS     float64
	rateBurst   int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Database   *mongodriver.Database
	JWTManager scope.Manager

	Gemini       gemini.IGemini
	FlightSearch flightsearch.ISearch
	Extractor    *flightquery.Extractor
	Chat         chatUC.Config

	CORSOrigins []string
	RateRPS     float64
	RateBurst   int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		database:    cfg.Database,
		jwtManager:  cfg.JWTManager,
		gen:         cfg.Gemini,
		search:      cfg.FlightSearch,
		extractor:   cfg.Extractor,
		chatCfg:     cfg.Chat,
		corsOrigins: cfg.CORSOrigins,
		rateRPS:     cfg.RateRPS,
		rateBurst:   cfg.RateBurst,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.database == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.extractor == nil {
		return errors.New("flight query extractor is required")
	}
	return nil
}
