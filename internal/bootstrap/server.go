package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/roombooking/api"
	"github.com/Domenick1991/roombooking/config"
	"github.com/Domenick1991/roombooking/internal/repository"
	"github.com/Domenick1991/roombooking/internal/service/activity"
	"github.com/Domenick1991/roombooking/internal/service/customers"
	"github.com/Domenick1991/roombooking/internal/service/rooms"
	"github.com/Domenick1991/roombooking/internal/service/scheduletimes"
	"github.com/Domenick1991/roombooking/internal/service/scheduling"
	"github.com/Domenick1991/roombooking/internal/service/users"
	"github.com/gin-gonic/gin"
)

// Services collects everything the HTTP surface needs.
type Services struct {
	Users         users.UserUseCase
	Customers     customers.CustomerUseCase
	Rooms         rooms.RoomUseCase
	ScheduleTimes scheduletimes.ScheduleTimeUseCase
	Schedulings   scheduling.SchedulingUseCase
	Activity      activity.ActivityUseCase

	Tokens   api.TokenParser
	UserRepo repository.UserRepository
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, svc Services) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, svc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, svc Services) *gin.Engine {
	router := gin.Default()

	authRequired := api.AuthMiddleware(svc.Tokens, svc.UserRepo)

	authHandler := api.NewAuthHandler(svc.Users)
	userHandler := api.NewUserHandler(svc.Users)
	clientHandler := api.NewClientHandler(svc.Customers)
	roomHandler := api.NewRoomHandler(svc.Rooms)
	scheduleTimeHandler := api.NewScheduleTimeHandler(svc.ScheduleTimes)
	schedulingHandler := api.NewSchedulingHandler(svc.Schedulings)
	logHandler := api.NewLogHandler(svc.Activity)

	authHandler.Register(router.Group("/auth"))
	userHandler.Register(router.Group("/users", authRequired))
	clientHandler.Register(router.Group("/clients", authRequired))
	roomHandler.Register(router.Group("/rooms", authRequired))
	scheduleTimeHandler.Register(router.Group("/schedule-times", authRequired))
	schedulingHandler.Register(router.Group("/schedules", authRequired))
	logHandler.Register(router.Group("/logs", authRequired))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs", func(c *gin.Context) {
			renderSwaggerUI(c.Writer, "/swagger/openapi.json")
		})
	}

	return router
}

func renderSwaggerUI(w http.ResponseWriter, jsonURL string) {
	html := fmt.Sprintf(`<!DOCTYPE html>
    <html>
    <head>
        <title>API Docs</title>
        <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@latest/swagger-ui.css">
    </head>
    <body>
        <div id="swagger-ui"></div>
        <script src="https://unpkg.com/swagger-ui-dist@latest/swagger-ui-bundle.js"></script>
        <script>
            window.onload = function() {
                window.ui = SwaggerUIBundle({
                    url: "%s",
                    dom_id: '#swagger-ui'
                });
            };
        </script>
    </body>
    </html>`, jsonURL)

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}
