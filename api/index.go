package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"shopper-backend/app"
	"shopper-backend/config"
	"shopper-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	application *app.App
	initErr     error
	once        sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		application, initErr = app.New(context.Background(), cfg, config.NewLogger(cfg))
	})
}

// Handler is the Vercel serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		logrus.WithError(initErr).Error("application init failed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Success: false, Message: "Service unavailable"})
		return
	}
	application.Router.ServeHTTP(w, r)
}
