package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/bepasal/bazar/app/cmd"
	"github.com/bepasal/bazar/app/configs"
	"github.com/bepasal/bazar/app/repositories"
	"github.com/bepasal/bazar/app/routes"
	"github.com/bepasal/bazar/app/services"
	"github.com/bepasal/bazar/app/utils/sessions"
)

func main() {

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys failed to load:", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	settingsService := services.NewSettingsService(repositories.NewSettingsRepository(db))
	if err := settingsService.Load(context.Background()); err != nil {
		log.Fatal("Settings failed to load:", err)
	}

	router := routes.NewRouter(db, sessionStore, settingsService)

	server := http.Server{
		Addr:    configs.LoadENV.Port,
		Handler: router,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("server stopped:", err)
	}
}
