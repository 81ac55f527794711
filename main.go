package main

import (
	"log"
	"net/http"
	"os"

	"clementus360/response-engine/catalog"
	"clementus360/response-engine/config"
	"clementus360/response-engine/engine"
	"clementus360/response-engine/handlers"
	"clementus360/response-engine/middleware"
	"clementus360/response-engine/storage"
)

func main() {

	config.LoadEnv()
	config.InitLogger()

	var store storage.Store
	if os.Getenv("SUPABASE_URL") != "" {
		supabaseStore, err := storage.NewSupabase()
		if err != nil {
			config.Logger.Fatal("Failed to init Supabase state store: ", err)
		}
		store = supabaseStore
	} else {
		config.Logger.Warn("SUPABASE_URL not set, engine state will not survive restarts")
		store = storage.NewMemory()
	}

	eng := engine.New(catalog.Default())
	srv := handlers.NewServer(eng, store)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /enhance", srv.EnhanceHandler)
	mux.HandleFunc("POST /context/update", srv.UpdateContextHandler)
	mux.HandleFunc("POST /feedback", srv.FeedbackHandler)
	mux.HandleFunc("GET /preferences", srv.GetPreferencesHandler)
	mux.HandleFunc("PUT /preferences", srv.ImportPreferencesHandler)

	handler := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server is running on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
