package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "resume-analyzer/docs" // Swagger docs
	"resume-analyzer/internal/api"
	"resume-analyzer/internal/config"
)

// @title Resume Analyzer API
// @version 1.0
// @description Skill-based resume analysis: extracts resume text, matches it against a skill vocabulary, and generates a summary, soft skills, and interview questions via an LLM

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

func main() {
	cfg := config.LoadConfig()

	log.Printf("LLM provider: %s (model %s)", cfg.LLMProvider, cfg.LLMModel)

	apiSrv := api.NewAPI(cfg)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,            // file upload
		WriteTimeout: cfg.LLMTimeout + time.Minute, // three LLM round trips + buffer
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("API server listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}
