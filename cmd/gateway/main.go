package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	api "github.com/thekasyap/thinkbot/internal/api/http"
	"github.com/thekasyap/thinkbot/internal/auth"
	"github.com/thekasyap/thinkbot/internal/config"
	"github.com/thekasyap/thinkbot/internal/db"
	"github.com/thekasyap/thinkbot/internal/feedback"
	"github.com/thekasyap/thinkbot/internal/llm"
	"github.com/thekasyap/thinkbot/internal/profile"
	"github.com/thekasyap/thinkbot/internal/quiz"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system env")
	}
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// --- Profile store ---
	var store profile.Store
	switch cfg.ProfileStore {
	case "sql":
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		store = profile.NewSQLStore(dbh, cfg.DBDriver)
	default:
		fs, err := profile.NewFSStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("profile store: %v", err)
		}
		store = fs
	}

	// --- Question bank ---
	bank, err := quiz.LoadBank(cfg.QuestionsFile)
	if err != nil {
		log.Fatalf("question bank: %v", err)
	}

	// --- LLM provider ---
	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		log.Printf("llm provider unavailable (%v), using mock", err)
		provider = llm.NewMockProvider()
	}
	gen := feedback.NewGenerator(provider)

	selector := quiz.NewSelector(bank)
	selector.MinPool = cfg.MinPoolSize
	if cfg.EnableReplenish {
		selector.Replenish = quiz.NewReplenisher(bank, provider).TopUp
	}

	authSvc := auth.NewAuthService(cfg.AuthSecret, cfg.AdminUser, cfg.AdminPassHash)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc))

	// Student flow
	r.Get("/question", api.GetQuestionHandler(store, selector))
	r.Post("/answer", api.SubmitAnswerHandler(store, bank, gen))
	r.Get("/hint/{questionID}", api.GetHintHandler(bank))
	r.Post("/session/close", api.CloseSessionHandler(store))
	r.Get("/analytics/{student}", api.StudentAnalyticsHandler(store))

	// Teacher dashboard (JWT)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.Get("/analytics", api.AllAnalyticsHandler(store))
	})

	// Demo page
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, cfg.StaticDir+"/index.html")
	})

	log.Printf("listening on %s (mode=%s, store=%s, llm=%s)", cfg.HTTPAddr, cfg.Mode, cfg.ProfileStore, provider.ModelID())
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
